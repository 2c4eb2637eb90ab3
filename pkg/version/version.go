package version

// Version information set at build time via ldflags
var (
	// Version is the semantic version of the build
	Version = "v1.0.0"
	// Name is the binary name reported in logs
	Name = "logfile-monitor"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// String returns the binary name followed by its version
func String() string {
	return Name + " " + Version
}
