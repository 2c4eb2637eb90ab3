package monitor

// Config holds the check parameters handed over by the monitoring station.
// Fields are forwarded as-is; none of them is validated.
type Config struct {
	Dir         string `yaml:"dir"`
	FilesRegex  string `yaml:"files-regex"`
	SearchRegex string `yaml:"search-regex"`
	IgnoreRegex string `yaml:"ignore-regex"`
	DebugMode   string `yaml:"debug-mode"`

	Hostname string `yaml:"hostname"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
}

// Merge fills empty fields of c with the values from other
func (c *Config) Merge(other Config) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Dir, other.Dir)
	fill(&c.FilesRegex, other.FilesRegex)
	fill(&c.SearchRegex, other.SearchRegex)
	fill(&c.IgnoreRegex, other.IgnoreRegex)
	fill(&c.DebugMode, other.DebugMode)
	fill(&c.Hostname, other.Hostname)
	fill(&c.Port, other.Port)
	fill(&c.Password, other.Password)
}
