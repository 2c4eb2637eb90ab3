package monitor

import (
	"encoding/base64"
	"strings"
)

// Delimiter separates the fields of the argument string
const Delimiter = "UPDOTTIME"

// EncodeArguments joins dir, files, search and ignore patterns (base64) and the
// raw debug flag with Delimiter.
func EncodeArguments(cfg Config) string {
	fields := []string{
		encode(cfg.Dir),
		encode(cfg.FilesRegex),
		encode(cfg.SearchRegex),
		encode(cfg.IgnoreRegex),
		cfg.DebugMode,
	}
	return strings.Join(fields, Delimiter)
}

func encode(value string) string {
	return base64.StdEncoding.EncodeToString([]byte(value))
}
