package matrix

import (
	"path/filepath"
	"strings"
)

// Format names a cost-matrix encoding.
type Format string

// Supported formats.
const (
	// FormatText is the line-per-row format: whitespace-separated integers,
	// "-" or -1 for blocked cells, blank lines and '#' comments ignored.
	FormatText Format = "text"

	// FormatJSON is {"costs": [[null, 10, ...], ...]} with null for blocked.
	FormatJSON Format = "json"

	// FormatYAML is a YAML document with a "costs" sequence; "-" or ~ is blocked.
	FormatYAML Format = "yaml"

	// FormatTOML is a TOML document with a "costs" array; -1 or "-" is blocked.
	FormatTOML Format = "toml"
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", ErrUnknownFormat
	}
}

// FormatFromPath guesses the format from a file extension, defaulting to
// FormatText.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}
