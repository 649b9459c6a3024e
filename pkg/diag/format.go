package diag

import "fmt"

// Format represents a diagnostic output format.
type Format string

// Output formats supported by the engine.
const (
	FormatHuman   Format = "human"
	FormatJSON    Format = "json"
	FormatCompact Format = "compact"
	FormatGCC     Format = "gcc"
	FormatMSVC    Format = "msvc"
)

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "human", "":
		return FormatHuman, nil
	case "json":
		return FormatJSON, nil
	case "compact":
		return FormatCompact, nil
	case "gcc":
		return FormatGCC, nil
	case "msvc":
		return FormatMSVC, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: human, json, compact, gcc, msvc", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatHuman, FormatJSON, FormatCompact, FormatGCC, FormatMSVC:
		return true
	default:
		return false
	}
}
