// internal/output/formats.go
package output

// Supported report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)
