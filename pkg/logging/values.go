package logging

const (
	// MaxValueLogLength is the maximum length of a cell value to log.
	MaxValueLogLength = 100
)

// TruncateValue shortens a cell value for debug logging. Large blobs and
// JSON documents would otherwise dominate log lines.
func TruncateValue(s string) string {
	return Truncate(s, MaxValueLogLength)
}

// Truncate truncates a string to maxLen and adds an ellipsis if needed.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
