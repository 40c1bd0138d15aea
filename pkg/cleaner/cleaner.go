// Package cleaner provides interfaces and implementations for cleaning extracted text.
// Cleaners transform raw extractor output into text fit for reading or downstream use.
package cleaner

// Cleaner transforms raw extracted text into a cleaner form.
// The default implementation is boilerplate.Cleaner, which drops noise lines.
type Cleaner interface {
	// Clean transforms the input text into its cleaned form.
	Clean(text string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
