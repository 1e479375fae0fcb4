// pkg/decompress/options.go
package decompress

// Options configures extraction of single-file archives
type Options struct {
	// Archives to restore (required)
	Archives []string

	// Output directory path
	// Default: "."
	OutputPath string

	// Verbose enables detailed logging
	Verbose bool

	// Quiet suppresses all output except errors
	Quiet bool

	// Overwrite existing files without prompting
	Overwrite bool
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		OutputPath: ".",
	}
}

// Validate checks if options are valid
func (o *Options) Validate() error {
	if len(o.Archives) == 0 {
		return ErrInputRequired
	}
	if o.OutputPath == "" {
		o.OutputPath = "."
	}
	if o.Quiet {
		o.Verbose = false
	}
	return nil
}
