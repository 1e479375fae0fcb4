// pkg/verify/options.go
package verify

// Options configures the verify operation
type Options struct {
	// Archives to verify (required)
	Archives []string

	// VerifyData decompresses every entry and computes its BLAKE3 digest
	// When false, only structural validation is performed (faster)
	// Default: false
	VerifyData bool

	// SourceDir, when set, holds the original files; each entry's digest is
	// compared with SourceDir/<entry name>. Implies VerifyData.
	SourceDir string

	// Verbose enables detailed logging during verification
	Verbose bool

	// Quiet suppresses all output except errors
	Quiet bool
}

// Validate checks if options are valid
func (o *Options) Validate() error {
	if len(o.Archives) == 0 {
		return ErrInputRequired
	}
	if o.SourceDir != "" {
		o.VerifyData = true
	}
	if o.Quiet {
		o.Verbose = false
	}
	return nil
}
