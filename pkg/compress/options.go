// pkg/compress/options.go
package compress

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// MinLevel is the fastest deflate level accepted
	MinLevel = 1
	// MaxLevel is the strongest deflate level accepted
	MaxLevel = 9
	// DefaultLevel matches the usual zlib default
	DefaultLevel = 6
)

// Options configures a Compressor
type Options struct {
	// Destination directory for archives, created if missing
	Destination string

	// Deflate level, clamped to [MinLevel, MaxLevel] by New
	// Default: 6
	Level int

	// Number of concurrent compression workers
	// 1 = sequential (default)
	MaxThreads int

	// Logger receives structured application logs (optional)
	// Default: a logger that discards everything
	Logger logrus.FieldLogger

	// Progress receives per-file progress events (optional)
	Progress ProgressCallback

	// Now supplies timestamps for the operation log (optional)
	// Default: time.Now
	Now func() time.Time
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		Level:      DefaultLevel,
		MaxThreads: 1,
	}
}

// ClampLevel forces level into [MinLevel, MaxLevel]
func ClampLevel(level int) int {
	return min(max(level, MinLevel), MaxLevel)
}

// Validate checks the options and fills in defaults.
// Out-of-range levels are clamped, never rejected.
func (o *Options) Validate() error {
	if o.Destination == "" {
		return ErrDestinationRequired
	}
	o.Level = ClampLevel(o.Level)
	if o.MaxThreads <= 0 {
		o.MaxThreads = 1
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Logger = l
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return nil
}
