// pkg/compress/report.go
package compress

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/creativeyann17/squeezeit/pkg/squeeze"
)

// FileReport describes one archived file
type FileReport struct {
	Name           string  `yaml:"name"`
	Source         string  `yaml:"source"`
	Archive        string  `yaml:"archive"`
	OriginalSize   int64   `yaml:"original_size"`
	CompressedSize int64   `yaml:"compressed_size"`
	Savings        float64 `yaml:"savings_percent"`
}

// Report summarizes space savings of a batch
type Report struct {
	GeneratedAt    time.Time    `yaml:"generated_at"`
	Succeeded      int          `yaml:"succeeded"`
	Failed         int          `yaml:"failed"`
	OriginalSize   int64        `yaml:"original_size"`
	CompressedSize int64        `yaml:"compressed_size"`
	SavedBytes     int64        `yaml:"saved_bytes"`
	Savings        float64      `yaml:"savings_percent"`
	Files          []FileReport `yaml:"files"`
	Failures       []string     `yaml:"failures,omitempty"`
}

// BuildReport derives a Report from a batch result
func BuildReport(result *BatchResult, now time.Time) *Report {
	r := &Report{
		GeneratedAt: now,
		Succeeded:   result.SuccessCount,
		Failed:      result.FailureCount,
		Files:       []FileReport{},
	}

	for _, inv := range result.Invalid {
		r.Failures = append(r.Failures, inv.Error())
	}
	for _, o := range result.Outcomes {
		switch o := o.(type) {
		case Success:
			r.Files = append(r.Files, FileReport{
				Name:           filepath.Base(o.Path),
				Source:         o.Path,
				Archive:        o.ArchivePath,
				OriginalSize:   o.OriginalSize,
				CompressedSize: o.CompressedSize,
				Savings:        squeeze.SavingsPercent(o.OriginalSize, o.CompressedSize),
			})
			r.OriginalSize += o.OriginalSize
			r.CompressedSize += o.CompressedSize
		case Failure:
			r.Failures = append(r.Failures, o.Message)
		}
	}

	r.SavedBytes = r.OriginalSize - r.CompressedSize
	r.Savings = squeeze.SavingsPercent(r.OriginalSize, r.CompressedSize)
	return r
}

// WriteYAML encodes the report as YAML
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
