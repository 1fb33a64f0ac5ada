package converter

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Report describes the outcome of one batch conversion run.
type Report struct {
	RunID     string    `yaml:"run_id"`
	Target    string    `yaml:"target"`
	StartedAt time.Time `yaml:"started_at"`
	Elapsed   string    `yaml:"elapsed"`

	Total     int `yaml:"total"`
	Converted int `yaml:"converted"`
	FromCache int `yaml:"from_cache"`

	Failed []FailedFile `yaml:"failed,omitempty"`
}

// FailedFile describes one file the run could not convert.
type FailedFile struct {
	Path  string `yaml:"path"`
	Error string `yaml:"error"`
}

// WriteYAML writes the report to w in YAML form.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return enc.Close()
}
