package report

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// WriteYAML writes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "failed to encode report")
	}

	return errors.Wrap(enc.Close(), "failed to encode report")
}
