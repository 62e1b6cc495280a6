package report

import (
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/equals"
	"github.com/pseudomuto/schemata/pkg/object"
	"github.com/pseudomuto/schemata/pkg/state"
)

// ErrUnknownFormat is returned when writing a report in an unsupported format.
var ErrUnknownFormat = errors.New("unknown report format")

// Format names an output format.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []Format{Text, YAML}

type (
	// Options controls how a report is written.
	Options struct {
		Format Format

		// Color adds ANSI colours to text output.
		Color bool
	}

	// Report is the changed part of a difference tree.
	Report struct {
		Stats   Stats    `yaml:"stats"`
		Changes []Change `yaml:"changes,omitempty"`
		Renames []Rename `yaml:"renames,omitempty"`
	}

	// Stats counts the changes of a report.
	Stats struct {
		Added      int `yaml:"added"`
		Modified   int `yaml:"modified"`
		Deleted    int `yaml:"deleted"`
		Properties int `yaml:"properties"`
	}

	// Change is a changed object and its changed descendants.
	Change struct {
		Kind       string      `yaml:"kind"`
		Name       string      `yaml:"name"`
		State      state.State `yaml:"state"`
		Properties []Property  `yaml:"properties,omitempty"`
		Children   []Change    `yaml:"children,omitempty"`
	}

	// Property is a changed property with rendered values.
	Property struct {
		Name   string      `yaml:"name"`
		State  state.State `yaml:"state"`
		Source string      `yaml:"source"`
		Target string      `yaml:"target"`
	}

	// Rename is a probable rename: a deleted and an added sibling with matching
	// properties.
	Rename struct {
		Kind   string `yaml:"kind"`
		From   string `yaml:"from"`
		To     string `yaml:"to"`
		Parent string `yaml:"parent"`
	}
)

// New builds the report of d. h is the handler d was built with and is used to
// detect renames; nil uses equals.Default().
func New(d *object.Difference, h equals.Handler) *Report {
	r := new(Report)
	if !d.HasChanges() {
		return r
	}

	st := d.Stats()
	r.Stats = Stats{
		Added:      st.Added,
		Modified:   st.Modified,
		Deleted:    st.Deleted,
		Properties: st.Properties,
	}
	r.Changes = []Change{newChange(d)}

	for _, rn := range object.DetectRenames(d, h) {
		r.Renames = append(r.Renames, Rename{
			Kind:   rn.From.Kind,
			From:   rn.From.Key.String(),
			To:     rn.To.Key.String(),
			Parent: rn.Parent.Label(),
		})
	}

	return r
}

func newChange(d *object.Difference) Change {
	c := Change{
		Kind:  d.Kind,
		Name:  d.Key.String(),
		State: d.State,
	}

	for _, p := range d.Properties {
		c.Properties = append(c.Properties, Property{
			Name:   p.Name,
			State:  p.State,
			Source: formatValue(p.Source),
			Target: formatValue(p.Target),
		})
	}

	for _, child := range d.Children {
		if child.HasChanges() {
			c.Children = append(c.Children, newChange(child))
		}
	}

	return c
}

// HasChanges reports whether the report holds any change.
func (r *Report) HasChanges() bool {
	return len(r.Changes) > 0
}

// Total is the number of changed objects.
func (s Stats) Total() int {
	return s.Added + s.Modified + s.Deleted
}

// Write renders the report in the format named by opts.
func (r *Report) Write(w io.Writer, opts Options) error {
	switch opts.Format {
	case Text, "":
		return r.WriteText(w, opts.Color)
	case YAML:
		return r.WriteYAML(w)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", opts.Format)
	}
}
