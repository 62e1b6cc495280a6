package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pseudomuto/schemata/pkg/state"
)

const indent = "  "

type palette struct {
	states  map[state.State]lipgloss.Style
	neutral lipgloss.Style
}

// newPalette returns the styles used for w. Without color every style renders
// its input unchanged.
func newPalette(w io.Writer, color bool) palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.Ascii)
	if color {
		r.SetColorProfile(termenv.ANSI)
	}

	return palette{
		states: map[state.State]lipgloss.Style{
			state.Added:    r.NewStyle().Foreground(lipgloss.Color("2")),
			state.Deleted:  r.NewStyle().Foreground(lipgloss.Color("1")),
			state.Modified: r.NewStyle().Foreground(lipgloss.Color("4")),
		},
		neutral: r.NewStyle().Foreground(lipgloss.Color("7")),
	}
}

func (p palette) state(st state.State, s string) string {
	if style, ok := p.states[st]; ok {
		return style.Render(s)
	}
	return s
}

// WriteText writes the report as an indented listing. Every changed object is
// prefixed with + (added), - (deleted) or ~ (modified) and changed properties
// are listed below their object.
func (r *Report) WriteText(w io.Writer, color bool) error {
	bw := bufio.NewWriter(w)
	p := newPalette(w, color)

	if !r.HasChanges() {
		fmt.Fprintln(bw, p.neutral.Render("No differences."))
		return bw.Flush()
	}

	for _, c := range r.Changes {
		writeChange(bw, p, c, 0)
	}

	if len(r.Renames) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "Probable renames:")
		for _, rn := range r.Renames {
			line := fmt.Sprintf("%s %s -> %s in %s", rn.Kind, rn.From, rn.To, rn.Parent)
			fmt.Fprintln(bw, indent+p.state(state.Modified, line))
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, r.Stats.format(p))
	return bw.Flush()
}

func writeChange(w io.Writer, p palette, c Change, depth int) {
	prefix := strings.Repeat(indent, depth)
	fmt.Fprintln(w, prefix+p.state(c.State, c.State.Symbol()+" "+c.Kind+" "+c.Name))

	for _, prop := range c.Properties {
		line := fmt.Sprintf("%s: %s -> %s", prop.Name, prop.Source, prop.Target)
		fmt.Fprintln(w, prefix+indent+indent+p.neutral.Render(line))
	}

	for _, child := range c.Children {
		writeChange(w, p, child, depth+1)
	}
}

func (s Stats) format(p palette) string {
	return fmt.Sprintf("%d %s: %s, %s, %s, %d %s.",
		s.Total(), plural(s.Total(), "change", "changes"),
		p.state(state.Added, fmt.Sprintf("%d added", s.Added)),
		p.state(state.Modified, fmt.Sprintf("%d modified", s.Modified)),
		p.state(state.Deleted, fmt.Sprintf("%d deleted", s.Deleted)),
		s.Properties, plural(s.Properties, "property", "properties"),
	)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
