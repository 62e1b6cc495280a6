package diff_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	. "github.com/pseudomuto/schemata/pkg/diff"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var names = []string{"ID", "NAME", "FULL_NAME", "DEPT", "SALARY", "HIRED", "MANAGER", "EMAIL"}

// orderedSubset draws a subset of names preserving their relative order, so two
// draws never disagree on the order of their common elements.
func orderedSubset(t *rapid.T, label string) []string {
	mask := rapid.SliceOfN(rapid.Bool(), len(names), len(names)).Draw(t, label)

	var out []string
	for i, keep := range mask {
		if keep {
			out = append(out, names[i])
		}
	}
	return out
}

func TestDiff_Properties(t *testing.T) {
	anySeq := rapid.SliceOfN(rapid.SampledFrom(names), 0, 6)

	t.Run("idempotence", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := anySeq.Draw(t, "a")

			st := Diff(a, a, equalStrings).Stats()
			require.Zero(t, st.Inserts)
			require.Zero(t, st.Deletes)
			require.Equal(t, len(a), st.Keeps)
		})
	})

	t.Run("reconstruction", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := anySeq.Draw(t, "a")
			b := anySeq.Draw(t, "b")

			script := Diff(a, b, equalStrings)
			require.True(t, cmp.Equal(b, script.Apply(), cmpopts.EquateEmpty()))
			require.True(t, cmp.Equal(a, script.Sources(), cmpopts.EquateEmpty()))
		})
	})

	t.Run("symmetry counts", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := anySeq.Draw(t, "a")
			b := anySeq.Draw(t, "b")

			forward := Diff(a, b, equalStrings).Stats()
			backward := Diff(b, a, equalStrings).Stats()
			require.Equal(t, forward.Keeps, backward.Keeps)
			require.Equal(t, forward.Inserts, backward.Deletes)
			require.Equal(t, forward.Deletes, backward.Inserts)
		})
	})

	// Scripts mirror each other exactly only while the inputs agree on the order
	// of their common elements. Crossing inputs are covered by "symmetry counts".
	t.Run("symmetry without crossings", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := orderedSubset(t, "a")
			b := orderedSubset(t, "b")

			require.Equal(t, Diff(b, a, equalStrings), Diff(a, b, equalStrings).Reverse())
		})
	})

	t.Run("crossing inputs", func(t *testing.T) {
		a, b := []string{"ID", "NAME"}, []string{"NAME", "ID"}

		forward := Diff(a, b, equalStrings)
		backward := Diff(b, a, equalStrings)
		require.Equal(t, backward.Stats(), forward.Reverse().Stats())
		require.Equal(t, []string{"ID"}, forward.Filter(Delete).Sources())
		require.Equal(t, []string{"NAME"}, backward.Filter(Delete).Sources())
	})

	t.Run("deterministic", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := anySeq.Draw(t, "a")
			b := anySeq.Draw(t, "b")

			require.Equal(t, Diff(a, b, equalStrings), Diff(a, b, equalStrings))
		})
	})
}
