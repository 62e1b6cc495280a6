package diff

import (
	"fmt"
)

type (
	// Op is the operation applied to a single element of an edit script.
	Op int

	// Edit is a single step of a Script. Keep edits carry both elements, Insert
	// edits only Target and Delete edits only Source. The indexes refer to the
	// position of the element in its input sequence, or -1 when absent.
	Edit[T any] struct {
		Op          Op
		Source      T
		Target      T
		SourceIndex int
		TargetIndex int
	}

	// Script is an ordered edit script turning a source sequence into a target.
	Script[T any] []Edit[T]

	// Stats summarizes a Script.
	Stats struct {
		Keeps   int
		Inserts int
		Deletes int
	}
)

const (
	Keep Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Keep:
		return "keep"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Diff returns the edit script turning a into b using eq as the element equivalence.
// It runs in O(len(a)*len(b)) time and space.
func Diff[T any](a, b []T, eq func(a, b T) bool) Script[T] {
	n, m := len(a), len(b)

	// lcs[i][j] is the length of the longest common subsequence of a[i:] and b[j:].
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}

	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if eq(a[i], b[j]) {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	script := make(Script[T], 0, max(n, m))
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case eq(a[i], b[j]):
			script = append(script, keep(a, b, i, j))
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			script = append(script, del(a, i))
			i++
		default:
			script = append(script, ins(b, j))
			j++
		}
	}

	for ; i < n; i++ {
		script = append(script, del(a, i))
	}
	for ; j < m; j++ {
		script = append(script, ins(b, j))
	}

	return script.Canonical()
}

func keep[T any](a, b []T, i, j int) Edit[T] {
	return Edit[T]{Op: Keep, Source: a[i], Target: b[j], SourceIndex: i, TargetIndex: j}
}

func ins[T any](b []T, j int) Edit[T] {
	return Edit[T]{Op: Insert, Target: b[j], SourceIndex: -1, TargetIndex: j}
}

func del[T any](a []T, i int) Edit[T] {
	return Edit[T]{Op: Delete, Source: a[i], SourceIndex: i, TargetIndex: -1}
}

// Reverse returns the script turning the target back into the source. Inserts
// become deletes and vice versa, and every pair swaps direction.
func (s Script[T]) Reverse() Script[T] {
	out := make(Script[T], len(s))
	for i, e := range s {
		r := Edit[T]{
			Source:      e.Target,
			Target:      e.Source,
			SourceIndex: e.TargetIndex,
			TargetIndex: e.SourceIndex,
		}

		switch e.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		default:
			r.Op = Keep
		}

		out[i] = r
	}

	return out.Canonical()
}

// Canonical returns the script with every run of consecutive changes reordered so
// that deletions precede insertions. Relative order within deletions and within
// insertions is preserved.
func (s Script[T]) Canonical() Script[T] {
	out := make(Script[T], 0, len(s))

	var inserts Script[T]
	for _, e := range s {
		switch e.Op {
		case Delete:
			out = append(out, e)
		case Insert:
			inserts = append(inserts, e)
		default:
			out = append(out, inserts...)
			inserts = inserts[:0]
			out = append(out, e)
		}
	}

	return append(out, inserts...)
}

// Apply replays the script against the source it was computed from and returns the
// target sequence. Kept elements are taken from the target side.
func (s Script[T]) Apply() []T {
	var out []T
	for _, e := range s {
		if e.Op != Delete {
			out = append(out, e.Target)
		}
	}
	return out
}

// Sources returns the source sequence the script was computed from.
func (s Script[T]) Sources() []T {
	var out []T
	for _, e := range s {
		if e.Op != Insert {
			out = append(out, e.Source)
		}
	}
	return out
}

// HasChanges reports whether the script contains any insert or delete.
func (s Script[T]) HasChanges() bool {
	for _, e := range s {
		if e.Op != Keep {
			return true
		}
	}
	return false
}

// Filter returns the edits with the given operation.
func (s Script[T]) Filter(op Op) Script[T] {
	var out Script[T]
	for _, e := range s {
		if e.Op == op {
			out = append(out, e)
		}
	}
	return out
}

func (s Script[T]) Stats() Stats {
	var st Stats
	for _, e := range s {
		switch e.Op {
		case Keep:
			st.Keeps++
		case Insert:
			st.Inserts++
		case Delete:
			st.Deletes++
		}
	}
	return st
}

func (s Stats) String() string {
	return fmt.Sprintf("%d kept, %d inserted, %d deleted", s.Keeps, s.Inserts, s.Deletes)
}
