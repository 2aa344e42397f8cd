package gitstatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOrdering(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 10)

	// Kinds() is declared in severity order; the comparison operator
	// must agree with it.
	for i := 0; i < len(kinds); i++ {
		for j := 0; j < len(kinds); j++ {
			switch {
			case i < j:
				assert.Less(t, kinds[i], kinds[j])
			case i > j:
				assert.Greater(t, kinds[i], kinds[j])
			default:
				assert.Equal(t, kinds[i], kinds[j])
			}
		}
	}

	for _, k := range kinds {
		assert.LessOrEqual(t, Default, k, "Default must be the minimum")
		assert.GreaterOrEqual(t, Conflicted, k, "Conflicted must be the maximum")
	}
}

func TestKindChanged(t *testing.T) {
	assert.False(t, Default.Changed())
	assert.False(t, Unmodified.Changed())
	for _, k := range []StatusKind{Ignored, NewInIndex, NewInWorkdir, Typechange, Deleted, Renamed, Modified, Conflicted} {
		assert.True(t, k.Changed(), k.String())
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "default", Default.String())
	assert.Equal(t, "conflicted", Conflicted.String())
	assert.Equal(t, "unknown", StatusKind(99).String())
}

func TestCombineCommutativeAssociative(t *testing.T) {
	kinds := Kinds()
	samples := make([]EntryStatus, 0, len(kinds)*2)
	for i, k := range kinds {
		samples = append(samples, EntryStatus{Index: k, Workdir: kinds[len(kinds)-1-i]})
		samples = append(samples, EntryStatus{Index: kinds[len(kinds)-1-i], Workdir: k})
	}

	for _, a := range samples {
		for _, b := range samples {
			assert.Equal(t, a.Combine(b), b.Combine(a))
			for _, c := range samples {
				assert.Equal(t, a.Combine(b).Combine(c), a.Combine(b.Combine(c)))
			}
		}
	}
}

func TestCombineFieldwiseMax(t *testing.T) {
	a := EntryStatus{Index: NewInIndex, Workdir: Deleted}
	b := EntryStatus{Index: Modified, Workdir: Ignored}
	assert.Equal(t, EntryStatus{Index: Modified, Workdir: Deleted}, a.Combine(b))
}

func TestZeroValueIsDefault(t *testing.T) {
	var es EntryStatus
	assert.Equal(t, Default, es.Index)
	assert.Equal(t, Default, es.Workdir)
}

func TestFromRaw(t *testing.T) {
	tests := []struct {
		name string
		raw  RawStatus
		want EntryStatus
	}{
		{"untouched", 0, EntryStatus{Unmodified, Unmodified}},
		{"staged new", RawIndexNew, EntryStatus{NewInIndex, Unmodified}},
		{"untracked", RawWorktreeNew, EntryStatus{Unmodified, NewInWorkdir}},
		{"ignored", RawIgnored, EntryStatus{Unmodified, Ignored}},
		{"conflicted", RawConflicted, EntryStatus{Unmodified, Conflicted}},
		{"staged and dirty", RawIndexModified | RawWorktreeModified, EntryStatus{Modified, Modified}},
		{"renamed then deleted", RawIndexRenamed | RawWorktreeDeleted, EntryStatus{Renamed, Deleted}},
		{"typechange both sides", RawIndexTypechange | RawWorktreeTypechange, EntryStatus{Typechange, Typechange}},
		// Index-side precedence: new wins over modified.
		{"index new beats modified", RawIndexNew | RawIndexModified, EntryStatus{NewInIndex, Unmodified}},
		// Workdir-side precedence: new wins over everything below it.
		{"workdir new beats ignored", RawWorktreeNew | RawIgnored, EntryStatus{Unmodified, NewInWorkdir}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromRaw(tt.raw))
		})
	}
}
