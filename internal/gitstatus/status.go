// Package gitstatus resolves the git state of listed paths. A Cache is
// built once per invocation from the repository containing the listed
// directory; every query after that is a read-only lookup, so a single
// cache can be shared across goroutines.
package gitstatus

// StatusKind classifies one side (index or working tree) of a path's
// change state. The declaration order is a strict total order used when
// folding file statuses up to their directory: a directory surfaces the
// most severe state found anywhere beneath it, so Conflicted dominates
// every other value.
type StatusKind int

const (
	// Default means no status was ever computed for the path, either
	// because it lives outside any repository or because the cache is
	// empty. It sorts strictly below Unmodified, which is a real
	// "queried and clean" answer; callers deciding whether to show a
	// status column at all must not conflate the two.
	Default StatusKind = iota
	Unmodified
	Ignored
	NewInIndex
	NewInWorkdir
	Typechange
	Deleted
	Renamed
	Modified
	Conflicted
)

var kindNames = map[StatusKind]string{
	Default:      "default",
	Unmodified:   "unmodified",
	Ignored:      "ignored",
	NewInIndex:   "new-in-index",
	NewInWorkdir: "new-in-workdir",
	Typechange:   "typechange",
	Deleted:      "deleted",
	Renamed:      "renamed",
	Modified:     "modified",
	Conflicted:   "conflicted",
}

func (k StatusKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Changed reports whether the kind represents an actual change, i.e.
// anything above Unmodified in the severity order.
func (k StatusKind) Changed() bool {
	return k > Unmodified
}

// Kinds returns every StatusKind in severity order. Palette and icon
// completeness checks iterate this.
func Kinds() []StatusKind {
	return []StatusKind{
		Default,
		Unmodified,
		Ignored,
		NewInIndex,
		NewInWorkdir,
		Typechange,
		Deleted,
		Renamed,
		Modified,
		Conflicted,
	}
}

// EntryStatus pairs the index-side and workdir-side state of one
// filesystem entry. The zero value {Default, Default} means "nothing
// known", which is exactly what queries outside a repository return.
type EntryStatus struct {
	Index   StatusKind
	Workdir StatusKind
}

// Combine merges two entry statuses by taking the field-wise maximum.
// It is commutative and associative, so folding a directory's contents
// yields the same aggregate regardless of traversal order.
func (e EntryStatus) Combine(other EntryStatus) EntryStatus {
	return EntryStatus{
		Index:   max(e.Index, other.Index),
		Workdir: max(e.Workdir, other.Workdir),
	}
}
