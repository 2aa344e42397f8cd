package gitstatus

// RawStatus is the bit-flag form of a path's git state as reported by a
// Backend. One path can carry several flags at once (e.g. staged and
// modified again in the working tree); FromRaw reduces the flags to one
// StatusKind per side.
type RawStatus uint32

const (
	RawIndexNew RawStatus = 1 << iota
	RawIndexDeleted
	RawIndexModified
	RawIndexRenamed
	RawIndexTypechange
	RawWorktreeNew
	RawWorktreeDeleted
	RawWorktreeModified
	RawWorktreeRenamed
	RawWorktreeTypechange
	RawIgnored
	RawConflicted
)

// Has reports whether all bits in flag are set.
func (r RawStatus) Has(flag RawStatus) bool {
	return r&flag == flag
}

// FromRaw classifies raw status bits into an index/workdir pair. Per
// side the first matching flag wins; a side with no matching flag is
// Unmodified (not Default: the path was reported, so it was queried).
func FromRaw(raw RawStatus) EntryStatus {
	var es EntryStatus

	switch {
	case raw.Has(RawIndexNew):
		es.Index = NewInIndex
	case raw.Has(RawIndexDeleted):
		es.Index = Deleted
	case raw.Has(RawIndexModified):
		es.Index = Modified
	case raw.Has(RawIndexRenamed):
		es.Index = Renamed
	case raw.Has(RawIndexTypechange):
		es.Index = Typechange
	default:
		es.Index = Unmodified
	}

	switch {
	case raw.Has(RawWorktreeNew):
		es.Workdir = NewInWorkdir
	case raw.Has(RawWorktreeDeleted):
		es.Workdir = Deleted
	case raw.Has(RawWorktreeModified):
		es.Workdir = Modified
	case raw.Has(RawWorktreeRenamed):
		es.Workdir = Renamed
	case raw.Has(RawIgnored):
		es.Workdir = Ignored
	case raw.Has(RawWorktreeTypechange):
		es.Workdir = Typechange
	case raw.Has(RawConflicted):
		es.Workdir = Conflicted
	default:
		es.Workdir = Unmodified
	}

	return es
}
