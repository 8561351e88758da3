package types

// PathState is what a probe found at a path.
type PathState int

const (
	// Absent covers both "does not exist" and any other stat failure.
	Absent PathState = iota
	RegularOrDirectory
	Symlink
)

func (s PathState) String() string {
	switch s {
	case Absent:
		return "absent"
	case RegularOrDirectory:
		return "present"
	case Symlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Exists reports whether anything was found at the path.
func (s PathState) Exists() bool {
	return s != Absent
}

// Observation is the probed state of an entry's two paths. It is computed
// fresh for every reconciliation and never stored.
type Observation struct {
	// Target comes from a following probe, so only presence is meaningful.
	Target PathState
	// External comes from a non-following probe.
	External PathState
}
