package reconcile

import (
	"github.com/arthur-debert/configmapper/pkg/runner"
	"github.com/arthur-debert/configmapper/pkg/types"
)

// Case is the classification of an entry's observed state.
type Case int

const (
	CaseInvalid Case = iota
	CaseCloneAndLink
	CaseCloneAndDisplace
	CaseCopyAndDisplace
	CaseLink
	CaseDisplace
	CaseConverged
	CaseDanglingExternal
)

func (c Case) String() string {
	switch c {
	case CaseInvalid:
		return "invalid"
	case CaseCloneAndLink:
		return "clone and link"
	case CaseCloneAndDisplace:
		return "clone, displace and link"
	case CaseCopyAndDisplace:
		return "copy, displace and link"
	case CaseLink:
		return "link"
	case CaseDisplace:
		return "displace and link"
	case CaseConverged:
		return "converged"
	case CaseDanglingExternal:
		return "dangling external"
	default:
		return "unknown"
	}
}

// Plan is the ordered list of actions chosen for one entry.
type Plan struct {
	Case    Case
	Actions []types.Action
}

// Mutates reports whether running the plan would touch the filesystem.
func (p Plan) Mutates() bool {
	return len(p.Actions) > 0
}

// Classify picks the case for an entry. It partitions on target presence
// first, then external presence, then whether external is a symlink, then
// whether a repo is declared.
func Classify(entry types.Entry, obs types.Observation) Case {
	if !obs.Target.Exists() {
		switch obs.External {
		case types.Absent:
			if entry.HasRepo() {
				return CaseCloneAndLink
			}
			return CaseInvalid
		case types.Symlink:
			return CaseDanglingExternal
		default:
			if entry.HasRepo() {
				return CaseCloneAndDisplace
			}
			return CaseCopyAndDisplace
		}
	}

	switch obs.External {
	case types.Absent:
		return CaseLink
	case types.Symlink:
		return CaseConverged
	default:
		return CaseDisplace
	}
}

// BuildPlan classifies the entry and expands the case into actions.
func BuildPlan(entry types.Entry, obs types.Observation) Plan {
	c := Classify(entry, obs)

	clone := types.Action{Kind: types.CloneRepository, Source: entry.Repo, Dest: entry.Target}
	copyTree := types.Action{Kind: types.CopyTree, Source: entry.External, Dest: entry.Target}
	link := types.Action{Kind: types.CreateSymlink, Source: entry.Target, Dest: entry.External}
	aside := runner.AsidePath(entry.External)
	displace := []types.Action{
		{Kind: types.RenameAside, Source: entry.External, Dest: aside},
		{Kind: types.RemoveTree, Source: aside},
	}

	var actions []types.Action
	switch c {
	case CaseCloneAndLink:
		actions = []types.Action{clone, link}
	case CaseCloneAndDisplace:
		actions = append(append([]types.Action{clone}, displace...), link)
	case CaseCopyAndDisplace:
		actions = append(append([]types.Action{copyTree}, displace...), link)
	case CaseLink:
		actions = []types.Action{link}
	case CaseDisplace:
		actions = append(displace, link)
	}

	return Plan{Case: c, Actions: actions}
}
