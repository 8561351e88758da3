package types

import "fmt"

// ActionKind is one of the five filesystem operations the reconciler can
// ask the runner for.
type ActionKind int

const (
	CloneRepository ActionKind = iota
	CopyTree
	RenameAside
	RemoveTree
	CreateSymlink
)

func (k ActionKind) String() string {
	switch k {
	case CloneRepository:
		return "clone-repository"
	case CopyTree:
		return "copy-tree"
	case RenameAside:
		return "rename-aside"
	case RemoveTree:
		return "remove-tree"
	case CreateSymlink:
		return "create-symlink"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Action is a single planned step. Source and Dest are interpreted per kind:
//
//	CloneRepository  Source=repo       Dest=target
//	CopyTree         Source=external   Dest=target
//	RenameAside      Source=external   Dest=external+AsideSuffix
//	RemoveTree       Source=renamed    Dest=""
//	CreateSymlink    Source=target     Dest=external
type Action struct {
	Kind   ActionKind
	Source string
	Dest   string
}

func (a Action) String() string {
	if a.Dest == "" {
		return fmt.Sprintf("%s %s", a.Kind, a.Source)
	}
	return fmt.Sprintf("%s %s -> %s", a.Kind, a.Source, a.Dest)
}

// ActionResult captures the outcome of executing one action.
type ActionResult struct {
	Action  Action
	Success bool
	Message string
	Error   error
}
