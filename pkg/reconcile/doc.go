// Package reconcile converges entries: for each one it probes the target and
// external paths, picks one of a fixed set of cases, and runs that case's
// actions in order through a runner.Runner.
//
// The decision is table driven. Classify maps an observation to a Case,
// BuildPlan turns the case into an ordered action list, and the reconciler
// runs the list stopping at the first failure:
//
//	case               target   external   symlink  repo  actions
//	Invalid            absent   absent     -        no    none (config error)
//	CloneAndLink       absent   absent     -        yes   clone, link
//	CloneAndDisplace   absent   present    no       yes   clone, aside, remove, link
//	CopyAndDisplace    absent   present    no       no    copy, aside, remove, link
//	Link               present  absent     -        -     link
//	Displace           present  present    no       -     aside, remove, link
//	Converged          present  present    yes      -     none (skip)
//	DanglingExternal   absent   symlink    -        -     none (config error)
//
// Provisioning always precedes displacement, and displacement always
// precedes the symlink, so a failure never leaves external pointing at
// missing content. A populated target is never overwritten; repo is ignored
// once the target exists.
//
// The Driver runs entries one after the other in input order. A failed entry
// never stops the run.
package reconcile
