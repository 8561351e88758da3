package reconcile

import (
	"context"
	"fmt"

	"github.com/arthur-debert/configmapper/pkg/logging"
	"github.com/arthur-debert/configmapper/pkg/probe"
	"github.com/arthur-debert/configmapper/pkg/runner"
	"github.com/arthur-debert/configmapper/pkg/types"
)

// Diagnostic messages for outcomes that carry no error.
const (
	MsgConverged        = "done"
	MsgSkipped          = "skip, symlink already exists"
	MsgInvalid          = "invalid config, target and external don't exist"
	MsgDanglingExternal = "invalid config, external is a symlink but target doesn't exist"
)

// Reconciler converges a single entry.
type Reconciler struct {
	fs     types.FS
	runner runner.Runner
}

// New creates a reconciler that probes through fs and mutates through r.
func New(fs types.FS, r runner.Runner) *Reconciler {
	return &Reconciler{fs: fs, runner: r}
}

// Plan probes the entry and returns the plan Reconcile would run.
func (r *Reconciler) Plan(entry types.Entry) (types.Observation, Plan) {
	obs := probe.Observe(r.fs, entry)
	return obs, BuildPlan(entry, obs)
}

// Reconcile probes, plans and executes one entry. It never panics on
// filesystem trouble; every failure is reported in the returned Outcome.
func (r *Reconciler) Reconcile(ctx context.Context, entry types.Entry) types.Outcome {
	logger := logging.GetLogger("reconcile").With().Str("entry", entry.Name).Logger()

	obs, plan := r.Plan(entry)
	logger.Debug().
		Str("target", obs.Target.String()).
		Str("external", obs.External.String()).
		Bool("repo", entry.HasRepo()).
		Str("case", plan.Case.String()).
		Int("actions", len(plan.Actions)).
		Msg("Classified entry")

	outcome := types.Outcome{Entry: entry, Observation: obs}

	switch plan.Case {
	case CaseInvalid:
		outcome.Status = types.StatusInvalid
		outcome.Message = MsgInvalid
		logger.Error().Msg(outcome.Message)
		return outcome
	case CaseDanglingExternal:
		outcome.Status = types.StatusInvalid
		outcome.Message = MsgDanglingExternal
		logger.Error().Str("external", entry.External).Msg(outcome.Message)
		return outcome
	case CaseConverged:
		outcome.Status = types.StatusSkipped
		outcome.Message = MsgSkipped
		logger.Info().Msg(outcome.Message)
		return outcome
	}

	results, failed := r.execute(ctx, plan.Actions)
	outcome.Results = results
	if failed != nil {
		outcome.Status = types.StatusFailed
		outcome.Stage = failed.Action.Kind
		outcome.Err = failed.Error
		outcome.Message = failed.Error.Error()
		logger.Error().Err(failed.Error).Str("stage", failed.Action.Kind.String()).Msg("Entry failed")
		return outcome
	}

	outcome.Status = types.StatusConverged
	outcome.Message = MsgConverged
	logger.Info().Msg(outcome.Message)
	return outcome
}

// execute runs actions in order and stops at the first failure, which is
// returned alongside every result produced so far.
func (r *Reconciler) execute(ctx context.Context, actions []types.Action) ([]types.ActionResult, *types.ActionResult) {
	results := make([]types.ActionResult, 0, len(actions))

	for _, action := range actions {
		result := r.executeOne(ctx, action)
		results = append(results, result)
		if result.Error != nil {
			return results, &results[len(results)-1]
		}
	}

	return results, nil
}

// executeOne maps an action onto the runner.
func (r *Reconciler) executeOne(ctx context.Context, action types.Action) types.ActionResult {
	var err error
	var message string

	switch action.Kind {
	case types.CloneRepository:
		err = r.runner.CloneRepository(ctx, action.Source, action.Dest)
		message = fmt.Sprintf("Cloned %s into %s", action.Source, action.Dest)
	case types.CopyTree:
		err = r.runner.CopyTree(action.Source, action.Dest)
		message = fmt.Sprintf("Copied %s to %s", action.Source, action.Dest)
	case types.RenameAside:
		var aside string
		aside, err = r.runner.RenameAside(action.Source)
		message = fmt.Sprintf("Moved %s to %s", action.Source, aside)
	case types.RemoveTree:
		err = r.runner.RemoveTree(action.Source)
		message = fmt.Sprintf("Removed %s", action.Source)
	case types.CreateSymlink:
		err = r.runner.CreateSymlink(action.Source, action.Dest)
		message = fmt.Sprintf("Linked %s → %s", action.Dest, action.Source)
	default:
		err = fmt.Errorf("unknown action kind: %d", int(action.Kind))
	}

	if err != nil {
		return types.ActionResult{Action: action, Success: false, Error: err}
	}
	return types.ActionResult{Action: action, Success: true, Message: message}
}
