package reconcile_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/configmapper/pkg/reconcile"
	"github.com/arthur-debert/configmapper/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEntryReconciler implements reconcile.EntryReconciler for testing
type MockEntryReconciler struct {
	mock.Mock
}

func (m *MockEntryReconciler) Reconcile(ctx context.Context, entry types.Entry) types.Outcome {
	args := m.Called(entry)
	return args.Get(0).(types.Outcome)
}

type recordingReporter struct {
	outcomes []types.Outcome
}

func (r *recordingReporter) Report(o types.Outcome) {
	r.outcomes = append(r.outcomes, o)
}

func TestDriver_RunsEveryEntryInOrder(t *testing.T) {
	entries := []types.Entry{
		{Name: "a", Target: "/t/a", External: "/e/a"},
		{Name: "b", Target: "/t/b", External: "/e/b"},
		{Name: "c", Target: "/t/c", External: "/e/c"},
		{Name: "d", Target: "/t/d", External: "/e/d"},
	}

	rec := &MockEntryReconciler{}
	rec.On("Reconcile", entries[0]).Return(types.Outcome{Entry: entries[0], Status: types.StatusFailed, Stage: types.CloneRepository})
	rec.On("Reconcile", entries[1]).Return(types.Outcome{Entry: entries[1], Status: types.StatusConverged})
	rec.On("Reconcile", entries[2]).Return(types.Outcome{Entry: entries[2], Status: types.StatusInvalid})
	rec.On("Reconcile", entries[3]).Return(types.Outcome{Entry: entries[3], Status: types.StatusSkipped})

	reporter := &recordingReporter{}
	summary := reconcile.NewDriver(rec, reporter).Run(context.Background(), entries)

	rec.AssertNumberOfCalls(t, "Reconcile", 4)
	assert.Len(t, summary.Outcomes, 4)
	for i, o := range summary.Outcomes {
		assert.Equal(t, entries[i].Name, o.Entry.Name)
	}
	assert.Equal(t, summary.Outcomes, reporter.outcomes)
	assert.Equal(t, 1, summary.Converged)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Invalid)
	assert.True(t, summary.HasErrors())
}

func TestDriver_NilReporter(t *testing.T) {
	entry := types.Entry{Name: "a", Target: "/t/a", External: "/e/a"}
	rec := &MockEntryReconciler{}
	rec.On("Reconcile", entry).Return(types.Outcome{Entry: entry, Status: types.StatusSkipped})

	summary := reconcile.NewDriver(rec, nil).Run(context.Background(), []types.Entry{entry})

	assert.Equal(t, 1, summary.Skipped)
	assert.False(t, summary.HasErrors())
}

func TestDriver_Empty(t *testing.T) {
	summary := reconcile.NewDriver(&MockEntryReconciler{}, nil).Run(context.Background(), nil)
	assert.Empty(t, summary.Outcomes)
}
