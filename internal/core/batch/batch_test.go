package batch

import (
	"errors"
	"fmt"
	"testing"
)

// callRecorder captures the exact external-call trace of a batch run.
type callRecorder struct {
	calls   []string
	failOn  string
	failErr error
}

func (c *callRecorder) apply(id, newName string) error {
	c.calls = append(c.calls, fmt.Sprintf("apply(%s,%s)", id, newName))
	if id == c.failOn {
		return c.failErr
	}
	return nil
}

func (c *callRecorder) finalize() error {
	c.calls = append(c.calls, "finalize()")
	return nil
}

func testSnapshot() Snapshot {
	return Snapshot{
		{ID: "1", Name: "Mod A", Priority: 0},
		{ID: "2", Name: "Mod B", Priority: 1},
		{ID: "3", Name: "Mod C", Priority: 2},
	}
}

func selectAll(Entry) bool { return true }

func appendV2(e Entry) string { return e.Name + "_v2" }

func TestRunAppliesInSnapshotOrder(t *testing.T) {
	rec := &callRecorder{}

	result, err := Run(testSnapshot(), selectAll, appendV2, rec.apply, rec.finalize)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantCalls := []string{
		"apply(1,Mod A_v2)",
		"apply(2,Mod B_v2)",
		"apply(3,Mod C_v2)",
		"finalize()",
	}
	assertCalls(t, rec.calls, wantCalls)

	if result.Applied != 3 {
		t.Errorf("Applied = %d, want 3", result.Applied)
	}
	if result.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", result.Skipped)
	}
	if result.FirstFailure != nil {
		t.Errorf("FirstFailure = %v, want nil", result.FirstFailure)
	}
	if !result.Finalized {
		t.Error("Finalized = false, want true")
	}
	if result.Err() != nil {
		t.Errorf("Err() = %v, want nil", result.Err())
	}
}

func TestRunPartialSelection(t *testing.T) {
	rec := &callRecorder{}

	result, err := Run(testSnapshot(),
		func(e Entry) bool { return e.ID == "2" },
		appendV2, rec.apply, rec.finalize)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	assertCalls(t, rec.calls, []string{"apply(2,Mod B_v2)", "finalize()"})
	if result.Applied != 1 {
		t.Errorf("Applied = %d, want 1", result.Applied)
	}
}

func TestRunFailFast(t *testing.T) {
	cause := errors.New("name collision")
	rec := &callRecorder{failOn: "2", failErr: cause}

	snapshot := Snapshot{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "B"},
		{ID: "3", Name: "C"},
		{ID: "4", Name: "D"},
	}

	result, err := Run(snapshot, selectAll, appendV2, rec.apply, rec.finalize)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// C and D are never touched; finalize still runs exactly once.
	assertCalls(t, rec.calls, []string{"apply(1,A_v2)", "apply(2,B_v2)", "finalize()"})

	if result.Applied != 1 {
		t.Errorf("Applied = %d, want 1", result.Applied)
	}
	if result.FirstFailure == nil {
		t.Fatal("FirstFailure = nil, want failure on entry 2")
	}
	if result.FirstFailure.ID != "2" {
		t.Errorf("FirstFailure.ID = %s, want 2", result.FirstFailure.ID)
	}
	if !errors.Is(result.FirstFailure.Cause, cause) {
		t.Errorf("FirstFailure.Cause = %v, want %v", result.FirstFailure.Cause, cause)
	}
	if !errors.Is(result.Err(), cause) {
		t.Errorf("Err() = %v, want %v", result.Err(), cause)
	}
	if !result.Finalized {
		t.Error("Finalized = false, want true after fail-fast stop")
	}
}

func TestRunNoOpTransformIsSkip(t *testing.T) {
	rec := &callRecorder{}

	result, err := Run(testSnapshot(), selectAll,
		func(e Entry) string {
			if e.ID == "2" {
				return e.Name // unchanged
			}
			return e.Name + "_v2"
		},
		rec.apply, rec.finalize)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	assertCalls(t, rec.calls, []string{"apply(1,Mod A_v2)", "apply(3,Mod C_v2)", "finalize()"})
	if result.Applied != 2 {
		t.Errorf("Applied = %d, want 2", result.Applied)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}
}

func TestRunSkipFinalize(t *testing.T) {
	rec := &callRecorder{}

	result, err := RunWithOptions(testSnapshot(), selectAll, appendV2,
		rec.apply, rec.finalize, Options{SkipFinalize: true})
	if err != nil {
		t.Fatalf("RunWithOptions() error = %v", err)
	}

	assertCalls(t, rec.calls, []string{
		"apply(1,Mod A_v2)",
		"apply(2,Mod B_v2)",
		"apply(3,Mod C_v2)",
	})
	if result.Finalized {
		t.Error("Finalized = true, want false")
	}
	if result.FinalizeErr != nil {
		t.Errorf("FinalizeErr = %v, want nil", result.FinalizeErr)
	}
}

func TestRunFinalizeFailureSurfaces(t *testing.T) {
	finalizeErr := errors.New("manifest rebuild failed")
	rec := &callRecorder{}

	result, err := Run(testSnapshot(), selectAll, appendV2, rec.apply,
		func() error {
			rec.calls = append(rec.calls, "finalize()")
			return finalizeErr
		})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Applied != 3 {
		t.Errorf("Applied = %d, want 3", result.Applied)
	}
	if !errors.Is(result.FinalizeErr, finalizeErr) {
		t.Errorf("FinalizeErr = %v, want %v", result.FinalizeErr, finalizeErr)
	}
	if !errors.Is(result.Err(), finalizeErr) {
		t.Errorf("Err() = %v, want %v", result.Err(), finalizeErr)
	}
}

func TestRunRenamesRecordOldAndNewNames(t *testing.T) {
	rec := &callRecorder{}

	result, err := Run(testSnapshot(),
		func(e Entry) bool { return e.ID != "2" },
		appendV2, rec.apply, rec.finalize)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []Rename{
		{ID: "1", OldName: "Mod A", NewName: "Mod A_v2"},
		{ID: "3", OldName: "Mod C", NewName: "Mod C_v2"},
	}
	if len(result.Renames) != len(want) {
		t.Fatalf("len(Renames) = %d, want %d", len(result.Renames), len(want))
	}
	for i, r := range result.Renames {
		if r != want[i] {
			t.Errorf("Renames[%d] = %+v, want %+v", i, r, want[i])
		}
	}
}

func TestRunPreconditionViolations(t *testing.T) {
	rec := &callRecorder{}

	tests := []struct {
		name     string
		snapshot Snapshot
		selector Selector
		apply    ApplyFunc
		wantErr  string
	}{
		{
			name:     "empty snapshot",
			snapshot: Snapshot{},
			selector: selectAll,
			apply:    rec.apply,
			wantErr:  "snapshot is empty; capture a fresh snapshot before starting a batch",
		},
		{
			name:     "nil selector",
			snapshot: testSnapshot(),
			selector: nil,
			apply:    rec.apply,
			wantErr:  "selector is required",
		},
		{
			name:     "nil apply",
			snapshot: testSnapshot(),
			selector: selectAll,
			apply:    nil,
			wantErr:  "apply callback is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.snapshot, tt.selector, appendV2, tt.apply, rec.finalize)
			if err == nil {
				t.Fatal("Run() error = nil, want precondition violation")
			}
			if err.Error() != tt.wantErr {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
			}
			if len(rec.calls) != 0 {
				t.Errorf("external calls made before precondition check: %v", rec.calls)
			}
		})
	}
}

func TestRunNilFinalizeRequiresOptOut(t *testing.T) {
	rec := &callRecorder{}

	_, err := Run(testSnapshot(), selectAll, appendV2, rec.apply, nil)
	if err == nil || err.Error() != "finalize callback is required" {
		t.Fatalf("Run() error = %v, want finalize guard violation", err)
	}

	// With the explicit opt-out a nil finalize is fine.
	result, err := RunWithOptions(testSnapshot(), selectAll, appendV2,
		rec.apply, nil, Options{SkipFinalize: true})
	if err != nil {
		t.Fatalf("RunWithOptions() error = %v", err)
	}
	if result.Applied != 3 {
		t.Errorf("Applied = %d, want 3", result.Applied)
	}
}

func assertCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("call trace = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call trace = %v, want %v", got, want)
		}
	}
}
