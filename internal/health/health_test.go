package health

import "testing"

func TestCheckRollsUpWorstStatus(t *testing.T) {
	r := NewRegistry()
	r.Register("store", CheckFunc(func() ComponentHealth { return OK("store") }))

	report := r.Check()
	if report.Status != StatusOK {
		t.Errorf("status = %q, want ok", report.Status)
	}
	if len(report.Components) != 1 {
		t.Fatalf("got %d components", len(report.Components))
	}

	r.Register("ledger", CheckFunc(func() ComponentHealth {
		return Errorf("ledger", "2 slots out of balance")
	}))
	report = r.Check()
	if report.Status != StatusError {
		t.Errorf("status = %q, want error", report.Status)
	}
	if report.Components["ledger"].Message == "" {
		t.Error("failing component should carry a message")
	}
}
