package fade

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTransition_Lifecycle(t *testing.T) {
	tr := New(time.Second)
	if tr.State() != Pending || tr.Alpha() != 0 {
		t.Fatalf("new transition = %v/%d, want pending/0", tr.State(), tr.Alpha())
	}
	if tr.Tick(epoch) {
		t.Error("Tick() on pending transition should not sample")
	}

	tr.Start(epoch)
	if tr.State() != Running {
		t.Fatalf("State() = %v after Start, want running", tr.State())
	}

	tests := []struct {
		at   time.Duration
		want int
	}{
		{0, 0},
		{250 * time.Millisecond, 63},
		{500 * time.Millisecond, 127},
		{999 * time.Millisecond, 254},
		{time.Second, 255},
	}
	for _, tt := range tests {
		if !tr.Tick(epoch.Add(tt.at)) {
			t.Fatalf("Tick(%v) did not sample", tt.at)
		}
		if tr.Alpha() != tt.want {
			t.Errorf("Alpha() at %v = %d, want %d", tt.at, tr.Alpha(), tt.want)
		}
	}
	if tr.State() != Done {
		t.Errorf("State() = %v at duration, want done", tr.State())
	}
	if tr.Tick(epoch.Add(2 * time.Second)) {
		t.Error("Tick() after Done should not sample")
	}
}

func TestTransition_Monotonic(t *testing.T) {
	tr := New(700 * time.Millisecond)
	tr.Start(epoch)
	prev := -1
	for ms := 0; ms <= 1000; ms += 13 {
		tr.Tick(epoch.Add(time.Duration(ms) * time.Millisecond))
		if tr.Alpha() < prev {
			t.Fatalf("alpha decreased from %d to %d at %dms", prev, tr.Alpha(), ms)
		}
		prev = tr.Alpha()
	}
	if prev != MaxAlpha {
		t.Errorf("final alpha = %d, want %d", prev, MaxAlpha)
	}
}

func TestTransition_OutOfOrderSample(t *testing.T) {
	tr := New(time.Second)
	tr.Start(epoch)
	tr.Tick(epoch.Add(800 * time.Millisecond))
	high := tr.Alpha()
	tr.Tick(epoch.Add(100 * time.Millisecond))
	if tr.Alpha() != high {
		t.Errorf("Alpha() = %d after earlier sample, want %d", tr.Alpha(), high)
	}
	tr.Tick(epoch.Add(-time.Second))
	if tr.Alpha() != high {
		t.Errorf("Alpha() = %d after sample before start, want %d", tr.Alpha(), high)
	}
}

func TestTransition_ZeroDuration(t *testing.T) {
	tr := New(0)
	tr.Start(epoch)
	if tr.State() != Done || tr.Alpha() != MaxAlpha {
		t.Errorf("zero duration = %v/%d, want done/255", tr.State(), tr.Alpha())
	}
	if New(-time.Second).Duration() != 0 {
		t.Error("negative duration should clamp to zero")
	}
}

func TestTransition_Cancel(t *testing.T) {
	tr := New(time.Second)
	tr.Start(epoch)
	tr.Tick(epoch.Add(400 * time.Millisecond))
	alpha := tr.Alpha()

	tr.Cancel()
	if !tr.Stopped() || tr.Active() {
		t.Fatal("Cancel() should stop the transition")
	}
	if tr.Tick(epoch.Add(2 * time.Second)) {
		t.Error("Tick() after Cancel should not sample")
	}
	if tr.Alpha() != alpha {
		t.Errorf("Alpha() = %d after cancel, want %d", tr.Alpha(), alpha)
	}
}

func TestTransition_CancelAfterDone(t *testing.T) {
	tr := New(0)
	tr.Start(epoch)
	tr.Cancel()
	if tr.Stopped() {
		t.Error("Cancel() after Done should be a no-op")
	}
}
