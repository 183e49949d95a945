package transition

import (
	"testing"
	"time"

	"github.com/glide-ui/glide/pkg/dom"
)

func TestGroupLeaveScenario(t *testing.T) {
	clock := newFakeClock()
	ends := 0
	cfg := DefaultConfig()
	cfg.Name = "fade"
	cfg.LeaveTimeout = 300 * time.Millisecond
	cfg.OnTransitionEnd = func() { ends++ }

	g := NewGroup(cfg, WithClock(clock), WithEvents(testEvents))
	node := dom.New("li")
	child := g.Child(node)

	done := 0
	child.BeforeLeave(func() { done++ })

	if !node.HasClass("fade-leave") {
		t.Fatal("fade-leave not applied immediately")
	}

	clock.Advance(FlushInterval)
	if !node.HasClass("fade-leave-active") {
		t.Fatal("fade-leave-active not applied within one flush window")
	}

	clock.Advance(300*time.Millisecond - FlushInterval)
	if done != 1 {
		t.Fatalf("done calls = %d at leave timeout, want 1", done)
	}
	if node.HasClass("fade-leave") || node.HasClass("fade-leave-active") {
		t.Errorf("classes = %v, want leave classes removed", node.Classes())
	}
	if ends != 0 {
		t.Fatalf("OnTransitionEnd calls = %d before commit, want 0", ends)
	}

	// The host container removes the element and commits; the next
	// update notifies the group exactly once.
	child.AfterUpdate()
	if ends != 1 {
		t.Fatalf("OnTransitionEnd calls = %d after commit, want 1", ends)
	}
	child.AfterUpdate()
	if ends != 1 {
		t.Errorf("OnTransitionEnd calls = %d after second commit, want 1", ends)
	}
}

func TestLeaveFlagScopedPerGroup(t *testing.T) {
	clock := newFakeClock()

	endsA, endsB := 0, 0
	cfgA := DefaultConfig()
	cfgA.OnTransitionEnd = func() { endsA++ }
	cfgB := DefaultConfig()
	cfgB.OnTransitionEnd = func() { endsB++ }

	groupA := NewGroup(cfgA, WithClock(clock), WithEvents(testEvents))
	groupB := NewGroup(cfgB, WithClock(clock), WithEvents(testEvents))

	childA := groupA.Child(dom.New("li"))
	childB := groupB.Child(dom.New("li"))

	childA.BeforeLeave(func() {})

	childB.AfterUpdate()
	if endsB != 0 {
		t.Errorf("group B OnTransitionEnd calls = %d, want 0", endsB)
	}

	childA.AfterUpdate()
	if endsA != 1 {
		t.Errorf("group A OnTransitionEnd calls = %d, want 1", endsA)
	}
}

func TestAfterUpdateWithoutLeaveIsNoop(t *testing.T) {
	ends := 0
	cfg := DefaultConfig()
	cfg.OnTransitionEnd = func() { ends++ }

	g := NewGroup(cfg, WithClock(newFakeClock()), WithEvents(testEvents))
	child := g.Child(dom.New("li"))

	child.AfterUpdate()
	if ends != 0 {
		t.Errorf("OnTransitionEnd calls = %d, want 0", ends)
	}
}

func TestNewGroupDefaultsName(t *testing.T) {
	g := NewGroup(Config{})
	if got := g.Config().Name; got != DefaultName {
		t.Errorf("Name = %q, want %q", got, DefaultName)
	}
}

func TestDefaultConfigGates(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Enter {
		t.Error("Enter = false, want enabled by default")
	}
	if !cfg.Leave {
		t.Error("Leave = false, want enabled by default")
	}
	if cfg.Appear {
		t.Error("Appear = true, want disabled by default")
	}
}

func TestBeforeAppearGatedSeparately(t *testing.T) {
	clock := newFakeClock()

	// Appear disabled (the default) completes synchronously even though
	// enter is enabled.
	cfg := DefaultConfig()
	cfg.Name = "fade"
	g := NewGroup(cfg, WithClock(clock), WithEvents(testEvents))
	node := dom.New("li")
	child := g.Child(node)

	calls := 0
	child.BeforeAppear(func() { calls++ })
	if calls != 1 {
		t.Fatalf("done calls = %d with appear disabled, want 1", calls)
	}
	if len(node.Classes()) != 0 {
		t.Errorf("classes = %v, want none", node.Classes())
	}

	// Enabled appear runs the full choreography with its own class names.
	cfg.Appear = true
	cfg.EnterTimeout = 100 * time.Millisecond
	g = NewGroup(cfg, WithClock(clock), WithEvents(testEvents))
	node = dom.New("li")
	child = g.Child(node)

	calls = 0
	child.BeforeAppear(func() { calls++ })
	if !node.HasClass("fade-appear") {
		t.Fatal("fade-appear not applied")
	}
	clock.Advance(100 * time.Millisecond)
	if calls != 1 {
		t.Errorf("done calls = %d after appear timeout, want 1", calls)
	}
}
