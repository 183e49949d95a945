package transition

import (
	"sync"

	"github.com/glide-ui/glide/pkg/dom"
)

// Group wraps a collection of transitioning items. It owns the shared
// Config, the resolved event-name table, and the leave-in-progress flag
// consulted by AfterUpdate. Which items are new, which are leaving, and
// how they are keyed is the host list container's business; the Group
// only hands out configured Child instances.
type Group struct {
	cfg    Config
	events EventNames
	clock  Clock
	obs    Observer

	// leaving is set when any child of this group starts a leave
	// transition and consumed by the first AfterUpdate that follows.
	// It is scoped per group: leaves in one group never trigger
	// another group's completion callback.
	leavingMu sync.Mutex
	leaving   bool
}

// Option configures a Group.
type Option func(*Group)

// WithEvents supplies the native completion event-name table, normally
// the result of a single DetectEvents call at process start. Without it
// the group behaves as if the environment has no native completion
// events.
func WithEvents(e EventNames) Option {
	return func(g *Group) {
		g.events = e
	}
}

// WithClock substitutes the timer source. Tests use it to drive flush
// and completion timers deterministically.
func WithClock(c Clock) Option {
	return func(g *Group) {
		g.clock = c
	}
}

// WithObserver attaches an Observer for instrumentation.
func WithObserver(o Observer) Option {
	return func(g *Group) {
		g.obs = o
	}
}

// NewGroup creates a Group with the given configuration.
// An empty Name falls back to DefaultName.
func NewGroup(cfg Config, opts ...Option) *Group {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	g := &Group{
		cfg:   cfg,
		clock: realClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the group configuration.
func (g *Group) Config() Config {
	return g.cfg
}

// Child wraps a single element with this group's configuration.
// Call it once per list item when the item's wrapper mounts.
func (g *Group) Child(el dom.Element) *Child {
	return &Child{
		group: g,
		el:    el,
	}
}

// markLeaving records that a leave transition started in this group.
func (g *Group) markLeaving() {
	g.leavingMu.Lock()
	g.leaving = true
	g.leavingMu.Unlock()
}

// consumeLeaving reports whether a leave was in progress and clears the
// flag, so the completion callback fires once per settled update.
func (g *Group) consumeLeaving() bool {
	g.leavingMu.Lock()
	defer g.leavingMu.Unlock()
	was := g.leaving
	g.leaving = false
	return was
}
