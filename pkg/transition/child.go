package transition

import (
	"sync"
	"time"

	"github.com/glide-ui/glide/pkg/dom"
)

// Child owns the transition lifecycle of a single list item. The host
// container calls BeforeEnter, BeforeAppear, or BeforeLeave as the item
// moves through the list, AfterUpdate after each render commit, and
// Unmount when the item's wrapper is destroyed.
//
// A Child runs one transition at a time; starting a new transition
// cancels the completion wait of any transition still in flight. At most
// one flush timer and one completion timer are ever pending.
type Child struct {
	group *Group
	el    dom.Element

	mu         sync.Mutex
	unmounted  bool
	gen        uint64   // current transition generation; stale finishes are ignored
	pending    []string // class names awaiting the next flush
	flushTimer Timer
	doneTimer  Timer
	offs       []func() // native listener detachers for the in-flight wait
}

// BeforeEnter starts an enter transition for a newly inserted item.
// done is invoked exactly once when the transition resolves; if enter
// transitions are disabled it is invoked synchronously with no classes
// applied.
func (c *Child) BeforeEnter(done func()) {
	c.begin(KindEnter, done)
}

// BeforeAppear starts an appear transition for an item present at
// initial mount. Gated separately from enter and disabled by default.
func (c *Child) BeforeAppear(done func()) {
	c.begin(KindAppear, done)
}

// BeforeLeave starts a leave transition for an item about to be removed.
// It also marks the group's leave-in-progress flag so the AfterUpdate
// following the actual removal notifies the group's OnTransitionEnd.
func (c *Child) BeforeLeave(done func()) {
	c.group.markLeaving()
	c.begin(KindLeave, done)
}

// AfterUpdate must be called after each render commit. If a leave was
// in progress in this child's group, the group's OnTransitionEnd
// callback fires once, signalling the host container that the element
// may now actually be dropped.
func (c *Child) AfterUpdate() {
	if c.group.consumeLeaving() {
		if cb := c.group.cfg.OnTransitionEnd; cb != nil {
			cb()
		}
	}
}

// Unmount releases the child's timers and listeners. It must be called
// on every exit path; afterwards no queued flush, timeout, or native
// event callback will run against the destroyed item.
func (c *Child) Unmount() {
	c.mu.Lock()
	if c.unmounted {
		c.mu.Unlock()
		return
	}
	c.unmounted = true
	c.pending = nil
	if c.flushTimer != nil {
		c.flushTimer.Stop()
		c.flushTimer = nil
	}
	if c.doneTimer != nil {
		c.doneTimer.Stop()
		c.doneTimer = nil
	}
	offs := c.detachLocked()
	c.mu.Unlock()

	for _, off := range offs {
		off()
	}
}

// begin checks the kind's gate and runs the transition.
func (c *Child) begin(kind Kind, done func()) {
	if !c.group.cfg.enabledFor(kind) {
		if done != nil {
			done()
		}
		return
	}
	c.run(kind, done)
}

// run starts a transition of the given kind and arranges for done to be
// invoked exactly once when it resolves.
func (c *Child) run(kind Kind, done func()) {
	cfg := &c.group.cfg
	base := cfg.Name + "-" + kind.String()
	active := base + "-active"
	start := time.Now()

	if obs := c.group.obs; obs != nil {
		obs.TransitionStarted(kind)
	}

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	// One-shot finish routine. The fired flag, the timer stop, and the
	// listener detach all happen under the child lock so a race between
	// the timeout and a native event cannot invoke done twice; the
	// generation check drops finishes from a superseded transition.
	fired := false
	finish := func(res Resolution) {
		c.mu.Lock()
		if fired || c.unmounted || c.gen != gen {
			c.mu.Unlock()
			return
		}
		fired = true
		if c.doneTimer != nil {
			c.doneTimer.Stop()
			c.doneTimer = nil
		}
		offs := c.detachLocked()
		c.mu.Unlock()

		for _, off := range offs {
			off()
		}
		c.el.RemoveClass(base)
		c.el.RemoveClass(active)
		if obs := c.group.obs; obs != nil {
			obs.TransitionFinished(kind, res, time.Since(start))
		}
		if done != nil {
			done()
		}
	}

	// No usable completion signal in this environment: resolve
	// synchronously rather than waiting forever. No classes are applied
	// since there is no visual transition to drive.
	if !c.group.events.Supported() {
		finish(ResolutionSync)
		return
	}

	c.mu.Lock()
	if c.unmounted {
		c.mu.Unlock()
		return
	}
	// Starting a new wait cancels the previous one; a child never has
	// two pending completions.
	if c.doneTimer != nil {
		c.doneTimer.Stop()
		c.doneTimer = nil
	}
	stale := c.detachLocked()

	if timeout := cfg.timeoutFor(kind); timeout > 0 {
		c.doneTimer = c.group.clock.AfterFunc(timeout, func() {
			finish(ResolutionTimeout)
		})
	} else {
		for _, name := range c.group.events.All() {
			off := c.el.On(name, func() {
				finish(ResolutionEvent)
			})
			c.offs = append(c.offs, off)
		}
	}
	c.mu.Unlock()

	for _, off := range stale {
		off()
	}

	c.el.AddClass(base)
	c.enqueueClass(active)
}

// enqueueClass defers a class name to the next flush window, scheduling
// the flush timer if none is pending.
func (c *Child) enqueueClass(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unmounted {
		return
	}
	c.pending = append(c.pending, name)
	if c.flushTimer == nil {
		c.flushTimer = c.group.clock.AfterFunc(FlushInterval, c.flush)
	}
}

// flush applies every queued class in enqueue order, provided the item
// is still mounted.
func (c *Child) flush() {
	c.mu.Lock()
	if c.unmounted {
		c.mu.Unlock()
		return
	}
	classes := c.pending
	c.pending = nil
	c.flushTimer = nil
	c.mu.Unlock()

	if !c.el.Mounted() {
		return
	}
	for _, name := range classes {
		c.el.AddClass(name)
	}
}

// detachLocked takes ownership of the registered listener detachers.
// The caller must hold c.mu and run the returned functions after
// releasing it, since Element implementations may lock internally.
func (c *Child) detachLocked() []func() {
	offs := c.offs
	c.offs = nil
	return offs
}
