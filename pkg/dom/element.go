package dom

// Element is the surface the transition engine needs from a rendered item.
//
// Implementations must be safe for concurrent use: class changes and event
// dispatch may arrive from timer goroutines as well as the caller's own.
type Element interface {
	// AddClass adds a class name. Adding a class that is already present
	// is a no-op.
	AddClass(name string)

	// RemoveClass removes a class name if present.
	RemoveClass(name string)

	// Mounted reports whether the element is still part of the rendered
	// tree. Deferred work must not touch an unmounted element.
	Mounted() bool

	// On registers a listener for a native event name and returns a
	// function that removes exactly that listener.
	On(event string, fn func()) (off func())
}
