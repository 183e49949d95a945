package dom

import (
	"strings"
	"sync"
)

// Node is an in-memory Element.
//
// Classes keep insertion order so that ClassAttr produces a stable
// attribute value. Listeners are keyed by registration ID so that the
// off function returned by On removes only its own registration.
type Node struct {
	mu        sync.Mutex
	tag       string
	classes   []string
	listeners map[string]map[uint64]func()
	nextID    uint64
	mounted   bool
}

// New creates a mounted Node with the given tag name.
func New(tag string) *Node {
	return &Node{
		tag:       tag,
		listeners: make(map[string]map[uint64]func()),
		mounted:   true,
	}
}

// Tag returns the tag name.
func (n *Node) Tag() string {
	return n.tag
}

// AddClass implements Element.
func (n *Node) AddClass(name string) {
	n.AddClassIfAbsent(name)
}

// AddClassIfAbsent adds the class and reports whether it was newly
// applied. The check and the mutation happen under one lock, so a
// caller pairing the mutation with a side effect sees true exactly
// once per application.
func (n *Node) AddClassIfAbsent(name string) bool {
	if name == "" {
		return false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, c := range n.classes {
		if c == name {
			return false
		}
	}
	n.classes = append(n.classes, name)
	return true
}

// RemoveClass implements Element.
func (n *Node) RemoveClass(name string) {
	n.RemoveClassIfPresent(name)
}

// RemoveClassIfPresent removes the class and reports whether it was
// present.
func (n *Node) RemoveClassIfPresent(name string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, c := range n.classes {
		if c == name {
			n.classes = append(n.classes[:i], n.classes[i+1:]...)
			return true
		}
	}
	return false
}

// HasClass reports whether the class is currently applied.
func (n *Node) HasClass(name string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Classes returns a copy of the applied classes in application order.
func (n *Node) Classes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.classes))
	copy(out, n.classes)
	return out
}

// ClassAttr returns the value for a class attribute.
func (n *Node) ClassAttr() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return strings.Join(n.classes, " ")
}

// Mounted implements Element.
func (n *Node) Mounted() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.mounted
}

// Detach marks the node as removed from the rendered tree.
func (n *Node) Detach() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.mounted = false
}

// On implements Element.
func (n *Node) On(event string, fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	set := n.listeners[event]
	if set == nil {
		set = make(map[uint64]func())
		n.listeners[event] = set
	}
	set[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners[event], id)
	}
}

// Dispatch invokes every listener registered for the event and returns
// how many listeners ran. Listeners run outside the node lock so they
// may mutate the node.
func (n *Node) Dispatch(event string) int {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.listeners[event]))
	for _, fn := range n.listeners[event] {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// ListenerCount returns the number of listeners registered for the event.
func (n *Node) ListenerCount(event string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners[event])
}
