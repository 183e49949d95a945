package live

import "github.com/glide-ui/glide/pkg/dom"

// Element is a dom.Node whose class mutations are mirrored to the
// connected browser as patches. The transition engine only ever sees the
// dom.Element surface.
type Element struct {
	*dom.Node
	id   string
	send func(Patch)
}

func newElement(id string, send func(Patch)) *Element {
	return &Element{
		Node: dom.New("li"),
		id:   id,
		send: send,
	}
}

// ID returns the element's wire identifier.
func (e *Element) ID() string {
	return e.id
}

// AddClass applies the class locally and mirrors it to the client.
// Re-adding a present class emits no patch; the node decides under its
// own lock whether the class was newly applied, so concurrent callers
// cannot emit duplicates.
func (e *Element) AddClass(name string) {
	if e.Node.AddClassIfAbsent(name) {
		e.send(Patch{Op: OpClassAdd, ID: e.id, Value: name})
	}
}

// RemoveClass removes the class locally and mirrors it to the client.
func (e *Element) RemoveClass(name string) {
	if e.Node.RemoveClassIfPresent(name) {
		e.send(Patch{Op: OpClassRemove, ID: e.id, Value: name})
	}
}
