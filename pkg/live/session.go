package live

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/glide-ui/glide/pkg/transition"
)

// item pairs a mirrored element with its transition wrapper.
type item struct {
	el    *Element
	child *transition.Child
}

// session owns one client's list state. All mutations funnel through the
// session lock; patch writes go through the send callback, which the
// server serializes onto the WebSocket.
type session struct {
	log   *slog.Logger
	group *transition.Group
	send  func(Patch)

	mu     sync.Mutex
	nextID int
	items  map[string]*item
}

func newSession(group *transition.Group, send func(Patch), log *slog.Logger) *session {
	return &session{
		log:   log,
		group: group,
		send:  send,
		items: make(map[string]*item),
	}
}

// Add inserts a new item and starts its enter transition.
func (s *session) Add() string {
	s.mu.Lock()
	s.nextID++
	id := fmt.Sprintf("item-%d", s.nextID)
	el := newElement(id, s.send)
	it := &item{el: el, child: s.group.Child(el)}
	s.items[id] = it
	s.mu.Unlock()

	s.send(Patch{Op: OpInsert, ID: id, Value: id})
	it.child.BeforeEnter(func() {
		s.log.Debug("enter settled", "id", id)
	})
	return id
}

// Remove starts the item's leave transition; the element is only dropped
// from the client once the transition resolves.
func (s *session) Remove(id string) bool {
	s.mu.Lock()
	it, ok := s.items[id]
	s.mu.Unlock()
	if !ok {
		return false
	}

	it.child.BeforeLeave(func() {
		s.mu.Lock()
		delete(s.items, id)
		s.mu.Unlock()

		it.el.Detach()
		it.child.Unmount()
		s.send(Patch{Op: OpRemove, ID: id})

		// The removal is committed; let the group observe it.
		it.child.AfterUpdate()
		s.log.Debug("leave settled", "id", id)
	})
	return true
}

// Len returns the number of live items.
func (s *session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Close unmounts every item, cancelling any in-flight transitions.
func (s *session) Close() {
	s.mu.Lock()
	items := make([]*item, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, it)
	}
	s.items = make(map[string]*item)
	s.mu.Unlock()

	for _, it := range items {
		it.el.Detach()
		it.child.Unmount()
	}
}
