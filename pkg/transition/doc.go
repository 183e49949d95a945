// Package transition choreographs enter, appear, and leave CSS-class
// transitions for items in a dynamic list.
//
// A Group holds the shared configuration and produces one Child per list
// item. The host list container calls the Child lifecycle hooks as items
// are inserted and removed; the Child applies the base class immediately,
// defers the active class across one flush window, and resolves the
// completion callback exactly once via a configured timeout, a native
// end-of-transition event, or synchronously when neither is available.
//
// Completion via timers rather than only native events is deliberate:
// end-of-animation notifications are unreliable across rendering
// environments, so a configured timeout always wins over listening.
package transition
