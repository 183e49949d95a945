// Package dom defines the minimal element surface the transition engine
// manipulates, plus an in-memory Node implementation.
//
// The engine never talks to a real browser DOM directly. A host framework
// adapts its own element representation to the Element interface; Node is
// the reference implementation used by tests and by the live demo server,
// which mirrors Node mutations to the browser as patches.
package dom
