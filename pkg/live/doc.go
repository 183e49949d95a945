// Package live is a small demonstration host for the transition engine.
//
// It serves an embedded page and streams DOM patches to the browser over
// a WebSocket: every class the engine applies to a server-side element is
// mirrored as a patch frame, and item insertion/removal is deferred until
// the corresponding transition resolves. The browser side is deliberately
// dumb; all choreography happens on the server.
package live
