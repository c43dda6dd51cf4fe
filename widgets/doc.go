// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, scrollbars, popup overlay compositor)
//
// Not allowed here:
// - key handling, scroll state, or index synchronization
package widgets
