// Package widgets contains concrete widget types and their render
// primitives.
//
// Allowed here:
// - widget implementations (banner, counter, timer) and pane chrome
// - stateless drawing/composition helpers
//
// Not allowed here:
// - key handling, registry policy, or terminal runtime concerns
package widgets
