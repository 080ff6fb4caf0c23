// Package core contains the widget system's contracts and state orchestration.
//
// Allowed here:
// - widget and state contracts, event channels, subscription plumbing
// - the registry coordinator and its change notification
// - factory and scheduler collaborator boundaries
//
// Not allowed here:
// - concrete widget rendering implementations
// - terminal runtime, key handling, or config concerns
//
// Nothing in this package is safe for concurrent use. The system assumes one
// logical UI thread; hosts that mutate widgets from other goroutines must add
// their own synchronization.
package core
