// Package resolver picks the one backend model a session runs against.
//
// Given an operating mode, the resolver walks the mode's priority list
// over the credential's availability set and caches the first candidate
// that answers a live probe. An explicit user override is probed first,
// even when it belongs to another mode's tier: a manual choice always
// gets the first attempt.
//
// There is deliberately no cross-mode fallback. If every candidate in
// the Quality list fails, resolution fails with a message naming the
// models the user needs access to; it never silently downgrades to a
// cheaper tier.
//
// Switching modes keeps the cached model only while it remains in the
// new mode's priority list; otherwise the cache is cleared and
// resolution re-runs. Concurrent resolutions follow last-call-wins: a
// superseded resolution never overwrites newer state.
package resolver
