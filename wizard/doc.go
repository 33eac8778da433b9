// Package wizard ties the steps of a pose-generation session together:
// validate the credential, choose an operating mode, show a pre-flight
// estimate, and run the two real calls (vision describe, then pose
// synthesis).
//
// A Session owns one resolver, one pricing catalog, and one transport
// client for the lifetime of a credential. The credential itself is held
// only by the transport, in memory; nothing here writes it to disk.
package wizard
