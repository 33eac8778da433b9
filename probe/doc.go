// Package probe checks which models a credential can actually use.
//
// Listing is one network call; any failure there surfaces as an invalid
// credential, because the wizard's key-validation step treats "bad key"
// and "network down" the same way. Probing sends one minimal request per
// candidate and retries transient failures on a fixed backoff schedule,
// while authentication, authorization, and quota failures abort
// immediately: retrying those only wastes latency and provider calls.
package probe
