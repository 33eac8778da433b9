// Package model defines the closed roster of backend models the wizard
// knows how to drive, the operating modes that group them into cost/quality
// tiers, and the static capability table for optional request features.
//
// The package implements a tiered selection strategy:
//   - Budget: cheapest models, short assumed outputs
//   - Balanced: mid-tier models, the default
//   - Quality: top-tier models, long assumed outputs
//
// Capabilities are baked in at build time rather than discovered at
// runtime because the provider exposes no discovery API for them. Unknown
// identifiers fail closed: every capability reads as false, so the wizard
// never requests a feature a model may not support.
package model
