// Package posekit provides the model-resolution and cost-estimation core
// for an image-to-pose wizard: a tool that sends a photo plus a rough pose
// description to an OpenAI chat model and turns the reply into a set of
// 3D bone rotations.
//
// posekit is designed to be imported à la carte. Each subpackage can be
// used independently:
//
//   - model: the known model roster, operating modes, and capability table
//   - tokens: token counting (tiktoken with a deterministic fallback) and
//     the image tile-cost formula
//   - pricing: the user-editable per-model pricing catalog
//   - probe: model availability listing and liveness probing with retry
//   - openai: the concrete OpenAI transport behind probe and wizard
//   - resolver: deterministic model selection per operating mode
//   - estimate: pre-flight cost estimates from tokens and pricing
//   - pose: prompt building and tolerant extraction of bone rotations
//   - wizard: session orchestration tying the steps together
//
// # Quick Start
//
// Resolving a model and estimating a run:
//
//	client := openai.NewClient(apiKey)
//	res := resolver.New(client, probe.NewProber(client), model.Balanced)
//	id, err := res.Resolve(ctx, "")
//	if err != nil {
//	    // render resolver.Describe(err)
//	}
//
//	catalog := pricing.NewCatalog("")
//	est := estimate.New(nil).Vision(catalog.Rates(id), 1024, 1024,
//	    pose.DescribePrompt(), model.Balanced.AssumedOutputTokens)
//
// # Design Philosophy
//
//   - Every failure path returns a value or a typed error the caller can
//     render; nothing in this module is fatal to the process
//   - Interfaces for the network edge, concrete types everywhere else
//   - Sensible defaults with full configurability
package posekit
