// Package openai is the concrete transport behind the wizard: model
// listing, liveness pings, and the two real completion calls, all over
// the official openai-go SDK.
//
// The package owns the translation from provider HTTP failures to the
// probe package's typed errors, so the retry loop never inspects
// transport exceptions. Request shaping consults the model capability
// table: reasoning-family models get max_completion_tokens and no
// temperature override.
package openai
