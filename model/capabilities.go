package model

// Capability describes which optional request features a model supports.
// The table is compile-time data: the provider has no discovery endpoint
// for this, so roster changes require a code change.
type Capability struct {
	// LogProbs indicates the model accepts a log-probabilities request.
	LogProbs bool

	// Temperature indicates the model honors a sampling-temperature
	// override. Reasoning-family models ignore it and run at their
	// fixed default.
	Temperature bool

	// Reasoning marks the reasoning model family, which uses
	// max_completion_tokens instead of max_tokens.
	Reasoning bool
}

var capabilities = map[ID]Capability{
	GPT41:     {LogProbs: true, Temperature: true},
	GPT41Mini: {LogProbs: true, Temperature: true},
	GPT41Nano: {LogProbs: true, Temperature: true},
	GPT4o:     {LogProbs: true, Temperature: true},
	GPT4oMini: {LogProbs: true, Temperature: true},
	O3:        {Reasoning: true},
	O4Mini:    {Reasoning: true},
}

// CapabilityFor returns the capability record for id. Unknown identifiers
// return the zero record: every capability false.
func CapabilityFor(id ID) Capability {
	return capabilities[id]
}

// SupportsLogProbs reports whether id accepts a log-probabilities request.
func SupportsLogProbs(id ID) bool {
	return capabilities[id].LogProbs
}

// SupportsTemperature reports whether id honors a temperature override.
func SupportsTemperature(id ID) bool {
	return capabilities[id].Temperature
}

// IsReasoningFamily reports whether id belongs to the reasoning family.
func IsReasoningFamily(id ID) bool {
	return capabilities[id].Reasoning
}
