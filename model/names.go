package model

// ID names a backend chat model. IDs are opaque strings as the provider
// reports them; membership in the closed roster below is the only
// validation applied. Identifiers the provider returns that are not in
// the roster are ignored for resolution, never treated as errors.
type ID string

// GPT-4.1 family constants (general-purpose, vision-capable).
const (
	GPT41     ID = "gpt-4.1"
	GPT41Mini ID = "gpt-4.1-mini"
	GPT41Nano ID = "gpt-4.1-nano"
)

// GPT-4o family constants.
const (
	GPT4o     ID = "gpt-4o"
	GPT4oMini ID = "gpt-4o-mini"
)

// Reasoning family constants. These ignore temperature overrides and do
// not expose log-probabilities.
const (
	O3     ID = "o3"
	O4Mini ID = "o4-mini"
)

// All lists every model identifier the wizard recognizes, in no
// particular order.
var All = []ID{
	GPT41, GPT41Mini, GPT41Nano,
	GPT4o, GPT4oMini,
	O3, O4Mini,
}

// IsKnown reports whether id belongs to the closed roster.
func IsKnown(id ID) bool {
	_, ok := capabilities[id]
	return ok
}
