package model

// Mode is an operating mode: a named cost/quality tier that determines
// which models are acceptable and how long a reply to assume when
// estimating cost before a real response exists. Modes are immutable
// values; the wizard ships a closed set of three.
type Mode struct {
	// Name is the human-visible mode name.
	Name string

	// Description explains the trade-off the mode makes.
	Description string

	// Priority lists acceptable models, highest preference first.
	// Never empty, never contains duplicates.
	Priority []ID

	// AssumedOutputTokens is the output length used for cost projection.
	AssumedOutputTokens int
}

// The closed set of operating modes.
var (
	Budget = Mode{
		Name:                "Budget",
		Description:         "Cheapest models, rougher poses. Good for quick drafts.",
		Priority:            []ID{GPT41Nano, GPT4oMini, GPT41Mini},
		AssumedOutputTokens: 300,
	}

	Balanced = Mode{
		Name:                "Balanced",
		Description:         "Mid-tier models. The default trade of cost against fidelity.",
		Priority:            []ID{GPT41Mini, GPT4oMini, GPT41},
		AssumedOutputTokens: 600,
	}

	Quality = Mode{
		Name:                "Quality",
		Description:         "Top-tier models, longest replies. Best pose fidelity.",
		Priority:            []ID{GPT41, GPT4o, O3},
		AssumedOutputTokens: 900,
	}
)

// Modes returns the closed set of operating modes, cheapest first.
func Modes() []Mode {
	return []Mode{Budget, Balanced, Quality}
}

// ModeByName looks up a mode by its name, case-sensitively.
func ModeByName(name string) (Mode, bool) {
	for _, m := range Modes() {
		if m.Name == name {
			return m, true
		}
	}
	return Mode{}, false
}

// Allows reports whether id is a member of the mode's priority list.
func (m Mode) Allows(id ID) bool {
	for _, p := range m.Priority {
		if p == id {
			return true
		}
	}
	return false
}
