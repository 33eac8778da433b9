package model

import "testing"

func TestIsKnown(t *testing.T) {
	for _, id := range All {
		if !IsKnown(id) {
			t.Errorf("IsKnown(%s) = false, want true", id)
		}
	}
	if IsKnown("gpt-3.5-turbo") {
		t.Error("IsKnown(gpt-3.5-turbo) = true, want false")
	}
	if IsKnown("") {
		t.Error("IsKnown(\"\") = true, want false")
	}
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		id          ID
		logProbs    bool
		temperature bool
		reasoning   bool
	}{
		{GPT41, true, true, false},
		{GPT41Mini, true, true, false},
		{GPT41Nano, true, true, false},
		{GPT4o, true, true, false},
		{GPT4oMini, true, true, false},
		{O3, false, false, true},
		{O4Mini, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			if got := SupportsLogProbs(tt.id); got != tt.logProbs {
				t.Errorf("SupportsLogProbs(%s) = %v, want %v", tt.id, got, tt.logProbs)
			}
			if got := SupportsTemperature(tt.id); got != tt.temperature {
				t.Errorf("SupportsTemperature(%s) = %v, want %v", tt.id, got, tt.temperature)
			}
			if got := IsReasoningFamily(tt.id); got != tt.reasoning {
				t.Errorf("IsReasoningFamily(%s) = %v, want %v", tt.id, got, tt.reasoning)
			}
		})
	}
}

func TestCapabilitiesFailClosed(t *testing.T) {
	// Unknown identifiers must never report a capability.
	unknown := ID("some-future-model")
	if SupportsLogProbs(unknown) || SupportsTemperature(unknown) || IsReasoningFamily(unknown) {
		t.Errorf("unknown model reported a capability: %+v", CapabilityFor(unknown))
	}
}

func TestModeInvariants(t *testing.T) {
	for _, m := range Modes() {
		t.Run(m.Name, func(t *testing.T) {
			if len(m.Priority) == 0 {
				t.Fatal("priority list is empty")
			}
			if m.AssumedOutputTokens <= 0 {
				t.Errorf("AssumedOutputTokens = %d, want > 0", m.AssumedOutputTokens)
			}
			if m.Description == "" {
				t.Error("description is empty")
			}
			seen := make(map[ID]bool)
			for _, id := range m.Priority {
				if !IsKnown(id) {
					t.Errorf("priority list contains unknown model %s", id)
				}
				if seen[id] {
					t.Errorf("priority list contains duplicate %s", id)
				}
				seen[id] = true
			}
		})
	}
}

func TestModeByName(t *testing.T) {
	for _, name := range []string{"Budget", "Balanced", "Quality"} {
		m, ok := ModeByName(name)
		if !ok {
			t.Errorf("ModeByName(%s) not found", name)
		}
		if m.Name != name {
			t.Errorf("ModeByName(%s).Name = %s", name, m.Name)
		}
	}
	if _, ok := ModeByName("turbo"); ok {
		t.Error("ModeByName(turbo) found, want miss")
	}
}

func TestModeAllows(t *testing.T) {
	if !Balanced.Allows(GPT41Mini) {
		t.Error("Balanced should allow gpt-4.1-mini")
	}
	if Budget.Allows(O3) {
		t.Error("Budget should not allow o3")
	}
	if Quality.Allows("") {
		t.Error("empty id should never be allowed")
	}
}
