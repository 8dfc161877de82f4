package faq

import "testing"

func TestIntentForCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{name: "mapped category", category: "program", want: "program details"},
		{name: "mapped with casing", category: "  Qualification ", want: "qualifications"},
		{name: "identity for known intent", category: "location", want: "location"},
		{name: "unknown maps to itself", category: "covid-guidelines", want: "covid-guidelines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntentForCategory(tt.category); got != tt.want {
				t.Errorf("IntentForCategory(%q) = %q, want %q", tt.category, got, tt.want)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	if got := Canonical("hours", nil); got == "" {
		t.Error("Canonical(hours) returned empty answer")
	}

	overrides := map[string]string{"hours": "override text"}
	if got := Canonical("hours", overrides); got != "override text" {
		t.Errorf("Canonical() with override = %q, want override text", got)
	}

	// Overrides can introduce intents that have no compiled-in answer.
	overrides = map[string]string{"covid-guidelines": "mask up"}
	if got := Canonical("covid-guidelines", overrides); got != "mask up" {
		t.Errorf("Canonical() new intent = %q, want mask up", got)
	}

	if got := Canonical("no such intent", nil); got != "" {
		t.Errorf("Canonical() unknown intent = %q, want empty", got)
	}
}

func TestIntents(t *testing.T) {
	intents := Intents()
	if len(intents) != len(IntentSynonyms) {
		t.Fatalf("Intents() returned %d entries, want %d", len(intents), len(IntentSynonyms))
	}
	if intents[0] != "location" {
		t.Errorf("Intents()[0] = %q, want location (table order)", intents[0])
	}
	for _, intent := range intents {
		if _, ok := Responses[intent]; !ok {
			t.Errorf("intent %q has no canonical answer", intent)
		}
	}
}

func TestSynonymPhrasesResolve(t *testing.T) {
	// Every curated phrase must route somewhere answerable.
	for _, entry := range IntentSynonyms {
		if _, ok := Responses[entry.Intent]; !ok {
			t.Errorf("synonym intent %q has no answer", entry.Intent)
		}
		if len(entry.Phrases) == 0 {
			t.Errorf("synonym intent %q has no phrases", entry.Intent)
		}
	}
}

func TestFuseWhitelistIsAnswerable(t *testing.T) {
	for intent := range FuseWhitelist {
		if _, ok := Responses[intent]; !ok {
			t.Errorf("whitelisted intent %q has no canonical answer", intent)
		}
	}
}
