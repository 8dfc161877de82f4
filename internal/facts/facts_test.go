package facts

import (
	"strings"
	"testing"
)

func TestPack_ExtractsContactDetails(t *testing.T) {
	rec := Pack(nil)

	if rec.Location == "" || rec.Hours == "" || rec.Contact == "" {
		t.Fatalf("Pack() left core fields empty: %+v", rec)
	}
	if len(rec.Phones) != 2 {
		t.Errorf("Pack() extracted %d phones, want 2: %v", len(rec.Phones), rec.Phones)
	}
	if !strings.Contains(rec.Email, "@") {
		t.Errorf("Pack() email = %q", rec.Email)
	}
	if !strings.HasPrefix(rec.Website, "https://") {
		t.Errorf("Pack() website = %q", rec.Website)
	}
	if strings.Contains(rec.Website, "maps.") {
		t.Errorf("Pack() website should prefer the official site over the map link, got %q", rec.Website)
	}
}

func TestPack_AppliesOverrides(t *testing.T) {
	overrides := map[string]string{
		"location": "📍 We moved to 5F Example Tower, Ortigas. Map: https://maps.example.com/x",
		"hours":    "Open daily 8:00 AM to 8:00 PM.",
	}

	rec := Pack(overrides)

	if !strings.Contains(rec.Location, "Example Tower") {
		t.Errorf("Pack() location override not applied: %q", rec.Location)
	}
	if !strings.Contains(rec.Hours, "8:00 PM") {
		t.Errorf("Pack() hours override not applied: %q", rec.Hours)
	}
	// Contact stays canned when not overridden
	if !strings.Contains(rec.Contact, "+63") {
		t.Errorf("Pack() contact = %q", rec.Contact)
	}
}

func TestRecord_Prompt(t *testing.T) {
	rec := Pack(nil)
	prompt := rec.Prompt()

	if !strings.HasPrefix(prompt, "FACTS:") {
		t.Errorf("Prompt() should start with FACTS:, got %q", prompt[:20])
	}
	for _, want := range []string{
		"location:", "hours:", "contact_block:", "website:", "phones:", "email:",
		"services:", "program_details:", "price_note:", "requirements:", "form_hint:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt() missing %q", want)
		}
	}

	empty := &Record{}
	if got := empty.Prompt(); got != "FACTS:" {
		t.Errorf("empty Prompt() = %q, want bare FACTS: header", got)
	}
}
