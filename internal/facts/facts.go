// Package facts distills the canned answers into a small grounding record
// for the generation fallback. The model only ever sees these extracted
// facts, never free rein to invent office details.
package facts

import (
	"regexp"
	"strings"

	"state101-assistant/internal/faq"
)

var (
	urlPattern   = regexp.MustCompile(`https?://[^\s)>\]]+`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s-]{7,}\d`)
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

// Record holds the grounding facts for answer generation. The field labels
// in the rendered prompt match the names the generation instructions refer
// to (contact_block, program_details, price_note, form_hint).
type Record struct {
	Location       string   `json:"location"`
	Hours          string   `json:"hours"`
	Contact        string   `json:"contact"`
	Website        string   `json:"website"`
	Phones         []string `json:"phones"`
	Email          string   `json:"email"`
	Services       string   `json:"services"`
	ProgramDetails string   `json:"program_details"`
	PriceNote      string   `json:"price_note"`
	Requirements   string   `json:"requirements"`
	FormHint       string   `json:"form_hint"`
}

// Pack builds the facts record from the canned answers, with knowledge-base
// overrides applied first.
func Pack(overrides map[string]string) *Record {
	location := faq.Canonical("location", overrides)
	hours := faq.Canonical("hours", overrides)
	contact := faq.Canonical("contact", overrides)

	rec := &Record{
		Location:       location,
		Hours:          hours,
		Contact:        contact,
		Services:       faq.Canonical("services", overrides),
		ProgramDetails: faq.Canonical("program details", overrides),
		PriceNote:      faq.Canonical("price", overrides),
		Requirements:   faq.Canonical("requirements", overrides),
		FormHint:       faq.FormHintMessage,
	}

	// The "website" answer leads with the official site; fall back to any
	// URL in the other answers (usually the map link).
	rec.Website = urlPattern.FindString(faq.Canonical("website", overrides))
	all := strings.Join([]string{location, hours, contact}, "\n")
	if rec.Website == "" {
		rec.Website = urlPattern.FindString(all)
	}
	rec.Email = emailPattern.FindString(all)
	for _, phone := range phonePattern.FindAllString(contact, -1) {
		rec.Phones = append(rec.Phones, strings.TrimSpace(phone))
	}

	return rec
}

// Prompt renders the record as the FACTS block for the generation prompt.
func (r *Record) Prompt() string {
	var b strings.Builder
	b.WriteString("FACTS:\n")
	writeFact(&b, "location", r.Location)
	writeFact(&b, "hours", r.Hours)
	writeFact(&b, "contact_block", r.Contact)
	writeFact(&b, "website", r.Website)
	if len(r.Phones) > 0 {
		writeFact(&b, "phones", strings.Join(r.Phones, ", "))
	}
	writeFact(&b, "email", r.Email)
	writeFact(&b, "services", r.Services)
	writeFact(&b, "program_details", r.ProgramDetails)
	writeFact(&b, "price_note", r.PriceNote)
	writeFact(&b, "requirements", r.Requirements)
	writeFact(&b, "form_hint", r.FormHint)
	return strings.TrimRight(b.String(), "\n")
}

func writeFact(b *strings.Builder, label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	b.WriteString("- ")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
