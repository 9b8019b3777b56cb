package forms

import (
	"fmt"

	"github.com/cursoscarioca/webciclo/internal/app/models"
)

// RuleSet describes what a delivery modality demands from a submission.
// Modality differences live here as data so the validator and normalizer
// share a single control flow for all three modes.
type RuleSet struct {
	Modality models.Modality

	// NeedsSections requires at least one in-person class section.
	NeedsSections bool

	// NeedsOnline requires the single online-delivery record.
	NeedsOnline bool

	// ForbidsVenueFields rejects submissions carrying non-blank address or
	// neighborhood data. Only pure Online forbids them; Híbrido collects
	// both venue and online fields.
	ForbidsVenueFields bool

	// OnlineScheduleStrict makes the synchronous schedule fields (class
	// dates, times, weekdays) hard requirements whenever the online
	// delivery is not asynchronous.
	OnlineScheduleStrict bool
}

var ruleSets = map[models.Modality]RuleSet{
	models.ModalityPresencial: {
		Modality:      models.ModalityPresencial,
		NeedsSections: true,
	},
	models.ModalityOnline: {
		Modality:             models.ModalityOnline,
		NeedsOnline:          true,
		ForbidsVenueFields:   true,
		OnlineScheduleStrict: true,
	},
	models.ModalityHibrido: {
		Modality:      models.ModalityHibrido,
		NeedsSections: true,
		NeedsOnline:   true,
	},
}

// RulesFor returns the rule set of a modality. Callers must have checked
// Modality.Valid first; an unknown modality is a caller bug and panics.
func RulesFor(m models.Modality) RuleSet {
	rs, ok := ruleSets[m]
	if !ok {
		panic(fmt.Sprintf("forms: unknown modality %q", m))
	}
	return rs
}
