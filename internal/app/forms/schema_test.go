package forms

import (
	"testing"

	"github.com/cursoscarioca/webciclo/internal/app/models"
)

func TestRulesForModalities(t *testing.T) {
	cases := []struct {
		modality models.Modality
		sections bool
		online   bool
	}{
		{models.ModalityPresencial, true, false},
		{models.ModalityOnline, false, true},
		{models.ModalityHibrido, true, true},
	}
	for _, c := range cases {
		rs := RulesFor(c.modality)
		if rs.NeedsSections != c.sections || rs.NeedsOnline != c.online {
			t.Errorf("RulesFor(%s) = %+v, want sections=%v online=%v",
				c.modality, rs, c.sections, c.online)
		}
	}

	if !RulesFor(models.ModalityOnline).ForbidsVenueFields {
		t.Error("Online must forbid venue fields")
	}
	if RulesFor(models.ModalityHibrido).ForbidsVenueFields {
		t.Error("Híbrido collects venue fields and must not forbid them")
	}
}

func TestRulesForUnknownModalityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	RulesFor(models.Modality("Semipresencial"))
}
