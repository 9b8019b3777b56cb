package forms

import (
	"testing"

	"github.com/cursoscarioca/webciclo/internal/app/models"
)

// A duplicated submission must survive the full pipeline again: the field
// map produced from a stored offering validates and normalizes back to an
// equivalent record.
func TestFormFromCourseRoundTripPresencial(t *testing.T) {
	original := mustNormalize(t, validPresencialForm())

	f := FormFromCourse(original)
	res := NewValidator().Validate(f)
	if !res.OK() {
		t.Fatalf("prefilled form failed validation: %v", res.Errors)
	}

	dup := NewNormalizer().Normalize(f, res)
	if dup.Title != original.Title {
		t.Errorf("Title = %q, want %q", dup.Title, original.Title)
	}
	if dup.Modality != original.Modality {
		t.Errorf("Modality = %q, want %q", dup.Modality, original.Modality)
	}
	if dup.Registration != original.Registration {
		t.Errorf("Registration = %v, want %v", dup.Registration, original.Registration)
	}
	if len(dup.Sections) != len(original.Sections) {
		t.Fatalf("sections = %d, want %d", len(dup.Sections), len(original.Sections))
	}
	for i := range dup.Sections {
		got, want := dup.Sections[i], original.Sections[i]
		if got.Address != want.Address || got.TotalSeats != want.TotalSeats {
			t.Errorf("section %d = %q/%d, want %q/%d", i, got.Address, got.TotalSeats, want.Address, want.TotalSeats)
		}
		if len(got.Weekdays) != len(want.Weekdays) {
			t.Errorf("section %d weekdays = %v, want %v", i, got.Weekdays, want.Weekdays)
		}
	}
}

func TestFormFromCourseRoundTripOnlineSync(t *testing.T) {
	original := mustNormalize(t, validOnlineSyncForm())

	f := FormFromCourse(original)
	res := NewValidator().Validate(f)
	if !res.OK() {
		t.Fatalf("prefilled form failed validation: %v", res.Errors)
	}

	dup := NewNormalizer().Normalize(f, res)
	if dup.Online == nil {
		t.Fatal("Online = nil, want a delivery")
	}
	if dup.Online.TotalSeats != original.Online.TotalSeats {
		t.Errorf("TotalSeats = %d, want %d", dup.Online.TotalSeats, original.Online.TotalSeats)
	}
	if dup.Online.Asynchronous {
		t.Error("Asynchronous = true, want false")
	}
	if len(dup.Online.Weekdays) != len(original.Online.Weekdays) {
		t.Errorf("Weekdays = %v, want %v", dup.Online.Weekdays, original.Online.Weekdays)
	}
	if dup.Online.StartTime != original.Online.StartTime || dup.Online.EndTime != original.Online.EndTime {
		t.Errorf("times = %q-%q, want %q-%q", dup.Online.StartTime, dup.Online.EndTime, original.Online.StartTime, original.Online.EndTime)
	}
}

func TestFormFromCourseGuardFlags(t *testing.T) {
	c := &models.CourseOffering{
		Title:    "Curso pago",
		Modality: models.ModalityPresencial,
		Free:     false,
	}
	price := "R$ 120,00"
	c.FullPrice = &price

	f := FormFromCourse(c)
	if got := f.Get("curso_gratuito"); got != "nao" {
		t.Errorf("curso_gratuito = %q, want nao", got)
	}
	if got := f.Get("valor_curso_inteira"); got != price {
		t.Errorf("valor_curso_inteira = %q, want %q", got, price)
	}
	if got := f.Get("oferece_bolsa"); got != "nao" {
		t.Errorf("oferece_bolsa = %q, want nao", got)
	}
	if f.HasValue("valor_bolsa") {
		t.Error("valor_bolsa should not be set when no scholarship is offered")
	}
}
