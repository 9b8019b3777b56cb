package forms

import (
	"reflect"
	"testing"

	"github.com/cursoscarioca/webciclo/internal/app/models"
)

func mustNormalize(t *testing.T, f Form) *models.CourseOffering {
	t.Helper()
	res := NewValidator().Validate(f)
	if !res.OK() {
		t.Fatalf("submission unexpectedly invalid: %v", res.Errors)
	}
	return NewNormalizer().Normalize(f, res)
}

func TestNormalizePresencialTwoSections(t *testing.T) {
	c := mustNormalize(t, validPresencialForm())

	if c.Modality != models.ModalityPresencial {
		t.Errorf("modality = %q", c.Modality)
	}
	if c.Online != nil {
		t.Error("presencial offering must not carry an online delivery")
	}
	if len(c.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(c.Sections))
	}

	first, second := c.Sections[0], c.Sections[1]
	if first.SequenceNumber != 1 || second.SequenceNumber != 2 {
		t.Errorf("sections out of input order: %d, %d", first.SequenceNumber, second.SequenceNumber)
	}
	if first.Neighborhood != "Centro" || first.TotalSeats != 30 {
		t.Errorf("unexpected first section: %+v", first)
	}
	if second.Neighborhood != "Zona Sul" || second.TotalSeats != 25 {
		t.Errorf("unexpected second section: %+v", second)
	}
	if !reflect.DeepEqual(first.Weekdays, []models.Weekday{"segunda", "quarta"}) {
		t.Errorf("first section weekdays = %v", first.Weekdays)
	}
	if !reflect.DeepEqual(second.Weekdays, []models.Weekday{"terca", "quinta"}) {
		t.Errorf("second section weekdays = %v", second.Weekdays)
	}
	if got := first.Classes.Start.Format("2006-01-02"); got != "2025-04-15" {
		t.Errorf("first section class start = %s", got)
	}
}

func TestNormalizeBlanksPriceWhenFree(t *testing.T) {
	f := validPresencialForm()
	f.Set("curso_gratuito", "sim")
	f.Set("valor_curso_inteira", "120.00") // stale value from a previous edit

	c := mustNormalize(t, f)
	if !c.Free {
		t.Fatal("expected a free offering")
	}
	if c.FullPrice != nil || c.HalfPrice != nil || c.HalfPriceConditions != "" {
		t.Errorf("price fields leaked through the guard: %+v %+v %q",
			c.FullPrice, c.HalfPrice, c.HalfPriceConditions)
	}
}

func TestNormalizeBlanksScholarshipAndCertificateWhenOff(t *testing.T) {
	f := validPresencialForm()
	f.Set("valor_bolsa", "500.00")
	f.Set("requisitos_bolsa", "renda familiar")
	f.Set("pre_requisitos", "ensino médio")

	c := mustNormalize(t, f)
	if c.ScholarshipAmount != nil || c.ScholarshipRequirements != "" {
		t.Error("scholarship fields leaked through the guard")
	}
	if c.CertificatePrerequisites != "" {
		t.Error("certificate prerequisites leaked through the guard")
	}
}

func TestNormalizeDropsOnlineFieldsForPresencial(t *testing.T) {
	f := validPresencialForm()
	f.Set("plataforma_digital", "Zoom")
	f.Set("link_acesso", "https://example.org/aula")

	c := mustNormalize(t, f)
	if c.Online != nil {
		t.Errorf("online delivery leaked into a presencial offering: %+v", c.Online)
	}
}

func TestNormalizeSyncOnline(t *testing.T) {
	c := mustNormalize(t, validOnlineSyncForm())

	if len(c.Sections) != 0 {
		t.Errorf("online offering must not carry sections, got %+v", c.Sections)
	}
	o := c.Online
	if o == nil {
		t.Fatal("expected an online delivery")
	}
	if o.Asynchronous {
		t.Error("expected a synchronous delivery")
	}
	if o.TotalSeats != 50 || o.PlatformName != "Zoom" {
		t.Errorf("unexpected delivery: %+v", o)
	}
	if o.Classes == nil || o.Classes.Start.Format("2006-01-02") != "2025-04-15" {
		t.Errorf("unexpected class window: %+v", o.Classes)
	}
	if o.StartTime != "19:00" || o.EndTime != "21:00" {
		t.Errorf("unexpected time window: %q..%q", o.StartTime, o.EndTime)
	}
	if !reflect.DeepEqual(o.Weekdays, []models.Weekday{"terca", "quinta"}) {
		t.Errorf("weekdays = %v", o.Weekdays)
	}
}

func TestNormalizeAsyncOnlineHasNoSchedule(t *testing.T) {
	f := validOnlineAsyncForm()
	// Stale schedule values from a modality switch must be dropped.
	f.Set("inicio_aulas_data[]", "2025-04-15")
	f.Set("fim_aulas_data[]", "2025-06-15")
	f.Set("horario_inicio[]", "19:00")
	f.Set("dias_aula_online[]", "terca")

	c := mustNormalize(t, f)
	o := c.Online
	if o == nil {
		t.Fatal("expected an online delivery")
	}
	if !o.Asynchronous {
		t.Fatal("expected an asynchronous delivery")
	}
	if o.Classes != nil || o.StartTime != "" || o.EndTime != "" || len(o.Weekdays) != 0 {
		t.Errorf("schedule fields leaked into an asynchronous delivery: %+v", o)
	}
}

func TestNormalizeOnlineMissingAsyncFlagIsAsynchronous(t *testing.T) {
	f := validOnlineAsyncForm()
	delete(f, "aulas_assincronas")

	c := mustNormalize(t, f)
	o := c.Online
	if o == nil {
		t.Fatal("expected an online delivery")
	}
	if !o.Asynchronous {
		t.Fatal("a delivery without the flag must be asynchronous")
	}
	if o.Classes != nil || o.StartTime != "" || o.EndTime != "" || len(o.Weekdays) != 0 {
		t.Errorf("unexpected schedule on a self-paced delivery: %+v", o)
	}
}

func TestNormalizeHibridoCarriesBoth(t *testing.T) {
	f := validPresencialForm()
	f.Set("modalidade", "Híbrido")
	f.Set("plataforma_digital", "Teams")
	f.Set("vagas_online", "100")
	f.Set("aulas_assincronas", "sim")

	c := mustNormalize(t, f)
	if len(c.Sections) != 2 {
		t.Errorf("expected 2 sections, got %d", len(c.Sections))
	}
	if c.Online == nil {
		t.Fatal("hybrid offering must carry an online delivery")
	}
	if c.Online.TotalSeats != 100 || c.Online.PlatformName != "Teams" {
		t.Errorf("unexpected online delivery: %+v", c.Online)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	f := validPresencialForm()
	delete(f, "curso_gratuito")
	delete(f, "oferece_certificado")

	// Validation would reject the missing flags; defaults are exercised
	// directly with an empty result.
	c := NewNormalizer().Normalize(f, ValidationResult{})
	if !c.Free {
		t.Error("curso_gratuito must default to sim")
	}
	if c.OffersCertificate {
		t.Error("oferece_certificado must default to nao")
	}
}

func TestNormalizeKeepsOriginalDescription(t *testing.T) {
	f := validPresencialForm()
	f.Set("descricao", "Texto aprimorado pela revisão")
	f.Set("descricao_original", "Texto original enviado pelo órgão")

	c := mustNormalize(t, f)
	if c.Description != "Texto aprimorado pela revisão" {
		t.Errorf("description = %q", c.Description)
	}
	if c.OriginalDescription != "Texto original enviado pelo órgão" {
		t.Errorf("original description = %q", c.OriginalDescription)
	}
}

func TestNormalizePanicsOnFailedValidation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	NewNormalizer().Normalize(validPresencialForm(), ValidationResult{Errors: []string{"x"}})
}
