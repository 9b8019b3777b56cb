package forms

import (
	"strconv"

	"github.com/cursoscarioca/webciclo/internal/app/models"
	"github.com/cursoscarioca/webciclo/internal/pkg/dateutil"
)

// Normalizer turns a validated submission into the canonical course record.
// It is the single authority over conditional fields: whenever a guard flag
// is off, the dependent fields are dropped even if the raw form carried
// stale values from an earlier modality or pricing choice.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize builds the CourseOffering for a submission that passed
// validation. Calling it with a failed result is a caller bug and panics;
// user-input problems must be handled through Validate beforehand.
func (n *Normalizer) Normalize(f Form, res ValidationResult) *models.CourseOffering {
	if !res.OK() {
		panic("forms: Normalize called with a failed validation result")
	}

	c := &models.CourseOffering{
		ActionType:     f.Get("tipo_acao"),
		Title:          f.Get("titulo"),
		Description:    f.Get("descricao"),
		Organization:   f.Get("orgao"),
		Theme:          f.Get("tema"),
		TargetAudience: f.Get("publico_alvo"),
		AdditionalInfo: f.Get("informacoes_adicionais"),
		CoverImageRef:  f.Get("imagem_curso"),
		WorkloadHours:  n.workload(f),
		Modality:       models.Modality(f.Get("modalidade")),
		Accessibility:  models.Accessibility(f.GetDefault("acessibilidade", string(models.AccessibilityNone))),
	}

	// The pre-enhancement description is kept verbatim; edits re-post it so
	// the original survives description rewrites.
	c.OriginalDescription = f.GetDefault("descricao_original", c.Description)

	// Validation guarantees both dates parse.
	c.Registration.Start, _ = dateutil.ParseFlexible(f.Get("inicio_inscricoes_data"))
	c.Registration.End, _ = dateutil.ParseFlexible(f.Get("fim_inscricoes_data"))

	n.pricing(f, c)
	n.scholarship(f, c)
	n.certificate(f, c)
	n.accessibility(f, c)
	n.partner(f, c)

	rules := RulesFor(c.Modality)
	if rules.NeedsSections {
		c.Sections = n.sections(f)
	}
	if rules.NeedsOnline {
		c.Online = n.online(f, rules)
	}
	return c
}

func (n *Normalizer) workload(f Form) string {
	if v := f.Get("carga_horaria"); v != "" {
		return v
	}
	for _, v := range f.Values("carga_horaria[]") {
		if v = trim(v); v != "" {
			return v
		}
	}
	return ""
}

func (n *Normalizer) pricing(f Form, c *models.CourseOffering) {
	c.Free = f.FlagDefault("curso_gratuito", true)
	if c.Free {
		return
	}
	c.FullPrice = nonBlankPtr(f.Get("valor_curso_inteira"))
	c.HalfPrice = nonBlankPtr(f.Get("valor_curso_meia"))
	if c.HalfPrice != nil {
		c.HalfPriceConditions = f.Get("requisitos_meia")
	}
}

func (n *Normalizer) scholarship(f Form, c *models.CourseOffering) {
	c.OffersScholarship = f.FlagDefault("oferece_bolsa", false)
	if !c.OffersScholarship {
		return
	}
	c.ScholarshipAmount = nonBlankPtr(f.Get("valor_bolsa"))
	c.ScholarshipRequirements = f.Get("requisitos_bolsa")
}

func (n *Normalizer) certificate(f Form, c *models.CourseOffering) {
	c.OffersCertificate = f.FlagDefault("oferece_certificado", false)
	if c.OffersCertificate {
		c.CertificatePrerequisites = f.Get("pre_requisitos")
	}
}

func (n *Normalizer) accessibility(f Form, c *models.CourseOffering) {
	if c.Accessibility.RequiresResources() {
		c.AccessibilityResources = f.Get("recursos_acessibilidade")
	}
}

func (n *Normalizer) partner(f Form, c *models.CourseOffering) {
	c.ExternalPartner = f.FlagDefault("parceiro_externo", false)
	if !c.ExternalPartner {
		return
	}
	c.PartnerName = f.Get("parceiro_nome")
	c.PartnerLink = f.Get("parceiro_link")
	c.PartnerLogoRef = f.Get("parceiro_logo")
}

func (n *Normalizer) sections(f Form) []models.ClassSection {
	records := DecodeForm(f)
	sections := make([]models.ClassSection, 0, len(records))
	for i, r := range records {
		s := models.ClassSection{
			SequenceNumber: i + 1,
			Address:        r.Address,
			Neighborhood:   r.Neighborhood,
			Complement:     r.Complement,
			StartTime:      r.TimeStart,
			EndTime:        r.TimeEnd,
			Weekdays:       weekdays(r.Weekdays),
		}
		s.TotalSeats, _ = strconv.Atoi(r.Seats)
		if r.ClassStart != "" {
			s.Classes.Start, _ = dateutil.ParseFlexible(r.ClassStart)
		}
		if r.ClassEnd != "" {
			s.Classes.End, _ = dateutil.ParseFlexible(r.ClassEnd)
		}
		sections = append(sections, s)
	}
	return sections
}

func (n *Normalizer) online(f Form, rules RuleSet) *models.OnlineDelivery {
	// An absent flag means self-paced; the form only posts "nao" when the
	// staff user schedules live classes.
	o := &models.OnlineDelivery{
		PlatformName: f.Get("plataforma_digital"),
		AccessLink:   f.Get("link_acesso"),
		Asynchronous: f.FlagDefault("aulas_assincronas", true),
	}

	seats := f.Get("vagas_online")
	if seats == "" {
		for _, s := range f.Values(fieldSectionSeats) {
			if s = trim(s); s != "" {
				seats = s
				break
			}
		}
	}
	o.TotalSeats, _ = strconv.Atoi(seats)

	// An asynchronous delivery is self-paced: no dates, no times, no
	// weekdays, regardless of what the form carried. The synchronous
	// schedule is only collected where it is a hard requirement.
	if o.Asynchronous || !rules.OnlineScheduleStrict {
		if !o.Asynchronous {
			o.Weekdays = weekdays(f.Values("dias_aula_online[]"))
		}
		return o
	}

	o.Weekdays = weekdays(f.Values("dias_aula_online[]"))
	o.StartTime = firstNonBlank(f.Values(fieldSectionTimeStart))
	o.EndTime = firstNonBlank(f.Values(fieldSectionTimeEnd))

	startRaw := firstNonBlank(f.Values(fieldSectionClassStart))
	endRaw := firstNonBlank(f.Values(fieldSectionClassEnd))
	if startRaw != "" && endRaw != "" {
		start, errStart := dateutil.ParseFlexible(startRaw)
		end, errEnd := dateutil.ParseFlexible(endRaw)
		if errStart == nil && errEnd == nil {
			o.Classes = &models.DateRange{Start: start, End: end}
		}
	}
	return o
}

func weekdays(vs []string) []models.Weekday {
	var out []models.Weekday
	for _, v := range vs {
		if v = trim(v); v != "" {
			out = append(out, models.Weekday(v))
		}
	}
	return out
}

func firstNonBlank(vs []string) string {
	for _, v := range vs {
		if v = trim(v); v != "" {
			return v
		}
	}
	return ""
}

func nonBlankPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
