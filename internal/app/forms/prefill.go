package forms

import (
	"fmt"
	"strconv"

	"github.com/cursoscarioca/webciclo/internal/app/models"
	"github.com/cursoscarioca/webciclo/internal/pkg/dateutil"
)

// FormFromCourse renders a stored offering back into the submission field
// map. It backs the duplicate flow: the staff screen is pre-filled with an
// existing offering and posted again as a fresh submission, so the output
// must validate and normalize back to an equivalent record.
func FormFromCourse(c *models.CourseOffering) Form {
	f := Form{}
	set := func(key, value string) {
		if value != "" {
			f.Set(key, value)
		}
	}

	set("tipo_acao", c.ActionType)
	set("titulo", c.Title)
	set("descricao", c.Description)
	set("descricao_original", c.OriginalDescription)
	set("orgao", c.Organization)
	set("tema", c.Theme)
	set("carga_horaria", c.WorkloadHours)
	set("modalidade", string(c.Modality))
	set("publico_alvo", c.TargetAudience)
	set("informacoes_adicionais", c.AdditionalInfo)
	set("imagem_curso", c.CoverImageRef)
	set("acessibilidade", string(c.Accessibility))
	set("recursos_acessibilidade", c.AccessibilityResources)

	if !c.Registration.Start.IsZero() {
		set("inicio_inscricoes_data", dateutil.FormatISO(c.Registration.Start))
	}
	if !c.Registration.End.IsZero() {
		set("fim_inscricoes_data", dateutil.FormatISO(c.Registration.End))
	}

	f.Set("curso_gratuito", simNao(c.Free))
	if !c.Free {
		if c.FullPrice != nil {
			set("valor_curso_inteira", *c.FullPrice)
		}
		if c.HalfPrice != nil {
			set("valor_curso_meia", *c.HalfPrice)
			set("requisitos_meia", c.HalfPriceConditions)
		}
	}

	f.Set("oferece_bolsa", simNao(c.OffersScholarship))
	if c.OffersScholarship {
		if c.ScholarshipAmount != nil {
			set("valor_bolsa", *c.ScholarshipAmount)
		}
		set("requisitos_bolsa", c.ScholarshipRequirements)
	}

	f.Set("oferece_certificado", simNao(c.OffersCertificate))
	if c.OffersCertificate {
		set("pre_requisitos", c.CertificatePrerequisites)
	}

	f.Set("parceiro_externo", simNao(c.ExternalPartner))
	if c.ExternalPartner {
		set("parceiro_nome", c.PartnerName)
		set("parceiro_link", c.PartnerLink)
		set("parceiro_logo", c.PartnerLogoRef)
	}

	if len(c.Sections) > 0 {
		records := RecordsFromSections(c.Sections)
		col := func(pick func(SectionRecord) string) []string {
			out := make([]string, len(records))
			for i, r := range records {
				out[i] = pick(r)
			}
			return out
		}
		f.Set(fieldSectionAddress, col(func(r SectionRecord) string { return r.Address })...)
		f.Set(fieldSectionNeighborhood, col(func(r SectionRecord) string { return r.Neighborhood })...)
		f.Set(fieldSectionComplement, col(func(r SectionRecord) string { return r.Complement })...)
		f.Set(fieldSectionSeats, col(func(r SectionRecord) string { return r.Seats })...)
		f.Set(fieldSectionClassStart, col(func(r SectionRecord) string { return r.ClassStart })...)
		f.Set(fieldSectionClassEnd, col(func(r SectionRecord) string { return r.ClassEnd })...)
		f.Set(fieldSectionTimeStart, col(func(r SectionRecord) string { return r.TimeStart })...)
		f.Set(fieldSectionTimeEnd, col(func(r SectionRecord) string { return r.TimeEnd })...)
		for i, r := range records {
			if len(r.Weekdays) > 0 {
				f.Set(fmt.Sprintf(fieldSectionWeekdaysRow, i), r.Weekdays...)
			}
		}
	}

	if c.Online != nil {
		o := c.Online
		set("plataforma_digital", o.PlatformName)
		set("link_acesso", o.AccessLink)
		if o.TotalSeats > 0 {
			set("vagas_online", strconv.Itoa(o.TotalSeats))
		}
		f.Set("aulas_assincronas", simNao(o.Asynchronous))
		if len(o.Weekdays) > 0 {
			days := make([]string, len(o.Weekdays))
			for i, d := range o.Weekdays {
				days[i] = string(d)
			}
			f.Set("dias_aula_online[]", days...)
		}
		// A pure online schedule travels in the shared schedule arrays; for
		// Híbrido those arrays already belong to the sections.
		if c.Modality == models.ModalityOnline {
			if o.Classes != nil {
				f.Set(fieldSectionClassStart, dateutil.FormatISO(o.Classes.Start))
				f.Set(fieldSectionClassEnd, dateutil.FormatISO(o.Classes.End))
			}
			if o.StartTime != "" {
				f.Set(fieldSectionTimeStart, o.StartTime)
			}
			if o.EndTime != "" {
				f.Set(fieldSectionTimeEnd, o.EndTime)
			}
		}
	}

	return f
}

func simNao(b bool) string {
	if b {
		return "sim"
	}
	return "nao"
}
