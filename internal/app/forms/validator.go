package forms

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/cursoscarioca/webciclo/internal/app/models"
	"github.com/cursoscarioca/webciclo/internal/pkg/dateutil"
)

// Field length caps, mirroring the column sizes of the courses table.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxPartnerNameLength = 100
)

// ValidationResult accumulates every problem found in a submission. Errors
// block persistence; warnings are surfaced to the staff user but do not.
type ValidationResult struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// OK reports whether the submission may be normalized and persisted.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validator checks course-offering submissions against the full rule set.
// It never stops at the first problem: all phases run and every violation
// is reported, so the staff user fixes the form in one pass.
type Validator struct {
	now func() time.Time
}

func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// Validate runs every validation phase over the submission and returns the
// accumulated result. It performs no I/O and never mutates the form.
func (v *Validator) Validate(f Form) ValidationResult {
	var res ValidationResult
	v.basicFields(f, &res)
	v.conditionalFields(f, &res)
	v.modalityFields(f, &res)
	v.dates(f, &res)
	v.externalPartner(f, &res)
	return res
}

type requiredField struct {
	key   string
	label string
}

// Declaration order fixes the order errors are reported in.
var basicRequired = []requiredField{
	{"tipo_acao", "Tipo de Ação"},
	{"titulo", "Nome da Ação de Formação"},
	{"descricao", "Descrição"},
	{"orgao", "Órgão Responsável"},
	{"tema", "Tema/Categoria"},
	{"modalidade", "Modalidade"},
	{"curso_gratuito", "Curso Gratuito"},
	{"oferece_bolsa", "Oferece Bolsa"},
	{"oferece_certificado", "Oferece Certificado"},
	{"parceiro_externo", "Parceiro Externo"},
	{"publico_alvo", "Público Alvo"},
	{"acessibilidade", "Acessibilidade"},
	{"inicio_inscricoes_data", "Início das inscrições"},
	{"fim_inscricoes_data", "Fim das inscrições"},
}

func (v *Validator) basicFields(f Form, res *ValidationResult) {
	for _, rf := range basicRequired {
		value := f.Get(rf.key)
		switch {
		case value == "":
			res.errorf("%s é obrigatório", rf.label)
		case rf.key == "titulo" && utf8.RuneCountInString(value) > MaxTitleLength:
			res.errorf("%s deve ter no máximo %d caracteres", rf.label, MaxTitleLength)
		case rf.key == "descricao" && utf8.RuneCountInString(value) > MaxDescriptionLength:
			res.errorf("%s deve ter no máximo %d caracteres", rf.label, MaxDescriptionLength)
		}
	}
}

func (v *Validator) conditionalFields(f Form, res *ValidationResult) {
	if f.Get("curso_gratuito") == "nao" {
		if f.Get("valor_curso_inteira") == "" {
			res.errorf("Valor inteira é obrigatório para cursos pagos")
		}
		if f.Get("valor_curso_meia") != "" && f.Get("requisitos_meia") == "" {
			res.errorf("Condições para meia-entrada são obrigatórias quando valor meia é informado")
		}
	}

	if f.Flag("oferece_bolsa") {
		if f.Get("valor_bolsa") == "" {
			res.errorf("Valor da bolsa é obrigatório quando oferece bolsa")
		}
		if f.Get("requisitos_bolsa") == "" {
			res.errorf("Requisitos para bolsa são obrigatórios quando oferece bolsa")
		}
	}

	if f.Flag("oferece_certificado") && f.Get("pre_requisitos") == "" {
		res.errorf("Pré-requisitos para certificado são obrigatórios quando oferece certificado")
	}

	if models.Accessibility(f.Get("acessibilidade")).RequiresResources() && f.Get("recursos_acessibilidade") == "" {
		res.errorf("Recursos de acessibilidade são obrigatórios quando o curso é acessível ou exclusivo para pessoas com deficiência")
	}
}

func (v *Validator) modalityFields(f Form, res *ValidationResult) {
	modality := models.Modality(f.Get("modalidade"))
	if modality == "" {
		return // already reported as missing
	}
	if !modality.Valid() {
		res.errorf("Modalidade inválida")
		return
	}

	rules := RulesFor(modality)

	if rules.ForbidsVenueFields {
		v.onlineExclusiveFields(f, res)
	}

	if rules.NeedsOnline {
		v.onlineFields(f, rules, res)
	}

	if rules.NeedsSections {
		sections := DecodeForm(f)
		if len(sections) == 0 {
			res.errorf("Pelo menos uma unidade é obrigatória para cursos presenciais/híbridos")
		} else {
			v.sections(sections, res)
		}
	}
}

// onlineExclusiveFields rejects venue data on a pure Online submission and,
// when classes are synchronous, requires the schedule fields.
func (v *Validator) onlineExclusiveFields(f Form, res *ValidationResult) {
	synchronous := f.Get("aulas_assincronas") == "nao"

	forbidden := []requiredField{
		{fieldSectionAddress, "Endereco Unidade"},
		{fieldSectionNeighborhood, "Bairro Unidade"},
	}
	for _, ff := range forbidden {
		if f.HasValue(ff.key) {
			res.errorf("Campo '%s' não deve ser preenchido para cursos online", ff.label)
		}
	}

	if synchronous {
		scheduleRequired := []requiredField{
			{fieldSectionClassStart, "Inicio Aulas Data"},
			{fieldSectionClassEnd, "Fim Aulas Data"},
			{fieldSectionTimeStart, "Horario Inicio"},
			{fieldSectionTimeEnd, "Horario Fim"},
		}
		for _, sf := range scheduleRequired {
			if !f.HasValue(sf.key) {
				res.errorf("Campo '%s' é obrigatório para aulas síncronas online", sf.label)
			}
		}
	}
}

func (v *Validator) onlineFields(f Form, rules RuleSet, res *ValidationResult) {
	seats := f.Get("vagas_online")
	if seats == "" {
		for _, s := range f.Values(fieldSectionSeats) {
			if s = trim(s); s != "" {
				seats = s
				break
			}
		}
	}
	if seats == "" {
		res.errorf("Número de vagas é obrigatório para cursos online")
	} else if n, err := strconv.Atoi(seats); err != nil || n <= 0 {
		res.errorf("Número de vagas deve ser um número inteiro maior que zero")
	}

	if !f.HasValue("carga_horaria") && !f.HasValue("carga_horaria[]") {
		res.warnf("Carga horária não informada para curso online")
	}

	if rules.OnlineScheduleStrict && f.Get("aulas_assincronas") == "nao" {
		if !f.HasValue("dias_aula_online[]") {
			res.errorf("Pelo menos um dia da semana é obrigatório para aulas síncronas online")
		}
	}
}

func (v *Validator) sections(sections []SectionRecord, res *ValidationResult) {
	for i, s := range sections {
		seq := i + 1
		if s.Address == "" {
			res.errorf("Endereço da unidade %d é obrigatório", seq)
		}
		if s.Neighborhood == "" {
			res.errorf("Bairro da unidade %d é obrigatório", seq)
		}
		if s.Seats == "" {
			res.errorf("Número de vagas da unidade %d é obrigatório", seq)
		} else if n, err := strconv.Atoi(s.Seats); err != nil || n <= 0 {
			res.errorf("Número de vagas da unidade %d deve ser um número inteiro maior que zero", seq)
		}
		if len(s.Weekdays) == 0 {
			res.errorf("Dias de aula da unidade %d são obrigatórios", seq)
		}
	}
}

func (v *Validator) dates(f Form, res *ValidationResult) {
	startRaw := f.Get("inicio_inscricoes_data")
	endRaw := f.Get("fim_inscricoes_data")
	if startRaw == "" || endRaw == "" {
		return // already reported as missing
	}

	start, errStart := dateutil.ParseFlexible(startRaw)
	end, errEnd := dateutil.ParseFlexible(endRaw)
	if errStart != nil || errEnd != nil {
		res.errorf("Formato de data inválido")
	} else {
		if end.Before(start) {
			res.errorf("O fim das inscrições deve ser posterior ou igual ao início das inscrições")
		}
		if start.After(v.now().AddDate(2, 0, 0)) {
			res.warnf("Data de início das inscrições muito distante no futuro")
		}
	}

	// Section dates are checked even when the registration window is
	// malformed; end is the zero time then and the window comparison is
	// skipped.
	v.classDates(f, end, res)
}

// classDates checks every schedule window against the registration window.
// Asynchronous online offerings carry no schedule and are skipped; an absent
// flag counts as asynchronous.
func (v *Validator) classDates(f Form, registrationEnd time.Time, res *ValidationResult) {
	if f.Get("modalidade") == string(models.ModalityOnline) && f.Get("aulas_assincronas") != "nao" {
		return
	}

	starts := f.Values(fieldSectionClassStart)
	ends := f.Values(fieldSectionClassEnd)

	n := len(starts)
	if len(ends) < n {
		n = len(ends)
	}
	for i := 0; i < n; i++ {
		startRaw, endRaw := trim(starts[i]), trim(ends[i])
		if startRaw == "" || endRaw == "" {
			continue
		}
		seq := i + 1

		classStart, errStart := dateutil.ParseFlexible(startRaw)
		classEnd, errEnd := dateutil.ParseFlexible(endRaw)
		if errStart != nil || errEnd != nil {
			res.errorf("Formato de data inválido para unidade %d", seq)
			continue
		}

		if !registrationEnd.IsZero() && classStart.Before(registrationEnd) {
			res.errorf("Início das aulas da unidade %d deve ser posterior ou igual ao fim das inscrições (%s)",
				seq, dateutil.FormatBR(registrationEnd))
		}
		if classEnd.Before(classStart) {
			res.errorf("Fim das aulas da unidade %d deve ser posterior ou igual ao início das aulas", seq)
		}
		if classStart.After(v.now().AddDate(2, 0, 0)) {
			res.warnf("Data de início das aulas da unidade %d muito distante no futuro", seq)
		}
	}
}

func (v *Validator) externalPartner(f Form, res *ValidationResult) {
	if !f.Flag("parceiro_externo") {
		return
	}
	name := f.Get("parceiro_nome")
	if name == "" {
		res.errorf("Nome do parceiro é obrigatório quando há parceiro externo")
	} else if utf8.RuneCountInString(name) > MaxPartnerNameLength {
		res.errorf("Nome do parceiro deve ter no máximo %d caracteres", MaxPartnerNameLength)
	}
}
