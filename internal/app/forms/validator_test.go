package forms

import (
	"strings"
	"testing"
	"time"
)

func validPresencialForm() Form {
	return Form{
		"tipo_acao":                {"Curso"},
		"titulo":                   {"Curso de Robótica Educacional"},
		"descricao":                {"Introdução prática à robótica para estudantes da rede municipal"},
		"orgao":                    {"Secretaria Municipal de Educação"},
		"tema":                     {"Tecnologia"},
		"modalidade":               {"Presencial"},
		"curso_gratuito":           {"sim"},
		"oferece_bolsa":            {"nao"},
		"oferece_certificado":      {"nao"},
		"parceiro_externo":         {"nao"},
		"publico_alvo":             {"Jovens de 14 a 18 anos"},
		"acessibilidade":           {"nao_acessivel"},
		"inicio_inscricoes_data":   {"2025-03-01"},
		"fim_inscricoes_data":      {"2025-03-31"},
		"endereco_unidade[]":       {"Rua da Assembleia, 10", "Av. das Américas, 500"},
		"bairro_unidade[]":         {"Centro", "Zona Sul"},
		"complemento[]":            {"", ""},
		"vagas_unidade[]":          {"30", "25"},
		"inicio_aulas_data[]":      {"2025-04-15", "2025-04-15"},
		"fim_aulas_data[]":         {"2025-06-15", "2025-06-15"},
		"horario_inicio[]":         {"09:00", "14:00"},
		"horario_fim[]":            {"12:00", "17:00"},
		"dias_aula_presencial_0[]": {"segunda", "quarta"},
		"dias_aula_presencial_1[]": {"terca", "quinta"},
	}
}

func validOnlineSyncForm() Form {
	return Form{
		"tipo_acao":              {"Oficina"},
		"titulo":                 {"Oficina de Programação"},
		"descricao":              {"Oficina online de introdução à programação"},
		"orgao":                  {"Secretaria Municipal de Ciência e Tecnologia"},
		"tema":                   {"Tecnologia"},
		"modalidade":             {"Online"},
		"curso_gratuito":         {"sim"},
		"oferece_bolsa":          {"nao"},
		"oferece_certificado":    {"nao"},
		"parceiro_externo":       {"nao"},
		"publico_alvo":           {"Público geral"},
		"acessibilidade":         {"nao_acessivel"},
		"inicio_inscricoes_data": {"2025-03-01"},
		"fim_inscricoes_data":    {"2025-03-31"},
		"aulas_assincronas":      {"nao"},
		"vagas_online":           {"50"},
		"carga_horaria":          {"40h"},
		"plataforma_digital":     {"Zoom"},
		"link_acesso":            {"https://example.org/aula"},
		"inicio_aulas_data[]":    {"2025-04-15"},
		"fim_aulas_data[]":       {"2025-06-15"},
		"horario_inicio[]":       {"19:00"},
		"horario_fim[]":          {"21:00"},
		"dias_aula_online[]":     {"terca", "quinta"},
	}
}

func validOnlineAsyncForm() Form {
	f := validOnlineSyncForm()
	f.Set("aulas_assincronas", "sim")
	delete(f, "inicio_aulas_data[]")
	delete(f, "fim_aulas_data[]")
	delete(f, "horario_inicio[]")
	delete(f, "horario_fim[]")
	delete(f, "dias_aula_online[]")
	return f
}

func assertHasError(t *testing.T, res ValidationResult, fragment string) {
	t.Helper()
	for _, e := range res.Errors {
		if strings.Contains(e, fragment) {
			return
		}
	}
	t.Errorf("expected an error containing %q, got %v", fragment, res.Errors)
}

func TestValidatePresencialTwoSections(t *testing.T) {
	res := NewValidator().Validate(validPresencialForm())
	if !res.OK() {
		t.Fatalf("expected valid submission, got errors: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", res.Warnings)
	}
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
	f := validPresencialForm()
	delete(f, "titulo")
	delete(f, "orgao")
	delete(f, "tema")

	res := NewValidator().Validate(f)
	if len(res.Errors) != 3 {
		t.Fatalf("expected exactly 3 errors, got %d: %v", len(res.Errors), res.Errors)
	}
}

func TestValidateRegistrationWindowOrder(t *testing.T) {
	f := validPresencialForm()
	f.Set("inicio_inscricoes_data", "2025-01-10")
	f.Set("fim_inscricoes_data", "2025-01-05")

	res := NewValidator().Validate(f)
	if res.OK() {
		t.Fatal("expected validation failure")
	}
	assertHasError(t, res, "fim das inscrições deve ser posterior ou igual ao início")
}

func TestValidateClassStartBeforeRegistrationEnd(t *testing.T) {
	f := validPresencialForm()
	f.Set("inicio_aulas_data[]", "2025-03-10", "2025-04-15")

	res := NewValidator().Validate(f)
	assertHasError(t, res, "Início das aulas da unidade 1")
}

func TestValidateTitleLengthCap(t *testing.T) {
	f := validPresencialForm()
	f.Set("titulo", strings.Repeat("a", MaxTitleLength+1))

	res := NewValidator().Validate(f)
	assertHasError(t, res, "no máximo 200 caracteres")
}

func TestValidateNoSectionsForPresencial(t *testing.T) {
	f := validPresencialForm()
	for _, key := range []string{
		"endereco_unidade[]", "bairro_unidade[]", "vagas_unidade[]",
		"inicio_aulas_data[]", "fim_aulas_data[]",
	} {
		delete(f, key)
	}

	res := NewValidator().Validate(f)
	assertHasError(t, res, "Pelo menos uma unidade é obrigatória")
}

func TestValidateSectionFieldsIndexed(t *testing.T) {
	f := validPresencialForm()
	f.Set("bairro_unidade[]", "Centro", "")

	res := NewValidator().Validate(f)
	assertHasError(t, res, "Bairro da unidade 2 é obrigatório")
}

func TestValidateOnlineRejectsVenueData(t *testing.T) {
	f := validOnlineSyncForm()
	f.Set("endereco_unidade[]", "Rua da Assembleia, 10")

	res := NewValidator().Validate(f)
	if res.OK() {
		t.Fatal("expected validation failure")
	}
	assertHasError(t, res, "não deve ser preenchido para cursos online")
}

func TestValidateAsyncOnlineNeedsNoSchedule(t *testing.T) {
	res := NewValidator().Validate(validOnlineAsyncForm())
	if !res.OK() {
		t.Fatalf("expected valid submission, got errors: %v", res.Errors)
	}
}

func TestValidateSyncOnlineMissingWeekdays(t *testing.T) {
	f := validOnlineSyncForm()
	delete(f, "dias_aula_online[]")

	res := NewValidator().Validate(f)
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(res.Errors), res.Errors)
	}
	assertHasError(t, res, "Pelo menos um dia da semana é obrigatório para aulas síncronas online")
}

func TestValidateScholarshipRequiresAmountAndRequirements(t *testing.T) {
	f := validPresencialForm()
	f.Set("oferece_bolsa", "sim")

	res := NewValidator().Validate(f)
	if len(res.Errors) != 2 {
		t.Fatalf("expected exactly 2 errors, got %d: %v", len(res.Errors), res.Errors)
	}
	assertHasError(t, res, "Valor da bolsa é obrigatório")
	assertHasError(t, res, "Requisitos para bolsa são obrigatórios")
}

func TestValidatePaidCourseRequiresFullPrice(t *testing.T) {
	f := validPresencialForm()
	f.Set("curso_gratuito", "nao")

	res := NewValidator().Validate(f)
	assertHasError(t, res, "Valor inteira é obrigatório para cursos pagos")
}

func TestValidatePartnerNameRequired(t *testing.T) {
	f := validPresencialForm()
	f.Set("parceiro_externo", "sim")

	res := NewValidator().Validate(f)
	assertHasError(t, res, "Nome do parceiro é obrigatório")
}

func TestValidateAccessibilityResourcesRequired(t *testing.T) {
	f := validPresencialForm()
	f.Set("acessibilidade", "exclusivo")

	res := NewValidator().Validate(f)
	assertHasError(t, res, "Recursos de acessibilidade são obrigatórios")
}

func TestValidateInvalidDateFormat(t *testing.T) {
	f := validPresencialForm()
	f.Set("inicio_inscricoes_data", "amanhã")

	res := NewValidator().Validate(f)
	assertHasError(t, res, "Formato de data inválido")
}

func TestValidateBadRegistrationAndSectionDates(t *testing.T) {
	f := validPresencialForm()
	f.Set("fim_inscricoes_data", "amanhã")
	f.Set("inicio_aulas_data[]", "15/13/2025", "2025-04-15")

	res := NewValidator().Validate(f)
	var window bool
	for _, e := range res.Errors {
		if e == "Formato de data inválido" {
			window = true
		}
	}
	if !window {
		t.Errorf("expected the registration window format error, got %v", res.Errors)
	}
	assertHasError(t, res, "Formato de data inválido para unidade 1")
}

func TestValidateFarFutureRegistrationWarns(t *testing.T) {
	v := &Validator{now: func() time.Time {
		return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	}}

	f := validPresencialForm()
	f.Set("inicio_inscricoes_data", "2028-03-01")
	f.Set("fim_inscricoes_data", "2028-03-31")
	f.Set("inicio_aulas_data[]", "2028-04-15", "2028-04-15")
	f.Set("fim_aulas_data[]", "2028-06-15", "2028-06-15")

	res := v.Validate(f)
	if !res.OK() {
		t.Fatalf("far-future dates must not be errors, got %v", res.Errors)
	}
	if len(res.Warnings) == 0 {
		t.Fatal("expected a far-future warning")
	}
	if !strings.Contains(res.Warnings[0], "muito distante no futuro") {
		t.Errorf("unexpected warning: %q", res.Warnings[0])
	}
}

func TestValidateUnknownModality(t *testing.T) {
	f := validPresencialForm()
	f.Set("modalidade", "Semipresencial")

	res := NewValidator().Validate(f)
	assertHasError(t, res, "Modalidade inválida")
}
