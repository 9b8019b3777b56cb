// Package export renders normalized course offerings into flat CSV files,
// one file per offering. The files are the interchange format consumed by
// the municipal publication pipeline; repeated class-section fields use the
// pipe-delimited flat encoding.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cursoscarioca/webciclo/internal/app/forms"
	"github.com/cursoscarioca/webciclo/internal/app/models"
	"github.com/cursoscarioca/webciclo/internal/pkg/dateutil"
	"github.com/cursoscarioca/webciclo/internal/pkg/logger"
)

// Column order of the generated files. Kept stable so downstream readers
// can rely on position as well as header name.
var columns = []string{
	"id",
	"tipo_acao",
	"titulo",
	"descricao",
	"descricao_original",
	"orgao",
	"tema",
	"modalidade",
	"carga_horaria",
	"inicio_inscricoes",
	"fim_inscricoes",
	"publico_alvo",
	"acessibilidade",
	"recursos_acessibilidade",
	"curso_gratuito",
	"valor_curso_inteira",
	"valor_curso_meia",
	"requisitos_meia",
	"oferece_bolsa",
	"valor_bolsa",
	"requisitos_bolsa",
	"oferece_certificado",
	"pre_requisitos",
	"parceiro_externo",
	"parceiro_nome",
	"parceiro_link",
	"informacoes_adicionais",
	"plataforma_digital",
	"link_acesso",
	"vagas_online",
	"aulas_assincronas",
	"endereco_unidade",
	"bairro_unidade",
	"complemento",
	"vagas_unidade",
	"inicio_aulas_data",
	"fim_aulas_data",
	"horario_inicio",
	"horario_fim",
	"dias_aula",
	"created_at",
}

// CSVExporter writes one CSV file per course offering into a fixed
// directory.
type CSVExporter struct {
	dir string
	now func() time.Time
}

// NewCSVExporter ensures the output directory exists and returns an
// exporter writing into it.
func NewCSVExporter(dir string) (*CSVExporter, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}
	return &CSVExporter{dir: dir, now: time.Now}, nil
}

// WriteCourse renders the offering into a new timestamped CSV file and
// returns the file's path.
func (e *CSVExporter) WriteCourse(c *models.CourseOffering) (string, error) {
	filename := fmt.Sprintf("curso_%d_%s.csv", c.ID, e.now().Format("20060102_150405"))
	path := filepath.Join(e.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.Write(e.row(c)); err != nil {
		return "", fmt.Errorf("failed to write record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export file: %w", err)
	}

	logger.Info().Int64("course_id", c.ID).Str("file", filename).Msg("Course exported to CSV")
	return path, nil
}

func (e *CSVExporter) row(c *models.CourseOffering) []string {
	flat := forms.Encode(forms.RecordsFromSections(c.Sections))

	values := map[string]string{
		"id":                      strconv.FormatInt(c.ID, 10),
		"tipo_acao":               c.ActionType,
		"titulo":                  c.Title,
		"descricao":               c.Description,
		"descricao_original":      c.OriginalDescription,
		"orgao":                   c.Organization,
		"tema":                    c.Theme,
		"modalidade":              string(c.Modality),
		"carga_horaria":           c.WorkloadHours,
		"inicio_inscricoes":       dateutil.FormatBR(c.Registration.Start),
		"fim_inscricoes":          dateutil.FormatBR(c.Registration.End),
		"publico_alvo":            c.TargetAudience,
		"acessibilidade":          string(c.Accessibility),
		"recursos_acessibilidade": c.AccessibilityResources,
		"curso_gratuito":          simNao(c.Free),
		"valor_curso_inteira":     deref(c.FullPrice),
		"valor_curso_meia":        deref(c.HalfPrice),
		"requisitos_meia":         c.HalfPriceConditions,
		"oferece_bolsa":           simNao(c.OffersScholarship),
		"valor_bolsa":             deref(c.ScholarshipAmount),
		"requisitos_bolsa":        c.ScholarshipRequirements,
		"oferece_certificado":     simNao(c.OffersCertificate),
		"pre_requisitos":          c.CertificatePrerequisites,
		"parceiro_externo":        simNao(c.ExternalPartner),
		"parceiro_nome":           c.PartnerName,
		"parceiro_link":           c.PartnerLink,
		"informacoes_adicionais":  c.AdditionalInfo,
		"created_at":              c.CreatedAt.Format("02-01-2006 15:04:05"),
	}

	if c.Online != nil {
		values["plataforma_digital"] = c.Online.PlatformName
		values["link_acesso"] = c.Online.AccessLink
		values["vagas_online"] = strconv.Itoa(c.Online.TotalSeats)
		values["aulas_assincronas"] = simNao(c.Online.Asynchronous)
	}

	for k, v := range flat {
		values[k] = v
	}

	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = values[col]
	}
	return row
}

func simNao(b bool) string {
	if b {
		return "sim"
	}
	return "nao"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
