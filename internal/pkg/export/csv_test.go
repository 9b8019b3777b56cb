package export

import (
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/cursoscarioca/webciclo/internal/app/models"
)

func sampleCourse() *models.CourseOffering {
	return &models.CourseOffering{
		ID:           42,
		ActionType:   "Curso",
		Title:        "Curso de Robótica",
		Description:  "Descrição, com vírgula",
		Organization: "Secretaria Municipal de Educação",
		Theme:        "Tecnologia",
		Modality:     models.ModalityPresencial,
		Registration: models.DateRange{
			Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		Free:      true,
		CreatedAt: time.Date(2025, 2, 1, 10, 30, 0, 0, time.UTC),
		Sections: []models.ClassSection{
			{
				SequenceNumber: 1,
				Address:        "Rua da Assembleia, 10",
				Neighborhood:   "Centro",
				TotalSeats:     30,
				Classes: models.DateRange{
					Start: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
					End:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
				},
				Weekdays: []models.Weekday{"segunda", "quarta"},
			},
			{
				SequenceNumber: 2,
				Address:        "Av. das Américas, 500",
				Neighborhood:   "Zona Sul",
				TotalSeats:     25,
				Weekdays:       []models.Weekday{"terca"},
			},
		},
	}
}

func TestWriteCourse(t *testing.T) {
	exporter, err := NewCSVExporter(t.TempDir())
	if err != nil {
		t.Fatalf("NewCSVExporter: %v", err)
	}
	exporter.now = func() time.Time {
		return time.Date(2025, 2, 1, 10, 30, 0, 0, time.UTC)
	}

	path, err := exporter.WriteCourse(sampleCourse())
	if err != nil {
		t.Fatalf("WriteCourse: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one record, got %d rows", len(rows))
	}

	cell := func(name string) string {
		t.Helper()
		for i, col := range rows[0] {
			if col == name {
				return rows[1][i]
			}
		}
		t.Fatalf("column %q not found", name)
		return ""
	}

	if got := cell("id"); got != "42" {
		t.Errorf("id = %q", got)
	}
	if got := cell("descricao"); got != "Descrição, com vírgula" {
		t.Errorf("descricao = %q", got)
	}
	if got := cell("inicio_inscricoes"); got != "01/03/2025" {
		t.Errorf("inicio_inscricoes = %q", got)
	}
	if got := cell("curso_gratuito"); got != "sim" {
		t.Errorf("curso_gratuito = %q", got)
	}
	if got := cell("endereco_unidade"); got != "Rua da Assembleia, 10|Av. das Américas, 500" {
		t.Errorf("endereco_unidade = %q", got)
	}
	if got := cell("dias_aula"); got != "segunda,quarta|terca" {
		t.Errorf("dias_aula = %q", got)
	}
	if got := cell("vagas_unidade"); got != "30|25" {
		t.Errorf("vagas_unidade = %q", got)
	}
	if got := cell("inicio_aulas_data"); got != "2025-04-15|" {
		t.Errorf("inicio_aulas_data = %q", got)
	}
}
