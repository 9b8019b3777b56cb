package forms

import (
	"reflect"
	"testing"
)

func TestDecodeFormKeepsOnlyRowsWithPrimaryData(t *testing.T) {
	f := Form{
		"endereco_unidade[]":       {"Rua A, 1", "", ""},
		"bairro_unidade[]":         {"Centro", "", ""},
		"vagas_unidade[]":          {"30", "", ""},
		"inicio_aulas_data[]":      {"2025-04-15", "2025-05-01", ""},
		"dias_aula_presencial_0[]": {"segunda"},
		"dias_aula_presencial_1[]": {"terca"},
	}

	records := DecodeForm(f)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d: %+v", len(records), records)
	}
	if records[0].Address != "Rua A, 1" || records[0].Seats != "30" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestDecodeFormPadsUnequalArrays(t *testing.T) {
	f := Form{
		"endereco_unidade[]": {"Rua A, 1", "Rua B, 2"},
		"bairro_unidade[]":   {"Centro"},
		"vagas_unidade[]":    {"30", "25"},
	}

	records := DecodeForm(f)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].Neighborhood != "" {
		t.Errorf("missing positions must default to empty, got %q", records[1].Neighborhood)
	}
}

func TestDecodeFormWeekdayFallback(t *testing.T) {
	f := Form{
		"endereco_unidade[]":       {"Rua A, 1", "Rua B, 2"},
		"bairro_unidade[]":         {"Centro", "Tijuca"},
		"vagas_unidade[]":          {"30", "25"},
		"dias_aula_presencial_0[]": {"segunda", "quarta"},
		"dias_aula_presencial[]":   {"sexta"},
	}

	records := DecodeForm(f)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[0].Weekdays; !reflect.DeepEqual(got, []string{"segunda", "quarta"}) {
		t.Errorf("row 0 weekdays = %v, want its own list", got)
	}
	if got := records[1].Weekdays; !reflect.DeepEqual(got, []string{"sexta"}) {
		t.Errorf("row 1 weekdays = %v, want shared fallback", got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	records := []SectionRecord{
		{
			Address:      "Rua da Assembleia, 10",
			Neighborhood: "Centro",
			Complement:   "Sala 201",
			Seats:        "30",
			ClassStart:   "2025-04-15",
			ClassEnd:     "2025-06-15",
			TimeStart:    "09:00",
			TimeEnd:      "12:00",
			Weekdays:     []string{"segunda", "quarta"},
		},
		{
			Address:      "Av. das Américas, 500",
			Neighborhood: "Barra da Tijuca",
			Seats:        "25",
			ClassStart:   "2025-04-15",
			ClassEnd:     "2025-06-15",
			TimeStart:    "14:00",
			TimeEnd:      "17:00",
			Weekdays:     []string{"terca", "quinta"},
		},
	}

	got := Decode(Encode(records))
	if !reflect.DeepEqual(got, records) {
		t.Errorf("round trip changed the records:\n got %+v\nwant %+v", got, records)
	}
}

func TestEncodeJoinsWeekdaysTwoLevel(t *testing.T) {
	records := []SectionRecord{
		{Address: "A", Neighborhood: "B", Seats: "10", Weekdays: []string{"segunda", "quarta"}},
		{Address: "C", Neighborhood: "D", Seats: "20", Weekdays: []string{"sexta"}},
	}

	flat := Encode(records)
	if got := flat["dias_aula"]; got != "segunda,quarta|sexta" {
		t.Errorf("dias_aula = %q, want comma within record and pipe across records", got)
	}
	if got := flat["endereco_unidade"]; got != "A|C" {
		t.Errorf("endereco_unidade = %q", got)
	}
}

func TestDecodeEmptyFlat(t *testing.T) {
	if records := Decode(Flat{}); len(records) != 0 {
		t.Errorf("empty flat input must decode to no records, got %+v", records)
	}
}
