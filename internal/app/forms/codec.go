package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cursoscarioca/webciclo/internal/app/models"
	"github.com/cursoscarioca/webciclo/internal/pkg/dateutil"
)

// Form field names for the repeated class-section group. One section is one
// position across all of these parallel arrays.
const (
	fieldSectionAddress      = "endereco_unidade[]"
	fieldSectionNeighborhood = "bairro_unidade[]"
	fieldSectionComplement   = "complemento[]"
	fieldSectionSeats        = "vagas_unidade[]"
	fieldSectionClassStart   = "inicio_aulas_data[]"
	fieldSectionClassEnd     = "fim_aulas_data[]"
	fieldSectionTimeStart    = "horario_inicio[]"
	fieldSectionTimeEnd      = "horario_fim[]"

	// Weekday checkboxes are posted per section as
	// dias_aula_presencial_<i>[]; older form revisions post a single shared
	// dias_aula_presencial[] list instead.
	fieldSectionWeekdaysRow = "dias_aula_presencial_%d[]"
	fieldSectionWeekdaysAll = "dias_aula_presencial[]"
)

// Flat field names used by the pipe-delimited single-string encoding.
const (
	flatAddress      = "endereco_unidade"
	flatNeighborhood = "bairro_unidade"
	flatComplement   = "complemento"
	flatSeats        = "vagas_unidade"
	flatClassStart   = "inicio_aulas_data"
	flatClassEnd     = "fim_aulas_data"
	flatTimeStart    = "horario_inicio"
	flatTimeEnd      = "horario_fim"
	flatWeekdays     = "dias_aula"
)

// Delimiters of the flat encoding: "|" separates sections, "," separates
// weekdays inside one section.
const (
	recordSep  = "|"
	weekdaySep = ","
)

// SectionRecord is one raw, still-unvalidated class-section row as entered
// on the form. All values are strings exactly as posted, trimmed.
type SectionRecord struct {
	Address      string
	Neighborhood string
	Complement   string
	Seats        string
	ClassStart   string
	ClassEnd     string
	TimeStart    string
	TimeEnd      string
	Weekdays     []string
}

// hasPrimary reports whether the row carries data in any of the fields that
// distinguish a real section from a trailing empty form row. Weekday and
// date fields deliberately do not count: the front end pre-checks defaults
// on empty rows.
func (r SectionRecord) hasPrimary() bool {
	return r.Address != "" || r.Neighborhood != "" || r.Seats != ""
}

// Flat is the pipe-delimited flat representation of a section list, one
// joined string per field. It is what the persistence and export layers
// move around when they cannot carry structured records.
type Flat map[string]string

// DecodeForm extracts the class-section rows from the parallel arrays of a
// submission. Arrays of unequal length are padded with empty strings up to
// the longest one. A row is kept only if at least one primary field
// (address, neighborhood, seats) is non-blank.
//
// Weekdays come from the row's own dias_aula_presencial_<i>[] list, indexed
// by the row's position before filtering; rows without one fall back to the
// shared dias_aula_presencial[] list.
func DecodeForm(f Form) []SectionRecord {
	cols := [][]string{
		f.Values(fieldSectionAddress),
		f.Values(fieldSectionNeighborhood),
		f.Values(fieldSectionComplement),
		f.Values(fieldSectionSeats),
		f.Values(fieldSectionClassStart),
		f.Values(fieldSectionClassEnd),
		f.Values(fieldSectionTimeStart),
		f.Values(fieldSectionTimeEnd),
	}

	n := 0
	for _, c := range cols {
		if len(c) > n {
			n = len(c)
		}
	}

	shared := cleanWeekdays(f.Values(fieldSectionWeekdaysAll))

	var records []SectionRecord
	for i := 0; i < n; i++ {
		days := cleanWeekdays(f.Values(fmt.Sprintf(fieldSectionWeekdaysRow, i)))
		if len(days) == 0 {
			days = shared
		}

		r := SectionRecord{
			Address:      at(cols[0], i),
			Neighborhood: at(cols[1], i),
			Complement:   at(cols[2], i),
			Seats:        at(cols[3], i),
			ClassStart:   at(cols[4], i),
			ClassEnd:     at(cols[5], i),
			TimeStart:    at(cols[6], i),
			TimeEnd:      at(cols[7], i),
			Weekdays:     days,
		}
		if r.hasPrimary() {
			records = append(records, r)
		}
	}
	return records
}

// Encode renders a section list into the flat pipe-delimited form. Field
// values are joined across records with "|"; each record's weekday list is
// first joined with "," so the two levels never collide.
func Encode(records []SectionRecord) Flat {
	join := func(pick func(SectionRecord) string) string {
		parts := make([]string, len(records))
		for i, r := range records {
			parts[i] = pick(r)
		}
		return strings.Join(parts, recordSep)
	}

	return Flat{
		flatAddress:      join(func(r SectionRecord) string { return r.Address }),
		flatNeighborhood: join(func(r SectionRecord) string { return r.Neighborhood }),
		flatComplement:   join(func(r SectionRecord) string { return r.Complement }),
		flatSeats:        join(func(r SectionRecord) string { return r.Seats }),
		flatClassStart:   join(func(r SectionRecord) string { return r.ClassStart }),
		flatClassEnd:     join(func(r SectionRecord) string { return r.ClassEnd }),
		flatTimeStart:    join(func(r SectionRecord) string { return r.TimeStart }),
		flatTimeEnd:      join(func(r SectionRecord) string { return r.TimeEnd }),
		flatWeekdays:     join(func(r SectionRecord) string { return strings.Join(r.Weekdays, weekdaySep) }),
	}
}

// Decode is the inverse of Encode: it splits the flat representation back
// into section records, applying the same keep-if-any-primary rule as
// DecodeForm.
func Decode(flat Flat) []SectionRecord {
	split := func(key string) []string {
		return strings.Split(flat[key], recordSep)
	}

	cols := [][]string{
		split(flatAddress),
		split(flatNeighborhood),
		split(flatComplement),
		split(flatSeats),
		split(flatClassStart),
		split(flatClassEnd),
		split(flatTimeStart),
		split(flatTimeEnd),
	}
	days := split(flatWeekdays)

	n := 0
	for _, c := range cols {
		if len(c) > n {
			n = len(c)
		}
	}

	var records []SectionRecord
	for i := 0; i < n; i++ {
		r := SectionRecord{
			Address:      at(cols[0], i),
			Neighborhood: at(cols[1], i),
			Complement:   at(cols[2], i),
			Seats:        at(cols[3], i),
			ClassStart:   at(cols[4], i),
			ClassEnd:     at(cols[5], i),
			TimeStart:    at(cols[6], i),
			TimeEnd:      at(cols[7], i),
		}
		if i < len(days) {
			r.Weekdays = cleanWeekdays(strings.Split(days[i], weekdaySep))
		}
		if r.hasPrimary() {
			records = append(records, r)
		}
	}
	return records
}

// RecordsFromSections converts persisted class sections back into codec
// records, the shape Encode expects. Zero dates render as empty strings.
func RecordsFromSections(sections []models.ClassSection) []SectionRecord {
	records := make([]SectionRecord, 0, len(sections))
	for _, s := range sections {
		r := SectionRecord{
			Address:      s.Address,
			Neighborhood: s.Neighborhood,
			Complement:   s.Complement,
			Seats:        strconv.Itoa(s.TotalSeats),
			TimeStart:    s.StartTime,
			TimeEnd:      s.EndTime,
		}
		if !s.Classes.Start.IsZero() {
			r.ClassStart = dateutil.FormatISO(s.Classes.Start)
		}
		if !s.Classes.End.IsZero() {
			r.ClassEnd = dateutil.FormatISO(s.Classes.End)
		}
		for _, d := range s.Weekdays {
			r.Weekdays = append(r.Weekdays, string(d))
		}
		records = append(records, r)
	}
	return records
}

func at(col []string, i int) string {
	if i < len(col) {
		return strings.TrimSpace(col[i])
	}
	return ""
}

func cleanWeekdays(vs []string) []string {
	var out []string
	for _, v := range vs {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
