package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cursoscarioca/webciclo/internal/app/models"
	"github.com/cursoscarioca/webciclo/internal/db"
	"github.com/cursoscarioca/webciclo/internal/pkg/apperrors"
	"github.com/cursoscarioca/webciclo/internal/pkg/helpers"
)

// CourseRepository handles database operations for course offerings and
// their sub-entities. A course exclusively owns its class sections and
// online delivery: updates replace the sub-entities wholesale inside one
// transaction, so readers never observe a partial replacement.
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// CourseFilter narrows GetAll results.
type CourseFilter struct {
	Modality     string
	Theme        string
	Organization string
	Pending      bool // only offerings not yet inserted downstream
	Inserted     bool // only offerings already inserted downstream
	Search       string
}

const courseColumns = `
	id, action_type, title, description, original_description, organization,
	theme, workload_hours, modality, registration_start, registration_end,
	target_audience, accessibility, accessibility_resources, free, full_price,
	half_price, half_price_conditions, offers_scholarship, scholarship_amount,
	scholarship_requirements, offers_certificate, certificate_prerequisites,
	external_partner, partner_name, partner_link, partner_logo_ref,
	cover_image_ref, additional_info, is_inserted, created_by, created_at,
	updated_at`

// Create inserts a course offering with all its sub-entities in one
// transaction and sets the generated ID on the model.
func (r *CourseRepository) Create(ctx context.Context, course *models.CourseOffering) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return r.insertCourse(ctx, tx, course)
	})
}

func (r *CourseRepository) insertCourse(ctx context.Context, tx pgx.Tx, course *models.CourseOffering) error {
	query := `
		INSERT INTO courses (
			action_type, title, description, original_description, organization,
			theme, workload_hours, modality, registration_start, registration_end,
			target_audience, accessibility, accessibility_resources, free,
			full_price, half_price, half_price_conditions, offers_scholarship,
			scholarship_amount, scholarship_requirements, offers_certificate,
			certificate_prerequisites, external_partner, partner_name,
			partner_link, partner_logo_ref, cover_image_ref, additional_info,
			created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27,
			$28, $29)
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		course.ActionType, course.Title, course.Description,
		course.OriginalDescription, course.Organization, course.Theme,
		course.WorkloadHours, course.Modality, course.Registration.Start,
		course.Registration.End, course.TargetAudience, course.Accessibility,
		course.AccessibilityResources, course.Free,
		helpers.GetNullString(course.FullPrice),
		helpers.GetNullString(course.HalfPrice),
		course.HalfPriceConditions, course.OffersScholarship,
		helpers.GetNullString(course.ScholarshipAmount),
		course.ScholarshipRequirements, course.OffersCertificate,
		course.CertificatePrerequisites, course.ExternalPartner,
		course.PartnerName, course.PartnerLink, course.PartnerLogoRef,
		course.CoverImageRef, course.AdditionalInfo,
		helpers.GetNullInt64(course.CreatedBy),
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting course: %w", err)
	}

	return r.insertSubEntities(ctx, tx, course)
}

// Update replaces the scalar fields and fully replaces the sub-entities of
// an existing course offering in one transaction.
func (r *CourseRepository) Update(ctx context.Context, course *models.CourseOffering) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return r.updateCourse(ctx, tx, course)
	})
}

func (r *CourseRepository) updateCourse(ctx context.Context, tx pgx.Tx, course *models.CourseOffering) error {
	query := `
		UPDATE courses SET
			action_type = $1, title = $2, description = $3,
			original_description = $4, organization = $5, theme = $6,
			workload_hours = $7, modality = $8, registration_start = $9,
			registration_end = $10, target_audience = $11, accessibility = $12,
			accessibility_resources = $13, free = $14, full_price = $15,
			half_price = $16, half_price_conditions = $17,
			offers_scholarship = $18, scholarship_amount = $19,
			scholarship_requirements = $20, offers_certificate = $21,
			certificate_prerequisites = $22, external_partner = $23,
			partner_name = $24, partner_link = $25, partner_logo_ref = $26,
			cover_image_ref = $27, additional_info = $28,
			is_inserted = FALSE, updated_at = NOW()
		WHERE id = $29
	`

	tag, err := tx.Exec(ctx, query,
		course.ActionType, course.Title, course.Description,
		course.OriginalDescription, course.Organization, course.Theme,
		course.WorkloadHours, course.Modality, course.Registration.Start,
		course.Registration.End, course.TargetAudience, course.Accessibility,
		course.AccessibilityResources, course.Free,
		helpers.GetNullString(course.FullPrice),
		helpers.GetNullString(course.HalfPrice),
		course.HalfPriceConditions, course.OffersScholarship,
		helpers.GetNullString(course.ScholarshipAmount),
		course.ScholarshipRequirements, course.OffersCertificate,
		course.CertificatePrerequisites, course.ExternalPartner,
		course.PartnerName, course.PartnerLink, course.PartnerLogoRef,
		course.CoverImageRef, course.AdditionalInfo,
		course.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	// Delete-and-recreate the sub-entities. Weekday rows cascade.
	if _, err := tx.Exec(ctx, `DELETE FROM class_sections WHERE course_id = $1`, course.ID); err != nil {
		return fmt.Errorf("error deleting class sections: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM online_deliveries WHERE course_id = $1`, course.ID); err != nil {
		return fmt.Errorf("error deleting online delivery: %w", err)
	}

	return r.insertSubEntities(ctx, tx, course)
}

func (r *CourseRepository) insertSubEntities(ctx context.Context, tx pgx.Tx, course *models.CourseOffering) error {
	for i := range course.Sections {
		s := &course.Sections[i]
		err := tx.QueryRow(ctx, `
			INSERT INTO class_sections (
				course_id, sequence_number, address, neighborhood, complement,
				total_seats, classes_start, classes_end, start_time, end_time
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`,
			course.ID, s.SequenceNumber, s.Address, s.Neighborhood,
			s.Complement, s.TotalSeats,
			helpers.GetNullTime(s.Classes.Start),
			helpers.GetNullTime(s.Classes.End),
			s.StartTime, s.EndTime,
		).Scan(&s.ID)
		if err != nil {
			return fmt.Errorf("error inserting class section %d: %w", s.SequenceNumber, err)
		}

		for _, day := range s.Weekdays {
			if _, err := tx.Exec(ctx, `
				INSERT INTO class_section_weekdays (class_section_id, weekday)
				VALUES ($1, $2)
			`, s.ID, string(day)); err != nil {
				return fmt.Errorf("error inserting section weekday: %w", err)
			}
		}
	}

	if course.Online != nil {
		o := course.Online
		var classesStart, classesEnd sql.NullTime
		if o.Classes != nil {
			classesStart = helpers.GetNullTime(o.Classes.Start)
			classesEnd = helpers.GetNullTime(o.Classes.End)
		}

		err := tx.QueryRow(ctx, `
			INSERT INTO online_deliveries (
				course_id, platform_name, access_link, total_seats,
				asynchronous, classes_start, classes_end, start_time, end_time
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`,
			course.ID, o.PlatformName, o.AccessLink, o.TotalSeats,
			o.Asynchronous, classesStart, classesEnd, o.StartTime, o.EndTime,
		).Scan(&o.ID)
		if err != nil {
			return fmt.Errorf("error inserting online delivery: %w", err)
		}

		for _, day := range o.Weekdays {
			if _, err := tx.Exec(ctx, `
				INSERT INTO online_delivery_weekdays (online_delivery_id, weekday)
				VALUES ($1, $2)
			`, o.ID, string(day)); err != nil {
				return fmt.Errorf("error inserting online weekday: %w", err)
			}
		}
	}

	return nil
}

// GetByID retrieves a course offering with its sub-entities.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.CourseOffering, error) {
	query := `SELECT` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	if err := r.loadSubEntities(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetAll retrieves course offerings matching the filter, newest first.
func (r *CourseRepository) GetAll(ctx context.Context, filter CourseFilter) ([]*models.CourseOffering, error) {
	builder := sq.Select(courseColumns).
		From("courses").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Modality != "" {
		builder = builder.Where(sq.Eq{"modality": filter.Modality})
	}
	if filter.Theme != "" {
		builder = builder.Where(sq.Eq{"theme": filter.Theme})
	}
	if filter.Organization != "" {
		builder = builder.Where(sq.Eq{"organization": filter.Organization})
	}
	if filter.Pending {
		builder = builder.Where(sq.Eq{"is_inserted": false})
	}
	if filter.Inserted {
		builder = builder.Where(sq.Eq{"is_inserted": true})
	}
	if filter.Search != "" {
		builder = builder.Where(sq.Or{
			sq.ILike{"title": "%" + filter.Search + "%"},
			sq.ILike{"organization": "%" + filter.Search + "%"},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building course query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.CourseOffering
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, course := range courses {
		if err := r.loadSubEntities(ctx, course); err != nil {
			return nil, err
		}
	}

	return courses, nil
}

// Delete removes a course offering. Sub-entities cascade.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// SetInserted updates the downstream-insertion flag of an offering.
func (r *CourseRepository) SetInserted(ctx context.Context, id int64, inserted bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE courses SET is_inserted = $1, updated_at = NOW() WHERE id = $2`,
		inserted, id)
	if err != nil {
		return fmt.Errorf("error updating insertion flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) loadSubEntities(ctx context.Context, course *models.CourseOffering) error {
	if err := r.loadSections(ctx, course); err != nil {
		return err
	}
	return r.loadOnline(ctx, course)
}

func (r *CourseRepository) loadSections(ctx context.Context, course *models.CourseOffering) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, sequence_number, address, neighborhood, complement,
			total_seats, classes_start, classes_end, start_time, end_time
		FROM class_sections
		WHERE course_id = $1
		ORDER BY sequence_number
	`, course.ID)
	if err != nil {
		return fmt.Errorf("error loading class sections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s models.ClassSection
		var classesStart, classesEnd sql.NullTime
		if err := rows.Scan(
			&s.ID, &s.SequenceNumber, &s.Address, &s.Neighborhood,
			&s.Complement, &s.TotalSeats, &classesStart, &classesEnd,
			&s.StartTime, &s.EndTime,
		); err != nil {
			return err
		}
		s.Classes.Start = classesStart.Time
		s.Classes.End = classesEnd.Time
		course.Sections = append(course.Sections, s)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range course.Sections {
		s := &course.Sections[i]
		s.Weekdays, err = r.loadWeekdays(ctx,
			`SELECT weekday FROM class_section_weekdays WHERE class_section_id = $1 ORDER BY id`, s.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *CourseRepository) loadOnline(ctx context.Context, course *models.CourseOffering) error {
	var o models.OnlineDelivery
	var classesStart, classesEnd sql.NullTime
	err := r.db.QueryRow(ctx, `
		SELECT id, platform_name, access_link, total_seats, asynchronous,
			classes_start, classes_end, start_time, end_time
		FROM online_deliveries
		WHERE course_id = $1
	`, course.ID).Scan(
		&o.ID, &o.PlatformName, &o.AccessLink, &o.TotalSeats, &o.Asynchronous,
		&classesStart, &classesEnd, &o.StartTime, &o.EndTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("error loading online delivery: %w", err)
	}

	if classesStart.Valid || classesEnd.Valid {
		o.Classes = &models.DateRange{Start: classesStart.Time, End: classesEnd.Time}
	}

	o.Weekdays, err = r.loadWeekdays(ctx,
		`SELECT weekday FROM online_delivery_weekdays WHERE online_delivery_id = $1 ORDER BY id`, o.ID)
	if err != nil {
		return err
	}

	course.Online = &o
	return nil
}

func (r *CourseRepository) loadWeekdays(ctx context.Context, query string, ownerID int64) ([]models.Weekday, error) {
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error loading weekdays: %w", err)
	}
	defer rows.Close()

	var days []models.Weekday
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, models.Weekday(day))
	}
	return days, rows.Err()
}

type courseRow interface {
	Scan(dest ...any) error
}

func scanCourse(row courseRow) (*models.CourseOffering, error) {
	var c models.CourseOffering
	var createdBy sql.NullInt64
	err := row.Scan(
		&c.ID, &c.ActionType, &c.Title, &c.Description, &c.OriginalDescription,
		&c.Organization, &c.Theme, &c.WorkloadHours, &c.Modality,
		&c.Registration.Start, &c.Registration.End, &c.TargetAudience,
		&c.Accessibility, &c.AccessibilityResources, &c.Free, &c.FullPrice,
		&c.HalfPrice, &c.HalfPriceConditions, &c.OffersScholarship,
		&c.ScholarshipAmount, &c.ScholarshipRequirements, &c.OffersCertificate,
		&c.CertificatePrerequisites, &c.ExternalPartner, &c.PartnerName,
		&c.PartnerLink, &c.PartnerLogoRef, &c.CoverImageRef, &c.AdditionalInfo,
		&c.Inserted, &createdBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.CreatedBy = createdBy.Int64
	return &c, nil
}
