package models

import "time"

// Modality is the delivery mode of a course offering.
type Modality string

const (
	ModalityPresencial Modality = "Presencial"
	ModalityOnline     Modality = "Online"
	ModalityHibrido    Modality = "Híbrido"
)

// Valid reports whether m is one of the known delivery modes.
func (m Modality) Valid() bool {
	switch m {
	case ModalityPresencial, ModalityOnline, ModalityHibrido:
		return true
	}
	return false
}

// Accessibility describes the accessibility level declared for an offering.
type Accessibility string

const (
	AccessibilityNone      Accessibility = "nao_acessivel"
	AccessibilityPartial   Accessibility = "acessivel"
	AccessibilityExclusive Accessibility = "exclusivo"
)

// RequiresResources reports whether the accessibility level obliges the
// offering to describe its accessibility resources.
func (a Accessibility) RequiresResources() bool {
	return a == AccessibilityPartial || a == AccessibilityExclusive
}

// Weekday is a class weekday as submitted by the form checkboxes
// (e.g. "segunda", "quarta").
type Weekday string

// DateRange is an inclusive calendar-date interval.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CourseOffering is the root record for one published course, workshop or
// lecture. It exclusively owns its class sections and online delivery;
// edits replace the sub-entities wholesale.
type CourseOffering struct {
	ID                  int64  `json:"id" db:"id"`
	ActionType          string `json:"actionType" db:"action_type" example:"Curso"`
	Title               string `json:"title" db:"title"`
	Description         string `json:"description" db:"description"`
	OriginalDescription string `json:"originalDescription" db:"original_description"`
	Organization        string `json:"organization" db:"organization"`
	Theme               string `json:"theme" db:"theme"`
	WorkloadHours       string `json:"workloadHours,omitempty" db:"workload_hours"`

	Modality     Modality  `json:"modality" db:"modality"`
	Registration DateRange `json:"registration"`

	TargetAudience string `json:"targetAudience" db:"target_audience"`

	Accessibility          Accessibility `json:"accessibility" db:"accessibility"`
	AccessibilityResources string        `json:"accessibilityResources,omitempty" db:"accessibility_resources"`

	Free               bool    `json:"free" db:"free"`
	FullPrice          *string `json:"fullPrice,omitempty" db:"full_price"`
	HalfPrice          *string `json:"halfPrice,omitempty" db:"half_price"`
	HalfPriceConditions string `json:"halfPriceConditions,omitempty" db:"half_price_conditions"`

	OffersScholarship       bool    `json:"offersScholarship" db:"offers_scholarship"`
	ScholarshipAmount       *string `json:"scholarshipAmount,omitempty" db:"scholarship_amount"`
	ScholarshipRequirements string  `json:"scholarshipRequirements,omitempty" db:"scholarship_requirements"`

	OffersCertificate        bool   `json:"offersCertificate" db:"offers_certificate"`
	CertificatePrerequisites string `json:"certificatePrerequisites,omitempty" db:"certificate_prerequisites"`

	ExternalPartner bool   `json:"externalPartner" db:"external_partner"`
	PartnerName     string `json:"partnerName,omitempty" db:"partner_name"`
	PartnerLink     string `json:"partnerLink,omitempty" db:"partner_link"`
	PartnerLogoRef  string `json:"partnerLogoRef,omitempty" db:"partner_logo_ref"`

	CoverImageRef  string `json:"coverImageRef,omitempty" db:"cover_image_ref"`
	AdditionalInfo string `json:"additionalInfo,omitempty" db:"additional_info"`

	// Sub-entities. Exactly one of the two is populated for
	// Presencial/Online; both for Híbrido.
	Sections []ClassSection  `json:"sections,omitempty"`
	Online   *OnlineDelivery `json:"online,omitempty"`

	Inserted  bool      `json:"inserted" db:"is_inserted"`
	CreatedBy int64     `json:"createdBy" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ClassSection is one in-person class group ("turma") of an offering, with
// its own venue, capacity and schedule. SequenceNumber is 1-based and
// follows the order the sections were entered on the form.
type ClassSection struct {
	ID             int64     `json:"id" db:"id"`
	SequenceNumber int       `json:"sequenceNumber" db:"sequence_number"`
	Address        string    `json:"address" db:"address"`
	Neighborhood   string    `json:"neighborhood" db:"neighborhood"`
	Complement     string    `json:"complement,omitempty" db:"complement"`
	TotalSeats     int       `json:"totalSeats" db:"total_seats"`
	Classes        DateRange `json:"classes"`
	StartTime      string    `json:"startTime,omitempty" db:"start_time"`
	EndTime        string    `json:"endTime,omitempty" db:"end_time"`
	Weekdays       []Weekday `json:"weekdays"`
}

// OnlineDelivery is the single remote-delivery configuration of an
// offering. When Asynchronous is true no schedule exists at all: Classes is
// nil and StartTime/EndTime/Weekdays are empty.
type OnlineDelivery struct {
	ID           int64      `json:"id" db:"id"`
	PlatformName string     `json:"platformName,omitempty" db:"platform_name"`
	AccessLink   string     `json:"accessLink,omitempty" db:"access_link"`
	TotalSeats   int        `json:"totalSeats" db:"total_seats"`
	Asynchronous bool       `json:"asynchronous" db:"asynchronous"`
	Classes      *DateRange `json:"classes,omitempty"`
	StartTime    string     `json:"startTime,omitempty" db:"start_time"`
	EndTime      string     `json:"endTime,omitempty" db:"end_time"`
	Weekdays     []Weekday  `json:"weekdays,omitempty"`
}

// HasSections reports whether the modality calls for in-person sections.
func (c *CourseOffering) HasSections() bool {
	return c.Modality == ModalityPresencial || c.Modality == ModalityHibrido
}

// HasOnline reports whether the modality calls for an online delivery.
func (c *CourseOffering) HasOnline() bool {
	return c.Modality == ModalityOnline || c.Modality == ModalityHibrido
}
