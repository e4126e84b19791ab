package form

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed" // reserved for an external review workflow, never set by the wizard
	StatusSubmitted Status = "submitted"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type TravelPurpose string

const (
	PurposeTourism   TravelPurpose = "TOURISM"
	PurposeBusiness  TravelPurpose = "BUSINESS"
	PurposeEducation TravelPurpose = "EDUCATION"
	PurposeMedical   TravelPurpose = "MEDICAL"
	PurposeTransit   TravelPurpose = "TRANSIT"
	PurposeOther     TravelPurpose = "OTHER"
)

type EmploymentStatus string

const (
	Employed     EmploymentStatus = "EMPLOYED"
	SelfEmployed EmploymentStatus = "SELF_EMPLOYED"
	Unemployed   EmploymentStatus = "UNEMPLOYED"
	Student      EmploymentStatus = "STUDENT"
	Retired      EmploymentStatus = "RETIRED"
	Homemaker    EmploymentStatus = "HOMEMAKER"
	OtherWork    EmploymentStatus = "OTHER"
)

// RequiresEmployer reports whether the employer block is mandatory for this status.
func (s EmploymentStatus) RequiresEmployer() bool {
	return s == Employed || s == SelfEmployed || s == Retired
}

type EducationLevel string

const (
	LessThanHighSchool EducationLevel = "LESS_THAN_HIGH_SCHOOL"
	HighSchool         EducationLevel = "HIGH_SCHOOL"
	VocationalSchool   EducationLevel = "VOCATIONAL_SCHOOL"
	SomeUniversity     EducationLevel = "SOME_UNIVERSITY"
	UniversityDegree   EducationLevel = "UNIVERSITY_DEGREE"
	GraduateDegree     EducationLevel = "GRADUATE_DEGREE"
)

// Address is a postal address. The US point-of-contact address leaves
// Country empty; validation decides per section which fields are mandatory.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country,omitempty"`
}

// USContact is the applicant's point of contact in the United States.
type USContact struct {
	Name         string  `json:"name"`
	Organization string  `json:"organization,omitempty"`
	Relationship string  `json:"relationship"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email,omitempty"`
	Address      Address `json:"address"`
}

// Visit is one prior stay in the United States. Dates use the ISO layout
// 2006-01-02, as does every other date field on the record.
type Visit struct {
	ArrivalDate   string `json:"arrivalDate"`
	DepartureDate string `json:"departureDate"`
	LengthOfStay  int    `json:"lengthOfStay"`
}

type Employer struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

type School struct {
	Name          string  `json:"name"`
	Address       Address `json:"address"`
	CourseOfStudy string  `json:"courseOfStudy"`
	FromDate      string  `json:"fromDate"`
	ToDate        string  `json:"toDate"`
}

type SecurityQuestions struct {
	CriminalOffense bool   `json:"criminalOffense"`
	DrugOffense     bool   `json:"drugOffense"`
	Terrorism       bool   `json:"terrorism"`
	VisaFraud       bool   `json:"visaFraud"`
	Explanations    string `json:"explanations"`
}

// AnyYes reports whether at least one security question was answered yes,
// which makes the explanation text mandatory.
func (q SecurityQuestions) AnyYes() bool {
	return q.CriminalOffense || q.DrugOffense || q.Terrorism || q.VisaFraud
}

// Application is one visa application record. Scalar answers live in plain
// columns; nested blocks are stored as JSON so a partially filled draft
// round-trips without schema gymnastics.
type Application struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`

	// Personal information
	LastName       string `json:"lastName"`
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName,omitempty"`
	Gender         Gender `json:"gender"`
	DateOfBirth    string `json:"dateOfBirth"`
	CityOfBirth    string `json:"cityOfBirth"`
	CountryOfBirth string `json:"countryOfBirth"`
	Nationality    string `json:"nationality"`

	// Contact information
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address" gorm:"serializer:json"`

	// Passport information
	PassportNumber        string `json:"passportNumber"`
	PassportIssuedCountry string `json:"passportIssuedCountry"`
	PassportIssuedDate    string `json:"passportIssuedDate"`
	PassportExpiryDate    string `json:"passportExpiryDate"`

	// Travel information
	TravelPurpose        TravelPurpose `json:"travelPurpose"`
	IntendedArrivalDate  string        `json:"intendedArrivalDate"`
	IntendedStayDuration int           `json:"intendedStayDuration"`
	USContactInfo        USContact     `json:"usContactInfo" gorm:"serializer:json"`

	// Previous US travel
	PreviousUSTravel        bool                       `json:"previousUSTravel"`
	PreviousUSTravelDetails datatypes.JSONSlice[Visit] `json:"previousUSTravelDetails"`

	// Employment information
	EmploymentStatus EmploymentStatus `json:"employmentStatus"`
	Employer         Employer         `json:"employer" gorm:"serializer:json"`

	// Education information
	EducationLevel EducationLevel              `json:"educationLevel"`
	Schools        datatypes.JSONSlice[School] `json:"schools"`

	SecurityQuestions SecurityQuestions `json:"securityQuestions" gorm:"serializer:json"`

	FormStatus Status `json:"formStatus" gorm:"default:'draft'"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.FormStatus == "" {
		a.FormStatus = StatusDraft
	}
	return nil
}

// NewDraft returns the record a fresh wizard session starts from: no previous
// travel declared, no visits, no schools, all security answers no.
func NewDraft() Application {
	return Application{
		PreviousUSTravel:        false,
		PreviousUSTravelDetails: datatypes.JSONSlice[Visit]{},
		Schools:                 datatypes.JSONSlice[School]{},
		FormStatus:              StatusDraft,
	}
}
