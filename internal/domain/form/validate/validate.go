// Package validate holds the per-section validation rules for a visa
// application. Each section validates only its own slice of the record;
// cross-section coordination (like seeding the previous-travel list when the
// flag flips) belongs to the wizard, not here.
package validate

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/visaquest/visaquest-go/internal/domain/form"
)

// check backs the single-value format rules (email and friends) so the
// section rules agree with what the frontend's field validation accepts.
var check = validator.New()

// FieldErrors maps a field path ("address.city", "schools[0].name") to a
// human-readable message. All failing rules for a section are reported
// together, never just the first.
type FieldErrors map[string]string

func (e FieldErrors) add(path, msg string) {
	e[path] = msg
}

func (e FieldErrors) merge(other FieldErrors) {
	for path, msg := range other {
		e[path] = msg
	}
}

// Paths returns the failing field paths in stable order, mostly for tests
// and log lines.
func (e FieldErrors) Paths() []string {
	paths := make([]string, 0, len(e))
	for p := range e {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Section identifies one wizard step.
type Section int

const (
	Personal Section = iota
	Contact
	Passport
	Travel
	PreviousTravel
	Employment
	Education
	Security
	Review
)

// SectionCount is the number of wizard steps, review included.
const SectionCount = 9

type descriptor struct {
	id    string
	title string
	check func(form.Application) FieldErrors
}

// Fixed ordered table of step descriptors; the step index is the only
// dispatch mechanism the wizard needs.
var sections = [SectionCount]descriptor{
	{"personal-info", "Personal Info", personalInfo},
	{"contact-info", "Contact Info", contactInfo},
	{"passport-info", "Passport Info", passportInfo},
	{"travel-info", "Travel Info", travelInfo},
	{"previous-travel", "Previous Travel", previousTravel},
	{"employment-info", "Employment", employmentInfo},
	{"education-info", "Education", educationInfo},
	{"security-questions", "Security", securityQuestions},
	{"review", "Review & Submit", nil},
}

// All references sections, so wiring it into the table directly would be an
// initialization cycle; set it at init time instead.
func init() {
	sections[Review].check = All
}

func (s Section) ID() string    { return sections[s].id }
func (s Section) Title() string { return sections[s].title }

// Validate runs this section's rules against its slice of the record.
func (s Section) Validate(app form.Application) FieldErrors {
	return sections[s].check(app)
}

// SectionByID resolves a section from its wire identifier.
func SectionByID(id string) (Section, error) {
	for i, d := range sections {
		if d.id == id {
			return Section(i), nil
		}
	}
	return 0, fmt.Errorf("unknown section %q", id)
}

// Titles returns the ordered step titles shown by the progress indicator.
func Titles() []string {
	titles := make([]string, SectionCount)
	for i, d := range sections {
		titles[i] = d.title
	}
	return titles
}

// All runs every section except review itself and merges the results. This
// is what gates a submitted record.
func All(app form.Application) FieldErrors {
	errs := FieldErrors{}
	for _, d := range sections[:Review] {
		errs.merge(d.check(app))
	}
	return errs
}

// Draft checks only well-formedness of the values actually provided, so a
// half-filled autosave snapshot is storable while garbage is still rejected.
func Draft(app form.Application) FieldErrors {
	errs := FieldErrors{}
	checkEnum(errs, "gender", string(app.Gender), genderValues)
	checkEnum(errs, "travelPurpose", string(app.TravelPurpose), purposeValues)
	checkEnum(errs, "employmentStatus", string(app.EmploymentStatus), employmentValues)
	checkEnum(errs, "educationLevel", string(app.EducationLevel), educationValues)
	checkEnum(errs, "formStatus", string(app.FormStatus), statusValues)
	checkDateFormat(errs, "dateOfBirth", app.DateOfBirth)
	checkDateFormat(errs, "passportIssuedDate", app.PassportIssuedDate)
	checkDateFormat(errs, "passportExpiryDate", app.PassportExpiryDate)
	checkDateFormat(errs, "intendedArrivalDate", app.IntendedArrivalDate)
	if app.PassportIssuedDate != "" && app.PassportExpiryDate != "" {
		issued, okIssued := ParseDate(app.PassportIssuedDate)
		expiry, okExpiry := ParseDate(app.PassportExpiryDate)
		if okIssued && okExpiry && !expiry.After(issued) {
			errs.add("passportExpiryDate", "Expiry date must be after issue date")
		}
	}
	if app.IntendedStayDuration < 0 {
		errs.add("intendedStayDuration", "Stay duration must be a positive number of days")
	}
	return errs
}

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// ParseDate parses a wire-format date, reporting whether it was valid.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	return t, err == nil
}

var (
	genderValues     = []string{"Male", "Female", "Other"}
	purposeValues    = []string{"TOURISM", "BUSINESS", "EDUCATION", "MEDICAL", "TRANSIT", "OTHER"}
	employmentValues = []string{"EMPLOYED", "SELF_EMPLOYED", "UNEMPLOYED", "STUDENT", "RETIRED", "HOMEMAKER", "OTHER"}
	educationValues  = []string{"LESS_THAN_HIGH_SCHOOL", "HIGH_SCHOOL", "VOCATIONAL_SCHOOL", "SOME_UNIVERSITY", "UNIVERSITY_DEGREE", "GRADUATE_DEGREE"}
	statusValues     = []string{"draft", "completed", "submitted"}
)

func checkEnum(errs FieldErrors, path, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, v := range allowed {
		if value == v {
			return
		}
	}
	errs.add(path, fmt.Sprintf("%q is not an allowed value", value))
}

func checkEmail(errs FieldErrors, path, value string) {
	if value == "" {
		return
	}
	if err := check.Var(value, "email"); err != nil {
		errs.add(path, "Email address is not valid")
	}
}

func checkDateFormat(errs FieldErrors, path, value string) {
	if value == "" {
		return
	}
	if _, ok := ParseDate(value); !ok {
		errs.add(path, "Date must use the format YYYY-MM-DD")
	}
}

func requireString(errs FieldErrors, path, value, msg string) {
	if value == "" {
		errs.add(path, msg)
	}
}

func requireDate(errs FieldErrors, path, value, msg string) {
	if value == "" {
		errs.add(path, msg)
		return
	}
	checkDateFormat(errs, path, value)
}
