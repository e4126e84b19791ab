// Package review projects the accumulated application record into the
// read-only summary shown on the final wizard step. It performs no
// persistence; the certification gate lives on the wizard.
package review

import (
	"fmt"
	"strings"

	"github.com/visaquest/visaquest-go/internal/domain/form"
	"github.com/visaquest/visaquest-go/internal/domain/form/validate"
)

// NotProvided is the fallback text for any unset field.
const NotProvided = "Not provided"

type Item struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Summarize renders the record grouped by the eight data sections, in wizard
// order. Dates use the en-US short form; missing values come back as
// "Not provided" rather than empty strings.
func Summarize(app form.Application) []Section {
	return []Section{
		{validate.Personal.Title(), personal(app)},
		{validate.Contact.Title(), contact(app)},
		{validate.Passport.Title(), passport(app)},
		{validate.Travel.Title(), travel(app)},
		{validate.PreviousTravel.Title(), previousTravel(app)},
		{validate.Employment.Title(), employment(app)},
		{validate.Education.Title(), education(app)},
		{validate.Security.Title(), security(app)},
	}
}

func personal(app form.Application) []Item {
	fullName := NotProvided
	if app.LastName != "" || app.FirstName != "" {
		fullName = strings.TrimSpace(fmt.Sprintf("%s, %s %s", app.LastName, app.FirstName, app.MiddleName))
	}
	return []Item{
		{"Full Name", fullName},
		{"Gender", orNotProvided(string(app.Gender))},
		{"Date of Birth", formatDate(app.DateOfBirth)},
		{"Place of Birth", joinNonEmpty(", ", app.CityOfBirth, app.CountryOfBirth)},
		{"Nationality", orNotProvided(app.Nationality)},
	}
}

func contact(app form.Application) []Item {
	return []Item{
		{"Email", orNotProvided(app.Email)},
		{"Phone", orNotProvided(app.Phone)},
		{"Address", formatAddress(app.Address)},
	}
}

func passport(app form.Application) []Item {
	return []Item{
		{"Passport Number", orNotProvided(app.PassportNumber)},
		{"Issuing Country", orNotProvided(app.PassportIssuedCountry)},
		{"Date of Issue", formatDate(app.PassportIssuedDate)},
		{"Date of Expiry", formatDate(app.PassportExpiryDate)},
	}
}

func travel(app form.Application) []Item {
	duration := NotProvided
	if app.IntendedStayDuration > 0 {
		duration = fmt.Sprintf("%d days", app.IntendedStayDuration)
	}
	contact := app.USContactInfo
	items := []Item{
		{"Purpose of Travel", orNotProvided(string(app.TravelPurpose))},
		{"Intended Arrival Date", formatDate(app.IntendedArrivalDate)},
		{"Intended Stay Duration", duration},
		{"U.S. Contact", orNotProvided(contact.Name)},
		{"Contact Relationship", orNotProvided(contact.Relationship)},
		{"Contact Organization", orNotProvided(contact.Organization)},
		{"Contact Phone", orNotProvided(contact.Phone)},
		{"Contact Email", orNotProvided(contact.Email)},
		{"Contact Address", formatAddress(contact.Address)},
	}
	return items
}

func previousTravel(app form.Application) []Item {
	if !app.PreviousUSTravel {
		return []Item{{"Previous U.S. Travel", "No"}}
	}
	items := []Item{{"Previous U.S. Travel", "Yes"}}
	for i, visit := range app.PreviousUSTravelDetails {
		items = append(items, Item{
			Label: fmt.Sprintf("Visit %d", i+1),
			Value: fmt.Sprintf("%s to %s (%d days)",
				formatDate(visit.ArrivalDate), formatDate(visit.DepartureDate), visit.LengthOfStay),
		})
	}
	return items
}

func employment(app form.Application) []Item {
	items := []Item{
		{"Employment Status", orNotProvided(string(app.EmploymentStatus))},
	}
	if app.EmploymentStatus.RequiresEmployer() {
		items = append(items,
			Item{"Employer", orNotProvided(app.Employer.Name)},
			Item{"Employer Phone", orNotProvided(app.Employer.Phone)},
			Item{"Employer Address", formatAddress(app.Employer.Address)},
		)
	}
	return items
}

func education(app form.Application) []Item {
	items := []Item{
		{"Education Level", orNotProvided(string(app.EducationLevel))},
	}
	for i, school := range app.Schools {
		items = append(items, Item{
			Label: fmt.Sprintf("School %d", i+1),
			Value: fmt.Sprintf("%s, %s (%s to %s)",
				orNotProvided(school.Name), orNotProvided(school.CourseOfStudy),
				formatDate(school.FromDate), formatDate(school.ToDate)),
		})
	}
	return items
}

func security(app form.Application) []Item {
	items := []Item{
		{"Criminal Offense", yesNo(app.SecurityQuestions.CriminalOffense)},
		{"Drug Offense", yesNo(app.SecurityQuestions.DrugOffense)},
		{"Terrorism", yesNo(app.SecurityQuestions.Terrorism)},
		{"Visa Fraud", yesNo(app.SecurityQuestions.VisaFraud)},
	}
	if app.SecurityQuestions.AnyYes() {
		items = append(items, Item{"Explanations", orNotProvided(app.SecurityQuestions.Explanations)})
	}
	return items
}

// formatDate renders a wire-format date the way Intl.DateTimeFormat('en-US')
// does: no leading zeros, month first.
func formatDate(s string) string {
	t, ok := validate.ParseDate(s)
	if !ok {
		return NotProvided
	}
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

func formatAddress(addr form.Address) string {
	return joinNonEmpty(", ", addr.Street, addr.City, joinNonEmpty(" ", addr.State, addr.ZipCode), addr.Country)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return NotProvided
	}
	return strings.Join(kept, sep)
}

func orNotProvided(s string) string {
	if s == "" {
		return NotProvided
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
