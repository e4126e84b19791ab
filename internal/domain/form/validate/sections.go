package validate

import (
	"fmt"

	"github.com/visaquest/visaquest-go/internal/domain/form"
)

func personalInfo(app form.Application) FieldErrors {
	errs := FieldErrors{}
	requireString(errs, "lastName", app.LastName, "Last name is required")
	requireString(errs, "firstName", app.FirstName, "First name is required")
	if app.Gender == "" {
		errs.add("gender", "Gender is required")
	} else {
		checkEnum(errs, "gender", string(app.Gender), genderValues)
	}
	requireDate(errs, "dateOfBirth", app.DateOfBirth, "Date of birth is required")
	requireString(errs, "cityOfBirth", app.CityOfBirth, "City of birth is required")
	requireString(errs, "countryOfBirth", app.CountryOfBirth, "Country of birth is required")
	requireString(errs, "nationality", app.Nationality, "Nationality is required")
	return errs
}

func contactInfo(app form.Application) FieldErrors {
	errs := FieldErrors{}
	if app.Email == "" {
		errs.add("email", "Email is required")
	} else {
		checkEmail(errs, "email", app.Email)
	}
	requireString(errs, "phone", app.Phone, "Phone number is required")
	requireAddress(errs, "address", app.Address, true)
	return errs
}

func passportInfo(app form.Application) FieldErrors {
	errs := FieldErrors{}
	requireString(errs, "passportNumber", app.PassportNumber, "Passport number is required")
	requireString(errs, "passportIssuedCountry", app.PassportIssuedCountry, "Issuing country is required")
	requireDate(errs, "passportIssuedDate", app.PassportIssuedDate, "Issue date is required")
	requireDate(errs, "passportExpiryDate", app.PassportExpiryDate, "Expiry date is required")

	issued, okIssued := ParseDate(app.PassportIssuedDate)
	expiry, okExpiry := ParseDate(app.PassportExpiryDate)
	if okIssued && okExpiry && !expiry.After(issued) {
		errs.add("passportExpiryDate", "Expiry date must be after issue date")
	}
	return errs
}

func travelInfo(app form.Application) FieldErrors {
	errs := FieldErrors{}
	if app.TravelPurpose == "" {
		errs.add("travelPurpose", "Purpose of travel is required")
	} else {
		checkEnum(errs, "travelPurpose", string(app.TravelPurpose), purposeValues)
	}
	requireDate(errs, "intendedArrivalDate", app.IntendedArrivalDate, "Intended arrival date is required")
	if app.IntendedStayDuration < 1 {
		errs.add("intendedStayDuration", "Stay duration must be at least 1 day")
	}

	contact := app.USContactInfo
	requireString(errs, "usContactInfo.name", contact.Name, "Contact name is required")
	requireString(errs, "usContactInfo.relationship", contact.Relationship, "Relationship is required")
	requireString(errs, "usContactInfo.phone", contact.Phone, "Contact phone is required")
	checkEmail(errs, "usContactInfo.email", contact.Email)
	// Point-of-contact address is domestic; no country field to require.
	requireString(errs, "usContactInfo.address.street", contact.Address.Street, "Street is required")
	requireString(errs, "usContactInfo.address.city", contact.Address.City, "City is required")
	requireString(errs, "usContactInfo.address.state", contact.Address.State, "State is required")
	requireString(errs, "usContactInfo.address.zipCode", contact.Address.ZipCode, "Zip code is required")
	return errs
}

func previousTravel(app form.Application) FieldErrors {
	errs := FieldErrors{}
	if !app.PreviousUSTravel {
		if len(app.PreviousUSTravelDetails) != 0 {
			errs.add("previousUSTravelDetails", "Visit list must be empty when no previous travel is declared")
		}
		return errs
	}
	if len(app.PreviousUSTravelDetails) == 0 {
		errs.add("previousUSTravelDetails", "At least one previous visit is required")
		return errs
	}
	for i, visit := range app.PreviousUSTravelDetails {
		prefix := fmt.Sprintf("previousUSTravelDetails[%d]", i)
		requireDate(errs, prefix+".arrivalDate", visit.ArrivalDate, "Arrival date is required")
		requireDate(errs, prefix+".departureDate", visit.DepartureDate, "Departure date is required")
		if visit.LengthOfStay < 1 {
			errs.add(prefix+".lengthOfStay", "Length of stay must be at least 1 day")
		}
	}
	return errs
}

func employmentInfo(app form.Application) FieldErrors {
	errs := FieldErrors{}
	if app.EmploymentStatus == "" {
		errs.add("employmentStatus", "Employment status is required")
		return errs
	}
	checkEnum(errs, "employmentStatus", string(app.EmploymentStatus), employmentValues)
	if !app.EmploymentStatus.RequiresEmployer() {
		return errs
	}
	requireString(errs, "employer.name", app.Employer.Name, "Employer name is required")
	requireString(errs, "employer.phone", app.Employer.Phone, "Employer phone is required")
	requireAddress(errs, "employer.address", app.Employer.Address, true)
	return errs
}

func educationInfo(app form.Application) FieldErrors {
	errs := FieldErrors{}
	if app.EducationLevel == "" {
		errs.add("educationLevel", "Education level is required")
	} else {
		checkEnum(errs, "educationLevel", string(app.EducationLevel), educationValues)
	}
	if len(app.Schools) == 0 {
		errs.add("schools", "At least one school is required")
		return errs
	}
	for i, school := range app.Schools {
		prefix := fmt.Sprintf("schools[%d]", i)
		requireString(errs, prefix+".name", school.Name, "School name is required")
		requireString(errs, prefix+".courseOfStudy", school.CourseOfStudy, "Course of study is required")
		requireDate(errs, prefix+".fromDate", school.FromDate, "Start date is required")
		requireDate(errs, prefix+".toDate", school.ToDate, "End date is required")
		requireAddress(errs, prefix+".address", school.Address, true)
	}
	return errs
}

func securityQuestions(app form.Application) FieldErrors {
	errs := FieldErrors{}
	if app.SecurityQuestions.AnyYes() && app.SecurityQuestions.Explanations == "" {
		errs.add("securityQuestions.explanations", "An explanation is required when any answer is yes")
	}
	return errs
}

func requireAddress(errs FieldErrors, prefix string, addr form.Address, withCountry bool) {
	requireString(errs, prefix+".street", addr.Street, "Street is required")
	requireString(errs, prefix+".city", addr.City, "City is required")
	requireString(errs, prefix+".state", addr.State, "State is required")
	requireString(errs, prefix+".zipCode", addr.ZipCode, "Zip code is required")
	if withCountry {
		requireString(errs, prefix+".country", addr.Country, "Country is required")
	}
}
