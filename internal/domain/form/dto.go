package form

// ApplicationInput is the partial-update payload shared by the create and
// update endpoints and by the wizard's merge step. Every top-level field is
// optional; a present field replaces the stored value wholesale, including
// nested blocks, which are never deep-merged.
//
// There are deliberately no binding tags here: clients post whole snapshots
// where unset fields arrive as empty strings, so value validation happens
// after the merge, against the merged record.
type ApplicationInput struct {
	LastName       *string `json:"lastName"`
	FirstName      *string `json:"firstName"`
	MiddleName     *string `json:"middleName"`
	Gender         *Gender `json:"gender"`
	DateOfBirth    *string `json:"dateOfBirth"`
	CityOfBirth    *string `json:"cityOfBirth"`
	CountryOfBirth *string `json:"countryOfBirth"`
	Nationality    *string `json:"nationality"`

	Email   *string  `json:"email"`
	Phone   *string  `json:"phone"`
	Address *Address `json:"address"`

	PassportNumber        *string `json:"passportNumber"`
	PassportIssuedCountry *string `json:"passportIssuedCountry"`
	PassportIssuedDate    *string `json:"passportIssuedDate"`
	PassportExpiryDate    *string `json:"passportExpiryDate"`

	TravelPurpose        *TravelPurpose `json:"travelPurpose"`
	IntendedArrivalDate  *string        `json:"intendedArrivalDate"`
	IntendedStayDuration *int           `json:"intendedStayDuration"`
	USContactInfo        *USContact     `json:"usContactInfo"`

	PreviousUSTravel        *bool    `json:"previousUSTravel"`
	PreviousUSTravelDetails *[]Visit `json:"previousUSTravelDetails"`

	EmploymentStatus *EmploymentStatus `json:"employmentStatus"`
	Employer         *Employer         `json:"employer"`

	EducationLevel *EducationLevel `json:"educationLevel"`
	Schools        *[]School       `json:"schools"`

	SecurityQuestions *SecurityQuestions `json:"securityQuestions"`

	FormStatus *Status `json:"formStatus"`
}

// SnapshotInput converts a full record into an input carrying every
// top-level field, the shape a client produces when it posts its whole
// working copy rather than a delta.
func SnapshotInput(app Application) ApplicationInput {
	schools := []School(app.Schools)
	visits := []Visit(app.PreviousUSTravelDetails)
	return ApplicationInput{
		LastName:       &app.LastName,
		FirstName:      &app.FirstName,
		MiddleName:     &app.MiddleName,
		Gender:         &app.Gender,
		DateOfBirth:    &app.DateOfBirth,
		CityOfBirth:    &app.CityOfBirth,
		CountryOfBirth: &app.CountryOfBirth,
		Nationality:    &app.Nationality,

		Email:   &app.Email,
		Phone:   &app.Phone,
		Address: &app.Address,

		PassportNumber:        &app.PassportNumber,
		PassportIssuedCountry: &app.PassportIssuedCountry,
		PassportIssuedDate:    &app.PassportIssuedDate,
		PassportExpiryDate:    &app.PassportExpiryDate,

		TravelPurpose:        &app.TravelPurpose,
		IntendedArrivalDate:  &app.IntendedArrivalDate,
		IntendedStayDuration: &app.IntendedStayDuration,
		USContactInfo:        &app.USContactInfo,

		PreviousUSTravel:        &app.PreviousUSTravel,
		PreviousUSTravelDetails: &visits,

		EmploymentStatus: &app.EmploymentStatus,
		Employer:         &app.Employer,

		EducationLevel: &app.EducationLevel,
		Schools:        &schools,

		SecurityQuestions: &app.SecurityQuestions,

		FormStatus: &app.FormStatus,
	}
}

// ApplyTo shallow-merges the input into app: only fields present in the
// payload are touched, each one overwriting the stored top-level value.
func (in ApplicationInput) ApplyTo(app *Application) {
	if in.LastName != nil {
		app.LastName = *in.LastName
	}
	if in.FirstName != nil {
		app.FirstName = *in.FirstName
	}
	if in.MiddleName != nil {
		app.MiddleName = *in.MiddleName
	}
	if in.Gender != nil {
		app.Gender = *in.Gender
	}
	if in.DateOfBirth != nil {
		app.DateOfBirth = *in.DateOfBirth
	}
	if in.CityOfBirth != nil {
		app.CityOfBirth = *in.CityOfBirth
	}
	if in.CountryOfBirth != nil {
		app.CountryOfBirth = *in.CountryOfBirth
	}
	if in.Nationality != nil {
		app.Nationality = *in.Nationality
	}
	if in.Email != nil {
		app.Email = *in.Email
	}
	if in.Phone != nil {
		app.Phone = *in.Phone
	}
	if in.Address != nil {
		app.Address = *in.Address
	}
	if in.PassportNumber != nil {
		app.PassportNumber = *in.PassportNumber
	}
	if in.PassportIssuedCountry != nil {
		app.PassportIssuedCountry = *in.PassportIssuedCountry
	}
	if in.PassportIssuedDate != nil {
		app.PassportIssuedDate = *in.PassportIssuedDate
	}
	if in.PassportExpiryDate != nil {
		app.PassportExpiryDate = *in.PassportExpiryDate
	}
	if in.TravelPurpose != nil {
		app.TravelPurpose = *in.TravelPurpose
	}
	if in.IntendedArrivalDate != nil {
		app.IntendedArrivalDate = *in.IntendedArrivalDate
	}
	if in.IntendedStayDuration != nil {
		app.IntendedStayDuration = *in.IntendedStayDuration
	}
	if in.USContactInfo != nil {
		app.USContactInfo = *in.USContactInfo
	}
	if in.PreviousUSTravel != nil {
		app.PreviousUSTravel = *in.PreviousUSTravel
	}
	if in.PreviousUSTravelDetails != nil {
		app.PreviousUSTravelDetails = *in.PreviousUSTravelDetails
	}
	if in.EmploymentStatus != nil {
		app.EmploymentStatus = *in.EmploymentStatus
	}
	if in.Employer != nil {
		app.Employer = *in.Employer
	}
	if in.EducationLevel != nil {
		app.EducationLevel = *in.EducationLevel
	}
	if in.Schools != nil {
		app.Schools = *in.Schools
	}
	if in.SecurityQuestions != nil {
		app.SecurityQuestions = *in.SecurityQuestions
	}
	if in.FormStatus != nil {
		app.FormStatus = *in.FormStatus
	}
}
