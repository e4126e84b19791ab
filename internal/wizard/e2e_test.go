package wizard_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/visaquest/visaquest-go/internal/api/routes"
	"github.com/visaquest/visaquest-go/internal/domain/form"
	"github.com/visaquest/visaquest-go/internal/testutils"
	"github.com/visaquest/visaquest-go/internal/wizard"
	"github.com/visaquest/visaquest-go/pkg/client"
)

// The HTTP client is the production gateway implementation.
var _ wizard.Gateway = (*client.Client)(nil)

func startServer(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, testutils.SetupSQLite(t))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return client.New(srv.URL, srv.Client())
}

func ptr[T any](v T) *T { return &v }

func fillCompletely(w *wizard.Wizard) {
	usAddress := form.Address{Street: "12 Elm St", City: "Austin", State: "TX", ZipCode: "73301"}
	address := form.Address{Street: "3-1 Umeda", City: "Osaka", State: "Osaka", ZipCode: "530-0001", Country: "Japan"}
	w.Apply(form.ApplicationInput{
		LastName: ptr("Nakamura"), FirstName: ptr("Aiko"),
		Gender:      ptr(form.GenderFemale),
		DateOfBirth: ptr("1990-04-12"), CityOfBirth: ptr("Osaka"),
		CountryOfBirth: ptr("Japan"), Nationality: ptr("Japanese"),

		Email: ptr("aiko@example.com"), Phone: ptr("+81-90-1234-5678"),
		Address: &address,

		PassportNumber: ptr("TR1234567"), PassportIssuedCountry: ptr("Japan"),
		PassportIssuedDate: ptr("2020-01-15"), PassportExpiryDate: ptr("2030-01-14"),

		TravelPurpose:       ptr(form.PurposeTourism),
		IntendedArrivalDate: ptr("2026-10-01"), IntendedStayDuration: ptr(14),
		USContactInfo: &form.USContact{
			Name: "Dan Whitfield", Relationship: "Friend",
			Phone: "+1-512-555-0134", Address: usAddress,
		},

		EmploymentStatus: ptr(form.Student),
		EducationLevel:   ptr(form.UniversityDegree),
		Schools: &[]form.School{{
			Name: "Osaka University", Address: address,
			CourseOfStudy: "Economics", FromDate: "2008-04-01", ToDate: "2012-03-31",
		}},
	})
	w.SetPreviousTravel(false)
}

// Full round trip against a real server: debounced autosave creates the
// record, filling the remaining steps updates it, and submitting from the
// review step flips the stored status.
func TestWizardAgainstServer(t *testing.T) {
	c := startServer(t)
	ctx := context.Background()

	w := wizard.New(c, wizard.WithDebounce(time.Hour))
	w.Apply(form.ApplicationInput{LastName: ptr("Nakamura"), FirstName: ptr("Aiko")})
	w.Flush(ctx)

	id := w.ID()
	if id == uuid.Nil {
		t.Fatal("expected first flush to persist and capture an id")
	}
	stored, err := c.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.FormStatus != form.StatusDraft {
		t.Errorf("formStatus = %q, want draft", stored.FormStatus)
	}
	if stored.LastName != "Nakamura" {
		t.Errorf("lastName = %q", stored.LastName)
	}

	fillCompletely(w)
	w.Flush(ctx)

	if err := w.GoTo(8); err != nil {
		t.Fatalf("goto review: %v", err)
	}
	if errs := w.ValidateStep(); len(errs) != 0 {
		t.Fatalf("record should be complete, got %v", errs.Paths())
	}
	w.Certify(true)
	submitted, err := w.Submit(ctx)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if submitted.FormStatus != form.StatusSubmitted {
		t.Errorf("submit response status = %q", submitted.FormStatus)
	}

	stored, err = c.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after submit: %v", err)
	}
	if stored.FormStatus != form.StatusSubmitted {
		t.Errorf("stored status = %q, want submitted", stored.FormStatus)
	}
	if stored.USContactInfo.Name != "Dan Whitfield" {
		t.Errorf("nested contact lost: %+v", stored.USContactInfo)
	}
	if len(stored.Schools) != 1 || stored.Schools[0].Name != "Osaka University" {
		t.Errorf("schools lost: %+v", stored.Schools)
	}
}

// Resuming a session by id pulls the stored record back into the wizard.
func TestWizardResumesFromServer(t *testing.T) {
	c := startServer(t)
	ctx := context.Background()

	first := wizard.New(c, wizard.WithDebounce(time.Hour))
	first.Apply(form.ApplicationInput{LastName: ptr("Nakamura"), Email: ptr("aiko@example.com")})
	first.Flush(ctx)
	id := first.ID()
	if id == uuid.Nil {
		t.Fatal("expected id after flush")
	}

	second := wizard.New(c, wizard.WithDebounce(time.Hour))
	if err := second.Load(ctx, id); err != nil {
		t.Fatalf("load: %v", err)
	}
	snap := second.Snapshot()
	if snap.LastName != "Nakamura" || snap.Email != "aiko@example.com" {
		t.Errorf("resumed snapshot = %+v", snap)
	}
	if second.ID() != id {
		t.Errorf("resumed id = %v, want %v", second.ID(), id)
	}

	if err := c.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := second.Load(ctx, id); err == nil {
		t.Fatal("expected load of deleted application to fail")
	}
}
