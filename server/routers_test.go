package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	interestdirectory "github.com/havendogs/api-server/internal/domains/interests/adapters/listings"
	interestmemory "github.com/havendogs/api-server/internal/domains/interests/adapters/memory"
	interestnotifications "github.com/havendogs/api-server/internal/domains/interests/adapters/notifications"
	interestworkflows "github.com/havendogs/api-server/internal/domains/interests/adapters/workflows"
	interestsapp "github.com/havendogs/api-server/internal/domains/interests/application"

	boardingmemory "github.com/havendogs/api-server/internal/domains/boarding/adapters/memory"
	boardingapp "github.com/havendogs/api-server/internal/domains/boarding/application"

	listingmemory "github.com/havendogs/api-server/internal/domains/listings/adapters/memory"
	listingsapp "github.com/havendogs/api-server/internal/domains/listings/application"

	usermemory "github.com/havendogs/api-server/internal/domains/users/adapters/memory"
	usersapp "github.com/havendogs/api-server/internal/domains/users/application"

	"github.com/havendogs/api-server/internal/platform/token"
)

type fixture struct {
	router   *gin.Engine
	notifier *interestnotifications.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := token.NewService("test-secret")
	require.NoError(t, err)

	listingService := listingsapp.NewService(listingmemory.NewRepository())
	notifier := interestnotifications.NewRecorder()
	interestService := interestsapp.NewService(
		interestmemory.NewRepository(),
		interestdirectory.NewDirectory(listingService),
		interestworkflows.NewInlineDispatcher(notifier),
	)
	boardingService := boardingapp.NewService(boardingmemory.NewRepository())
	userService := usersapp.NewService(usermemory.NewRepository(), tokens)

	handlers := ApiHandleFunctions{
		InterestAPI: NewInterestAPI(interestService),
		AdoptionAPI: NewAdoptionAPI(listingService),
		BoardingAPI: NewBoardingAPI(boardingService),
		AuthAPI:     NewAuthAPI(userService),
	}
	return &fixture{router: NewRouter(handlers, tokens), notifier: notifier}
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return payload
}

func (f *fixture) register(t *testing.T, email string) string {
	t.Helper()
	recorder := f.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"firstName": "Jamie",
		"lastName":  "Doe",
		"email":     email,
		"password":  "secret123",
		"userType":  "petOwner",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	return decode(t, recorder)["token"].(string)
}

func (f *fixture) createListing(t *testing.T, token string) string {
	t.Helper()
	recorder := f.do(t, http.MethodPost, "/api/adoptions", token, map[string]any{
		"name":        "Bella",
		"breed":       "Labrador",
		"age":         3,
		"location":    "Lisboa",
		"imageUrl":    "https://example.com/bella.jpg",
		"description": "Friendly and house-trained",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	return decode(t, recorder)["id"].(string)
}

func interestBody(petID string) map[string]any {
	return map[string]any{
		"petId":                      petID,
		"fullName":                   "Jamie Doe",
		"phoneNumber":                "+351 912 345 678",
		"emailAddress":               "jamie@example.com",
		"homeAddress":                "Rua das Flores 12, Lisboa",
		"occupation":                 "nurse",
		"workSchedule":               "9-5",
		"accommodationType":          "apartment",
		"ownershipType":              "own",
		"fencedYard":                 "no",
		"householdMembers":           "2 adults",
		"ownedDogBefore":             "no",
		"currentlyHavePets":          "no",
		"adoptionReason":             "Looking for a companion",
		"primaryCaregiver":           "myself",
		"hoursAloneDaily":            "5",
		"sleepingLocation":           "inside-house",
		"travelManagement":           "pet sitter",
		"lifetimeCommitment":         "yes",
		"willingToVaccinate":         "yes",
		"willingToProvideVetCare":    "yes",
		"willingToUseFleaPrevention": "yes",
		"willingToSterilize":         "yes",
		"financiallyPrepared":        []string{"food", "vet-bills"},
		"openToFosterToAdopt":        "yes",
		"agreeNotToRehome":           "yes",
		"willReturnToShelter":        "yes",
		"confirmInformationAccurate": true,
		"understandSelectiveProcess": true,
		"agreeToHomeCheck":           true,
		"agreeToAdoptionContract":    true,
	}
}

func TestWelcome(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(t, http.MethodGet, "/", "", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "Welcome to HavenDogs API", decode(t, recorder)["message"])
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"firstName": "Jamie",
		"lastName":  "Doe",
		"email":     "jamie@example.com",
		"password":  "secret123",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	payload := decode(t, recorder)
	require.Equal(t, "User registered successfully", payload["message"])
	require.NotEmpty(t, payload["token"])
	user := payload["user"].(map[string]any)
	require.Equal(t, "jamie@example.com", user["email"])
	require.NotContains(t, user, "passwordHash")

	recorder = f.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "jamie@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotEmpty(t, decode(t, recorder)["token"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.register(t, "jamie@example.com")

	recorder := f.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"firstName": "Other",
		"lastName":  "Doe",
		"email":     "jamie@example.com",
		"password":  "secret123",
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, "User already exists", decode(t, recorder)["detail"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newFixture(t)
	f.register(t, "jamie@example.com")

	recorder := f.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "jamie@example.com",
		"password": "wrong",
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, "Invalid credentials", decode(t, recorder)["detail"])
}

func TestCreateListing_RequiresToken(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(t, http.MethodPost, "/api/adoptions", "", map[string]any{"name": "Bella"})
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	require.Equal(t, "No token provided", decode(t, recorder)["detail"])

	recorder = f.do(t, http.MethodPost, "/api/adoptions", "garbage", map[string]any{"name": "Bella"})
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	require.Equal(t, "Invalid token", decode(t, recorder)["detail"])
}

func TestCreateListing_RecordsAuthenticatedPoster(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "owner@example.com")

	recorder := f.do(t, http.MethodPost, "/api/adoptions", token, map[string]any{
		"name":     "Bella",
		"breed":    "Labrador",
		"age":      3,
		"location": "Lisboa",
		"imageUrl": "https://example.com/bella.jpg",
	})

	require.Equal(t, http.StatusCreated, recorder.Code)
	payload := decode(t, recorder)
	require.Equal(t, "available", payload["status"])
	require.NotEmpty(t, payload["postedBy"])
}

func TestListingSearchRoutes(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "owner@example.com")
	f.createListing(t, token)

	recorder := f.do(t, http.MethodGet, "/api/adoptions/location/lisb", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var byLocation []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &byLocation))
	require.Len(t, byLocation, 1)

	recorder = f.do(t, http.MethodGet, "/api/adoptions/breed/poodle", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var byBreed []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &byBreed))
	require.Empty(t, byBreed)
}

func TestDeleteListing(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "owner@example.com")
	listingID := f.createListing(t, token)

	recorder := f.do(t, http.MethodDelete, "/api/adoptions/"+listingID, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "Pet listing deleted successfully", decode(t, recorder)["message"])

	recorder = f.do(t, http.MethodGet, "/api/adoptions/"+listingID, "", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	require.Equal(t, "Pet listing not found", decode(t, recorder)["detail"])
}

func TestExpressInterest(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "owner@example.com")
	listingID := f.createListing(t, token)

	recorder := f.do(t, http.MethodPost, "/api/interests", "", interestBody(listingID))

	require.Equal(t, http.StatusCreated, recorder.Code)
	payload := decode(t, recorder)
	require.Equal(t, "Interest expressed successfully", payload["message"])
	interest := payload["interest"].(map[string]any)
	require.Equal(t, "pending", interest["status"])
	require.Equal(t, "Bella", interest["petApplyingFor"])
	require.NotContains(t, interest, "petOwnershipAllowed")
}

func TestExpressInterest_NumericHours(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "owner@example.com")
	listingID := f.createListing(t, token)

	body := interestBody(listingID)
	body["hoursAloneDaily"] = 5
	recorder := f.do(t, http.MethodPost, "/api/interests", "", body)

	require.Equal(t, http.StatusCreated, recorder.Code)
}

func TestExpressInterest_UnknownPet(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(t, http.MethodPost, "/api/interests", "", interestBody("missing"))

	require.Equal(t, http.StatusNotFound, recorder.Code)
	require.Equal(t, "Pet not found", decode(t, recorder)["detail"])
}

func TestExpressInterest_ValidationProblem(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "owner@example.com")
	listingID := f.createListing(t, token)

	body := interestBody(listingID)
	body["fullName"] = ""
	body["hoursAloneDaily"] = "30"
	recorder := f.do(t, http.MethodPost, "/api/interests", "", body)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	payload := decode(t, recorder)
	fields := payload["extensions"].(map[string]any)["fields"].(map[string]any)
	require.Contains(t, fields, "fullName")
	require.Contains(t, fields, "hoursAloneDaily")
}

func TestUpdateInterestStatus_NotifiesApplicant(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "owner@example.com")
	listingID := f.createListing(t, token)

	recorder := f.do(t, http.MethodPost, "/api/interests", "", interestBody(listingID))
	require.Equal(t, http.StatusCreated, recorder.Code)
	interestID := decode(t, recorder)["interest"].(map[string]any)["id"].(string)

	recorder = f.do(t, http.MethodPut, "/api/interests/"+interestID+"/status", token, map[string]any{"status": "approved"})
	require.Equal(t, http.StatusOK, recorder.Code)
	payload := decode(t, recorder)
	require.Equal(t, "Interest status updated successfully", payload["message"])
	require.Equal(t, "approved", payload["interest"].(map[string]any)["status"])

	sent := f.notifier.Sent()
	require.Len(t, sent, 1)
	require.Equal(t, "jamie@example.com", sent[0].To)
	require.Equal(t, "approved", sent[0].Status)
}

func TestUpdateInterestStatus_RequiresToken(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(t, http.MethodPut, "/api/interests/any/status", "", map[string]any{"status": "approved"})
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestBoardingFlow(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "owner@example.com")

	recorder := f.do(t, http.MethodPost, "/api/boarding", "", map[string]any{
		"owner": map[string]any{"name": "Jamie Doe", "email": "jamie@example.com", "phone": "+351 912 345 678"},
		"pet":   map[string]any{"name": "Bella", "age": 3, "breed": "Labrador"},
		"emergency_contact": map[string]any{"name": "Alex Doe", "phone": "+351 913 000 000"},
		"boarding": map[string]any{
			"startDate": "2026-09-01T00:00:00Z",
			"endDate":   "2026-09-08T00:00:00Z",
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	payload := decode(t, recorder)
	require.Equal(t, "Boarding submission created successfully", payload["message"])
	submission := payload["submission"].(map[string]any)
	require.Equal(t, "pending", submission["status"])
	submissionID := submission["id"].(string)

	recorder = f.do(t, http.MethodPatch, "/api/boarding/"+submissionID+"/status", token, map[string]any{"status": "approved"})
	require.Equal(t, http.StatusOK, recorder.Code)
	payload = decode(t, recorder)
	require.Equal(t, "Boarding status updated successfully", payload["message"])
	require.Equal(t, "approved", payload["submission"].(map[string]any)["status"])
}

func TestBoarding_ValidationProblem(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(t, http.MethodPost, "/api/boarding", "", map[string]any{
		"owner": map[string]any{"name": "Jamie Doe"},
		"pet":   map[string]any{"name": "Bella"},
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	fields := decode(t, recorder)["extensions"].(map[string]any)["fields"].(map[string]any)
	require.Contains(t, fields, "owner.email")
	require.Contains(t, fields, "pet.breed")
}

func TestBoardingAvailability(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "boarder@example.com")

	recorder := f.do(t, http.MethodPut, "/api/auth/boarding-availability", token, map[string]any{
		"isBoardingAvailable": true,
		"boardingFee":         25,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	payload := decode(t, recorder)
	require.Equal(t, "Boarding availability updated successfully", payload["message"])
	require.Equal(t, true, payload["isBoardingAvailable"])

	recorder = f.do(t, http.MethodGet, "/api/auth/boarders", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var boarders []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &boarders))
	require.Len(t, boarders, 1)
	require.Equal(t, "boarder@example.com", boarders[0]["email"])
	require.NotContains(t, boarders[0], "passwordHash")
}
