package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"solotrip/internal/api"
	"solotrip/internal/api/controllers"
	"solotrip/internal/infra"
	"solotrip/internal/models/db_models"
	"solotrip/internal/realtime"
	"solotrip/internal/repositories"
	"solotrip/internal/services"
	"solotrip/pkg/llm"
	"solotrip/pkg/logger"
	mem "solotrip/pkg/memcache"
	"solotrip/pkg/places"
	"solotrip/pkg/utils"
)

const oneDayGoa = `{"destination":"Goa","days":1,"totalCost":3000,"currency":"₹","aiTip":"Rent a scooter.",
"plans":[{"day":1,"theme":"Beaches","totalCost":3000,"places":[
{"name":"Baga Beach","category":"Nature","description":"Sand","cost":0,"duration":3,"image_query":"beach","coordinates":{"lat":15.55,"lng":73.75}}]}]}`

type fixedProvider struct{ out string }

func (f fixedProvider) Name() string { return "fixed" }

func (f fixedProvider) Generate(context.Context, string) (string, error) { return f.out, nil }

type failingProvider struct{}

func (failingProvider) Name() string { return "failing" }

func (failingProvider) Generate(context.Context, string) (string, error) {
	return "", errors.New("rate limited")
}

// failingInserts rejects every insert and delegates the rest.
type failingInserts struct {
	repositories.TripRepository
}

func (failingInserts) Insert(context.Context, *db_models.Trip) error {
	return errors.New("connection reset")
}

type serverOptions struct {
	providers         []llm.Provider
	failGeneratedSave bool
}

type serverOption func(*serverOptions)

func withProviders(providers ...llm.Provider) serverOption {
	return func(o *serverOptions) { o.providers = providers }
}

func withFailingGeneratedSave() serverOption {
	return func(o *serverOptions) { o.failGeneratedSave = true }
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
	Details []string        `json:"details"`
}

type testServer struct {
	router *gin.Engine
	token  string
}

func newTestServer(t *testing.T, placesHandler http.HandlerFunc, opts ...serverOption) *testServer {
	t.Helper()
	o := serverOptions{providers: []llm.Provider{fixedProvider{out: oneDayGoa}}}
	for _, opt := range opts {
		opt(&o)
	}
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, infra.AutoMigrate(db))

	placesSrv := httptest.NewServer(placesHandler)
	t.Cleanup(placesSrv.Close)
	placesClient := places.NewClientWithURL(placesSrv.URL, "KEY")

	hub := realtime.NewHub(log)
	go hub.Run()
	t.Cleanup(hub.Stop)
	notifier := realtime.NewNotifier(realtime.NewLocalBus(), hub)
	require.NoError(t, notifier.Start(context.Background()))

	jwtManager := utils.NewJWTManager("router-secret", time.Hour)
	denylist := mem.NewRevokedTokens()
	chain := llm.NewChain(o.providers, time.Second, log)
	trips := repositories.NewTripRepository(db)
	generatedTrips := trips
	if o.failGeneratedSave {
		generatedTrips = failingInserts{TripRepository: trips}
	}

	commentService := services.NewCommentService(repositories.NewCommentRepository(db), notifier, log)
	itinerary := services.NewItineraryService(
		services.NewGroundingService(placesClient, log),
		services.NewGenerationService(chain, log),
		services.NewPostProcessor(places.NewClient("KEY")),
		generatedTrips, 5*time.Second, log)

	router := api.NewRouter(api.RouterParams{
		ClientOrigin: "*",
		JWT:          jwtManager,
		Denylist:     denylist,
		Log:          log,
		Health:       controllers.NewHealthController(),
		Account:      controllers.NewAccountController(services.NewAccountService(repositories.NewAccountRepository(db), jwtManager, denylist, log), log),
		Itinerary:    controllers.NewItineraryController(itinerary, services.NewDeepDiveService(chain, nil, log), log),
		Trips:        controllers.NewTripController(services.NewTripService(trips, log), log),
		Community:    controllers.NewCommunityController(services.NewExperienceService(repositories.NewExperienceRepository(db), log), commentService, log),
		Places:       controllers.NewPlacesController(placesClient, log),
		Socket:       controllers.NewSocketController(hub, commentService, "*", log),
	})
	return &testServer{router: router}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func (s *testServer) signUp(t *testing.T, name, email string) {
	t.Helper()
	w, env := s.do(t, http.MethodPost, "/api/auth/register", map[string]any{"name": name, "email": email, "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	s.token = auth.Token
}

var goaRequest = map[string]any{
	"destination": "Goa", "days": 1, "interests": []string{"Nature"}, "budget": 5000, "safetyMode": true,
}

func okPlaces(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.URL.Path == "/places:autocomplete" {
		_, _ = w.Write([]byte(`{"suggestions":[{"placePrediction":{"placeId":"p1","text":{"text":"Goa, India"}}}]}`))
		return
	}
	_, _ = w.Write([]byte(`{"places":[{"displayName":{"text":"Baga Beach"},"photos":[{"name":"places/baga/photos/1"}]}]}`))
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t, okPlaces)

	w, _ := s.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, controllers.Banner, w.Body.String())

	w, _ = s.do(t, http.MethodGet, "/health", nil)
	assert.JSONEq(t, `{"status":"ok","socket":true,"auth":true}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func TestRouter_AuthAndTripLifecycle(t *testing.T) {
	s := newTestServer(t, okPlaces)

	w, _ := s.do(t, http.MethodPost, "/api/itinerary/generate", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := s.do(t, http.MethodPost, "/api/auth/register", map[string]any{"name": "Asha", "email": "asha@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var auth struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	assert.Equal(t, "asha@example.com", auth.User.Email)

	w, env = s.do(t, http.MethodPost, "/api/auth/register", map[string]any{"name": "Asha", "email": "asha@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", env.Message)

	w, env = s.do(t, http.MethodPost, "/api/auth/login", map[string]any{"email": "asha@example.com", "password": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid credentials", env.Message)

	s.token = auth.Token

	w, env = s.do(t, http.MethodPost, "/api/itinerary/generate", map[string]any{"destination": "Goa", "days": 0, "interests": []string{}, "budget": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, env.Details, 3)

	w, env = s.do(t, http.MethodPost, "/api/itinerary/generate", map[string]any{
		"destination": "Goa", "days": 1, "interests": []string{"Nature"}, "budget": 5000, "safetyMode": false,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var trip struct {
		ID      string `json:"id"`
		Country string `json:"country"`
		Plans   []struct {
			Places []struct {
				Image   string `json:"image"`
				MapsURL string `json:"mapsUrl"`
			} `json:"places"`
		} `json:"plans"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &trip))
	assert.Equal(t, "Verified", trip.Country)
	assert.Contains(t, trip.Plans[0].Places[0].Image, "places/baga/photos/1/media?key=KEY")
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Baga%20Beach", trip.Plans[0].Places[0].MapsURL)

	w, env = s.do(t, http.MethodGet, "/api/trips/check?city=Goa&days=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"exists":true`)

	w, _ = s.do(t, http.MethodGet, "/api/trips/check?city=Goa", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodDelete, "/api/trips/"+trip.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, env = s.do(t, http.MethodDelete, "/api/trips/"+trip.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Trip not found", env.Message)

	w, _ = s.do(t, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(t, http.MethodGet, "/api/trips", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_GenerateAllProvidersFail(t *testing.T) {
	s := newTestServer(t, okPlaces, withProviders(failingProvider{}, failingProvider{}))
	s.signUp(t, "Meera", "meera@example.com")

	w, env := s.do(t, http.MethodPost, "/api/itinerary/generate", goaRequest)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Failed to generate itinerary", env.Message)

	w, env = s.do(t, http.MethodGet, "/api/trips", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(env.Data), "Goa")
}

func TestRouter_GenerateSaveFailureReturnsResubmittableTrip(t *testing.T) {
	s := newTestServer(t, okPlaces, withFailingGeneratedSave())
	s.signUp(t, "Kabir", "kabir@example.com")

	w, env := s.do(t, http.MethodPost, "/api/itinerary/generate", goaRequest)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Itinerary generated but could not be saved", env.Message)

	var payload struct {
		ID    string `json:"id"`
		City  string `json:"city"`
		Plans []struct {
			Places []struct {
				Image   string `json:"image"`
				MapsURL string `json:"mapsUrl"`
			} `json:"places"`
		} `json:"plans"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Empty(t, payload.ID)
	assert.Equal(t, "Goa", payload.City)
	require.NotEmpty(t, payload.Plans)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Baga%20Beach", payload.Plans[0].Places[0].MapsURL)
	assert.Contains(t, payload.Plans[0].Places[0].Image, "places/baga/photos/1/media?key=KEY")

	w, saved := s.do(t, http.MethodPost, "/api/trips/save", env.Data)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var trip struct {
		ID         string   `json:"id"`
		City       string   `json:"city"`
		Country    string   `json:"country"`
		Days       int      `json:"days"`
		Budget     float64  `json:"budget"`
		Interests  []string `json:"interests"`
		SafetyMode bool     `json:"safetyMode"`
		AITip      string   `json:"aiTip"`
	}
	require.NoError(t, json.Unmarshal(saved.Data, &trip))
	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, "Goa", trip.City)
	assert.Equal(t, "Verified", trip.Country)
	assert.Equal(t, 1, trip.Days)
	assert.Equal(t, float64(5000), trip.Budget)
	assert.Equal(t, []string{"Nature"}, trip.Interests)
	assert.True(t, trip.SafetyMode)
	assert.Equal(t, "Rent a scooter.", trip.AITip)
}

func TestRouter_DeepDiveRequiresParams(t *testing.T) {
	s := newTestServer(t, okPlaces)

	w, env := s.do(t, http.MethodGet, "/api/itinerary/deep-dive?country=Japan", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Country and Interest required", env.Message)

	// The fixed provider returns an itinerary, which lacks a title.
	w, env = s.do(t, http.MethodGet, "/api/itinerary/deep-dive?country=Japan&interest=Food", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to generate deep dive", env.Message)
}

func TestRouter_Autocomplete(t *testing.T) {
	s := newTestServer(t, okPlaces)

	w, env := s.do(t, http.MethodGet, "/api/places/autocomplete?input=Go", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"suggestions":[]}`, string(env.Data))

	_, env = s.do(t, http.MethodGet, "/api/places/autocomplete?input=Goa", nil)
	assert.JSONEq(t, `{"suggestions":[{"placeId":"p1","text":"Goa, India"}]}`, string(env.Data))

	failing := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	w, env = failing.do(t, http.MethodGet, "/api/places/autocomplete?input=Goa", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch suggestions", env.Message)
}

func TestRouter_CommentsAndExperiences(t *testing.T) {
	s := newTestServer(t, okPlaces)

	w, _ := s.do(t, http.MethodPost, "/api/comments/trip-1", map[string]any{"text": "hi"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := s.do(t, http.MethodPost, "/api/auth/register", map[string]any{"name": "Ravi", "email": "ravi@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)
	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	s.token = auth.Token

	w, _ = s.do(t, http.MethodPost, "/api/comments/trip-1", map[string]any{"text": "Great plan"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env = s.do(t, http.MethodGet, "/api/comments/trip-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"userName":"Ravi"`)

	w, _ = s.do(t, http.MethodPost, "/api/experiences/add", map[string]any{"location": "Hampi", "experience": "Bouldering at dawn", "rating": 5})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, _ = s.do(t, http.MethodPost, "/api/experiences/add", map[string]any{"location": "Hampi", "experience": "x", "rating": 9})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.token = ""
	_, env = s.do(t, http.MethodGet, "/api/experiences?location=hamp", nil)
	assert.Contains(t, string(env.Data), `"user":"Ravi"`)
}
