package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/audit"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/auth"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/config"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/testutil"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/timezone"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/validators"
)

var testClock = timezone.Fixed(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))

type testServer struct {
	t      *testing.T
	router *gin.Engine
	tokens *auth.TokenIssuer

	adminToken string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if err := validators.Register(); err != nil {
		t.Fatalf("validators: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTTTL:            time.Hour,
		BookingRateLimit:  100,
		BookingRateWindow: time.Minute,
	}

	db := testutil.NewDB(t)
	r := gin.New()
	RegisterRoutes(r, Dependencies{
		DB:     db,
		Config: cfg,
		Clock:  testClock,
		Audit:  audit.Discard{},
	})

	admin := testutil.SeedUser(t, db, string(auth.RoleAdmin))
	s := &testServer{
		t:      t,
		router: r,
		tokens: auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL, testClock),
	}
	s.adminToken = s.issue(admin.ID, auth.RoleAdmin)
	return s
}

func (s *testServer) issue(userID string, role auth.Role) string {
	token, err := s.tokens.Issue(userID, role)
	if err != nil {
		s.t.Fatalf("issue token: %v", err)
	}
	return token
}

type envelope struct {
	Status    string          `json:"status"`
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
}

func (s *testServer) do(method, path, token string, body any) (int, envelope) {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			s.t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode data %s: %v", raw, err)
	}
	return v
}

// registerOwner signs up a user with one pet and returns the token and pet id.
func (s *testServer) registerOwner(email string) (string, string) {
	s.t.Helper()

	code, env := s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"first_name": "Ana",
		"last_name":  "Silva",
		"email":      email,
		"password":   "s3cret-pass",
	})
	if code != http.StatusCreated {
		s.t.Fatalf("register: %d %s", code, env.ErrorCode)
	}
	session := decode[struct {
		Token string `json:"token"`
	}](s.t, env.Data)

	code, env = s.do(http.MethodPost, "/api/pets", session.Token, map[string]string{
		"name":    "Milo",
		"species": "Dog",
	})
	if code != http.StatusCreated {
		s.t.Fatalf("create pet: %d %s", code, env.ErrorCode)
	}
	pet := decode[struct {
		ID string `json:"id"`
	}](s.t, env.Data)

	return session.Token, pet.ID
}

func TestBookingFlow(t *testing.T) {
	s := newTestServer(t)
	token, petID := s.registerOwner("ana@example.com")

	booking := map[string]string{
		"pet_id":       petID,
		"date":         "2025-06-12",
		"time":         "10:00",
		"service_type": "Vaccination",
	}

	code, env := s.do(http.MethodPost, "/api/appointments", token, booking)
	if code != http.StatusCreated {
		t.Fatalf("create: %d %s", code, env.ErrorCode)
	}
	ap := decode[struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}](t, env.Data)
	if ap.Status != "Confirmed" {
		t.Fatalf("status = %s", ap.Status)
	}

	code, env = s.do(http.MethodPost, "/api/appointments", token, booking)
	if code != http.StatusConflict || env.ErrorCode != "slot_already_booked" {
		t.Fatalf("double booking: %d %s", code, env.ErrorCode)
	}

	code, env = s.do(http.MethodGet, "/api/appointments/times/2025-06-12", token, nil)
	if code != http.StatusOK {
		t.Fatalf("times: %d", code)
	}
	if times := decode[[]string](t, env.Data); len(times) != 1 || times[0] != "10:00" {
		t.Fatalf("times = %v", times)
	}

	code, env = s.do(http.MethodPatch, "/api/appointments/"+ap.ID+"/cancel", token, nil)
	if code != http.StatusOK {
		t.Fatalf("cancel: %d %s", code, env.ErrorCode)
	}

	code, env = s.do(http.MethodGet, "/api/appointments/times/2025-06-12", token, nil)
	if code != http.StatusOK {
		t.Fatalf("times: %d", code)
	}
	if times := decode[[]string](t, env.Data); len(times) != 0 {
		t.Fatalf("times after cancel = %v", times)
	}

	code, env = s.do(http.MethodPost, "/api/appointments", token, booking)
	if code != http.StatusCreated {
		t.Fatalf("rebook: %d %s", code, env.ErrorCode)
	}
}

func TestRescheduleAndListing(t *testing.T) {
	s := newTestServer(t)
	token, petID := s.registerOwner("ana@example.com")

	code, env := s.do(http.MethodPost, "/api/appointments", token, map[string]string{
		"pet_id": petID, "date": "2025-06-12", "time": "10:00", "service_type": "Checkup",
	})
	if code != http.StatusCreated {
		t.Fatalf("create: %d %s", code, env.ErrorCode)
	}
	id := decode[struct {
		ID string `json:"id"`
	}](t, env.Data).ID

	code, env = s.do(http.MethodPatch, "/api/appointments/"+id, token, map[string]string{
		"date": "2025-06-01", "time": "15:00",
	})
	if code != http.StatusOK {
		t.Fatalf("reschedule: %d %s", code, env.ErrorCode)
	}
	if st := decode[struct {
		Status string `json:"status"`
	}](t, env.Data).Status; st != "Rescheduled" {
		t.Fatalf("status = %s", st)
	}

	_, env = s.do(http.MethodGet, "/api/appointments", token, nil)
	if upcoming := decode[[]map[string]any](t, env.Data); len(upcoming) != 0 {
		t.Fatalf("upcoming = %v", upcoming)
	}
	_, env = s.do(http.MethodGet, "/api/appointments/history", token, nil)
	if history := decode[[]map[string]any](t, env.Data); len(history) != 1 {
		t.Fatalf("history = %v", history)
	}
}

func TestAccessRules(t *testing.T) {
	s := newTestServer(t)
	token, petID := s.registerOwner("ana@example.com")
	otherToken, _ := s.registerOwner("bob@example.com")

	_, env := s.do(http.MethodPost, "/api/appointments", token, map[string]string{
		"pet_id": petID, "date": "2025-06-12", "time": "10:00", "service_type": "Dental",
	})
	id := decode[struct {
		ID string `json:"id"`
	}](t, env.Data).ID

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		want   int
		code   string
	}{
		{"no token", http.MethodGet, "/api/appointments", "", nil, http.StatusUnauthorized, "missing_authorization_header"},
		{"other owner", http.MethodGet, "/api/appointments/" + id, otherToken, nil, http.StatusForbidden, "not_owner"},
		{"malformed id", http.MethodGet, "/api/appointments/not-a-uuid", token, nil, http.StatusNotFound, "appointment_not_found"},
		{"unknown id", http.MethodPatch, "/api/appointments/00000000-0000-0000-0000-000000000001/cancel", token, nil, http.StatusNotFound, "appointment_not_found"},
		{"bad body", http.MethodPost, "/api/appointments", token, map[string]string{"pet_id": petID, "date": "tomorrow", "time": "10:00", "service_type": "Dental"}, http.StatusBadRequest, "invalid_request"},
		{"user on admin list", http.MethodGet, "/api/admin/appointments", token, nil, http.StatusForbidden, "forbidden"},
		{"user deletes account", http.MethodDelete, "/api/admin/users/00000000-0000-0000-0000-000000000001", token, nil, http.StatusForbidden, "forbidden"},
		{"other books my pet", http.MethodPost, "/api/appointments", otherToken, map[string]string{"pet_id": petID, "date": "2025-06-13", "time": "10:00", "service_type": "Dental"}, http.StatusNotFound, "pet_not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := s.do(tt.method, tt.path, tt.token, tt.body)
			if code != tt.want || env.ErrorCode != tt.code {
				t.Fatalf("got %d %q, want %d %q", code, env.ErrorCode, tt.want, tt.code)
			}
		})
	}
}

func TestAdminEndpoints(t *testing.T) {
	s := newTestServer(t)
	token, petID := s.registerOwner("ana@example.com")

	_, env := s.do(http.MethodPost, "/api/appointments", token, map[string]string{
		"pet_id": petID, "date": "2025-06-12", "time": "10:00", "service_type": "Grooming",
	})
	id := decode[struct {
		ID      string `json:"id"`
		OwnerID string `json:"owner_id"`
	}](t, env.Data)

	code, env := s.do(http.MethodGet, "/api/admin/appointments?date=2025-06-12", s.adminToken, nil)
	if code != http.StatusOK {
		t.Fatalf("admin list: %d %s", code, env.ErrorCode)
	}

	code, env = s.do(http.MethodGet, "/api/admin/appointments/users/"+id.OwnerID+"/active", s.adminToken, nil)
	if code != http.StatusOK {
		t.Fatalf("user active: %d", code)
	}
	if active := decode[[]map[string]any](t, env.Data); len(active) != 1 {
		t.Fatalf("active = %v", active)
	}

	code, env = s.do(http.MethodPatch, "/api/admin/appointments/"+id.ID+"/complete", s.adminToken, nil)
	if code != http.StatusOK {
		t.Fatalf("complete: %d %s", code, env.ErrorCode)
	}

	code, env = s.do(http.MethodPatch, "/api/appointments/"+id.ID+"/cancel", token, nil)
	if code != http.StatusConflict || env.ErrorCode != "invalid_state" {
		t.Fatalf("cancel completed: %d %s", code, env.ErrorCode)
	}

	code, _ = s.do(http.MethodDelete, "/api/admin/pets/"+petID, s.adminToken, nil)
	if code != http.StatusOK {
		t.Fatalf("delete pet: %d", code)
	}
	code, _ = s.do(http.MethodGet, "/api/admin/appointments/"+id.ID, s.adminToken, nil)
	if code != http.StatusOK {
		t.Fatalf("appointment should survive pet deletion: %d", code)
	}

	code, _ = s.do(http.MethodDelete, "/api/admin/users/"+id.OwnerID, s.adminToken, nil)
	if code != http.StatusOK {
		t.Fatalf("delete user: %d", code)
	}
	code, env = s.do(http.MethodGet, "/api/admin/appointments/"+id.ID, s.adminToken, nil)
	if code != http.StatusNotFound || env.ErrorCode != "appointment_not_found" {
		t.Fatalf("after user delete: %d %s", code, env.ErrorCode)
	}

	code, _ = s.do(http.MethodGet, "/api/admin/audit-logs", s.adminToken, nil)
	if code != http.StatusOK {
		t.Fatalf("audit logs: %d", code)
	}
}
