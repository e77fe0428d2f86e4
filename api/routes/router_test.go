package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/skillswap/skillswap-backend/api/controllers"
	"github.com/skillswap/skillswap-backend/internal/fixtures"
	"github.com/skillswap/skillswap-backend/internal/messages"
	"github.com/skillswap/skillswap-backend/internal/notifications"
	"github.com/skillswap/skillswap-backend/internal/recordstore"
	"github.com/skillswap/skillswap-backend/internal/sessions"
	"github.com/skillswap/skillswap-backend/internal/skills"
	"github.com/skillswap/skillswap-backend/internal/users"
	"github.com/skillswap/skillswap-backend/pkg/config"
	"github.com/skillswap/skillswap-backend/pkg/logger"
	"github.com/skillswap/skillswap-backend/pkg/metrics"
)

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

type stubRedis struct {
	data    map[string]string
	counts  map[string]int64
	pingErr error
}

func newStubRedis() *stubRedis {
	return &stubRedis{data: map[string]string{}, counts: map[string]int64{}}
}

func (s *stubRedis) Ping(context.Context) error { return s.pingErr }

func (s *stubRedis) Get(_ context.Context, key string) (string, error) {
	if v, ok := s.data[key]; ok {
		return v, nil
	}
	return "", redis.Nil
}

func (s *stubRedis) SetNX(_ context.Context, key string, value any, _ time.Duration) (bool, error) {
	if _, ok := s.data[key]; ok {
		return false, nil
	}
	str, _ := value.(string)
	s.data[key] = str
	return true, nil
}

func (s *stubRedis) IdempotencyKey(scope, id string) string {
	return fmt.Sprintf("test:idempotency:%s:%s", scope, id)
}

func (s *stubRedis) FixedWindowAllow(_ context.Context, scope string, limit int64, _ time.Duration) (bool, int64, error) {
	s.counts[scope]++
	count := s.counts[scope]
	return count <= limit, count, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App:       config.AppConfig{Env: "test", Port: "0"},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		RateLimit: config.RateLimitConfig{MessageWindow: time.Minute, MessageLimit: 2},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, redisClient RedisClient) http.Handler {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	reg := prometheus.NewRegistry()
	deps := recordstore.Deps{
		Clock:   recordstore.FixedClock{T: testNow},
		Metrics: metrics.NewStoreMetrics(reg),
		Logger:  logg,
	}

	seed, err := fixtures.Load()
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	skillRepo, err := skills.NewRepository(deps, seed.Skills)
	if err != nil {
		t.Fatalf("skills repo: %v", err)
	}
	sessionRepo, err := sessions.NewRepository(deps, seed.Sessions)
	if err != nil {
		t.Fatalf("sessions repo: %v", err)
	}
	messageRepo, err := messages.NewRepository(deps, seed.Messages)
	if err != nil {
		t.Fatalf("messages repo: %v", err)
	}
	notificationRepo, err := notifications.NewRepository(deps, seed.Notifications)
	if err != nil {
		t.Fatalf("notifications repo: %v", err)
	}
	userRepo, err := users.NewRepository(deps, seed.Users)
	if err != nil {
		t.Fatalf("users repo: %v", err)
	}

	skillSvc, err := skills.NewService(skillRepo)
	if err != nil {
		t.Fatalf("skills service: %v", err)
	}
	sessionSvc, err := sessions.NewService(sessionRepo, time.UTC, deps.Clock)
	if err != nil {
		t.Fatalf("sessions service: %v", err)
	}
	messageSvc, err := messages.NewService(messageRepo)
	if err != nil {
		t.Fatalf("messages service: %v", err)
	}
	notificationSvc, err := notifications.NewService(notificationRepo)
	if err != nil {
		t.Fatalf("notifications service: %v", err)
	}
	userSvc, err := users.NewService(userRepo, skillSvc)
	if err != nil {
		t.Fatalf("users service: %v", err)
	}

	return NewRouter(Params{
		Config:        cfg,
		Logger:        logg,
		Redis:         redisClient,
		Gatherer:      reg,
		Stores:        []controllers.RecordCounter{skillRepo, sessionRepo, messageRepo, notificationRepo, userRepo},
		Skills:        skillSvc,
		Sessions:      sessionSvc,
		Messages:      messageSvc,
		Notifications: notificationSvc,
		Users:         userSvc,
	})
}

func do(router http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.RemoteAddr = "203.0.113.7:4242"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func listCount(t *testing.T, resp *httptest.ResponseRecorder) int {
	t.Helper()
	var envelope struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return envelope.Data.Count
}

func TestHealthRoutes(t *testing.T) {
	router := newTestRouter(t, testConfig(), nil)

	resp := do(router, http.MethodGet, "/health/live", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for live got %d", resp.Code)
	}

	resp = do(router, http.MethodGet, "/health/ready", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for ready got %d", resp.Code)
	}
	var envelope struct {
		Data struct {
			Records map[string]int `json:"records"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data.Records) != 5 {
		t.Fatalf("expected five stores reported got %v", envelope.Data.Records)
	}
}

func TestMetricsRouteExposesStoreCounters(t *testing.T) {
	router := newTestRouter(t, testConfig(), nil)

	if resp := do(router, http.MethodGet, "/api/v1/skills", "", nil); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 listing skills got %d", resp.Code)
	}
	resp := do(router, http.MethodGet, "/metrics", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for metrics got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "record_store_operation_success_total") {
		t.Fatal("expected record store counters in metrics output")
	}
}

func TestSeededCollections(t *testing.T) {
	router := newTestRouter(t, testConfig(), nil)

	cases := []struct {
		target string
		want   int
	}{
		{"/api/v1/skills", 12},
		{"/api/v1/sessions", 5},
		{"/api/v1/messages", 6},
		{"/api/v1/notifications", 4},
		{"/api/v1/users", 5},
		{"/api/v1/messages/conversations", 3},
		{"/api/v1/skills?search=zzz-no-match", 0},
	}
	for _, tc := range cases {
		resp := do(router, http.MethodGet, tc.target, "", nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", tc.target, resp.Code)
		}
		if got := listCount(t, resp); got != tc.want {
			t.Fatalf("%s: expected %d records got %d", tc.target, tc.want, got)
		}
	}
}

func TestUnknownRecordIsNotFound(t *testing.T) {
	router := newTestRouter(t, testConfig(), nil)

	for _, target := range []string{"/api/v1/skills/999", "/api/v1/sessions/abc", "/api/v1/users/0/profile"} {
		resp := do(router, http.MethodGet, target, "", nil)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404 got %d", target, resp.Code)
		}
	}
}

func TestCreateSkillThenFetch(t *testing.T) {
	router := newTestRouter(t, testConfig(), nil)
	body := `{"title":"Watercolor","description":"Loose florals","category":"Art","type":"offer","experienceLevel":"intermediate","userId":2}`

	resp := do(router, http.MethodPost, "/api/v1/skills", body, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	resp = do(router, http.MethodGet, "/api/v1/skills/13", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected created skill at id 13 got %d", resp.Code)
	}
}

func TestIdempotentCreateReplaysResponse(t *testing.T) {
	store := newStubRedis()
	router := newTestRouter(t, testConfig(), store)
	body := `{"type":"match","title":"New match","message":"You matched with Mike"}`
	headers := map[string]string{"Idempotency-Key": "abc-123"}

	first := do(router, http.MethodPost, "/api/v1/notifications", body, headers)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", first.Code, first.Body.String())
	}
	second := do(router, http.MethodPost, "/api/v1/notifications", body, headers)
	if second.Code != http.StatusCreated {
		t.Fatalf("expected replayed 201 got %d", second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatal("expected identical replayed body")
	}
	if got := listCount(t, do(router, http.MethodGet, "/api/v1/notifications", "", nil)); got != 5 {
		t.Fatalf("expected one notification created got %d total", got)
	}

	conflict := do(router, http.MethodPost, "/api/v1/notifications", `{"type":"rating","title":"x","message":"y"}`, headers)
	if conflict.Code != http.StatusConflict {
		t.Fatalf("expected 409 for reused key got %d", conflict.Code)
	}
}

func TestSendMessageRateLimited(t *testing.T) {
	router := newTestRouter(t, testConfig(), newStubRedis())
	body := `{"matchId":1,"senderId":1,"content":"hello"}`

	for i := 0; i < 2; i++ {
		resp := do(router, http.MethodPost, "/api/v1/messages", body, nil)
		if resp.Code != http.StatusCreated {
			t.Fatalf("send %d: expected 201 got %d", i, resp.Code)
		}
	}
	resp := do(router, http.MethodPost, "/api/v1/messages", body, nil)
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 got %d", resp.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t, testConfig(), nil)
	resp := do(router, http.MethodOptions, "/api/v1/skills", "", map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": http.MethodPost,
	})
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin header got %q", got)
	}
}
