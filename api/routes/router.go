package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillswap/skillswap-backend/api/controllers"
	"github.com/skillswap/skillswap-backend/api/middleware"
	"github.com/skillswap/skillswap-backend/internal/messages"
	"github.com/skillswap/skillswap-backend/internal/notifications"
	"github.com/skillswap/skillswap-backend/internal/sessions"
	"github.com/skillswap/skillswap-backend/internal/skills"
	"github.com/skillswap/skillswap-backend/internal/users"
	"github.com/skillswap/skillswap-backend/pkg/config"
	"github.com/skillswap/skillswap-backend/pkg/logger"
	pkgredis "github.com/skillswap/skillswap-backend/pkg/redis"
)

// RedisClient is the subset of the redis wrapper used by the HTTP surface.
type RedisClient interface {
	pkgredis.Pinger
	pkgredis.IdempotencyStore
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// Params carries everything the router wires. Redis and Gatherer may be nil.
type Params struct {
	Config   *config.Config
	Logger   *logger.Logger
	Redis    RedisClient
	Gatherer prometheus.Gatherer
	Stores   []controllers.RecordCounter

	Skills        skills.Service
	Sessions      sessions.Service
	Messages      messages.Service
	Notifications notifications.Service
	Users         users.Service
}

func NewRouter(p Params) http.Handler {
	cfg, logg := p.Config, p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	messagePolicy := middleware.NewWriteRateLimitPolicy(
		"messages",
		cfg.RateLimit.MessageWindow,
		cfg.RateLimit.MessageLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.Stores, p.Redis))
	})

	if p.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(p.Redis, logg))

		r.Route("/skills", func(r chi.Router) {
			r.Get("/", controllers.ListSkills(p.Skills, logg))
			r.Post("/", controllers.CreateSkill(p.Skills, logg))
			r.Get("/{skillId}", controllers.GetSkill(p.Skills, logg))
			r.Patch("/{skillId}", controllers.UpdateSkill(p.Skills, logg))
			r.Delete("/{skillId}", controllers.DeleteSkill(p.Skills, logg))
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", controllers.ListSessions(p.Sessions, logg))
			r.Get("/counts", controllers.SessionStatusCounts(p.Sessions, logg))
			r.Get("/calendar", controllers.SessionCalendar(p.Sessions, logg))
			r.Post("/", controllers.CreateSession(p.Sessions, logg))
			r.Get("/{sessionId}", controllers.GetSession(p.Sessions, logg))
			r.Patch("/{sessionId}", controllers.UpdateSession(p.Sessions, logg))
			r.Delete("/{sessionId}", controllers.DeleteSession(p.Sessions, logg))
			r.Post("/{sessionId}/status", controllers.UpdateSessionStatus(p.Sessions, logg))
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", controllers.ListMessages(p.Messages, logg))
			r.With(middleware.WriteRateLimit(messagePolicy, p.Redis, logg)).Post("/", controllers.SendMessage(p.Messages, logg))
			r.Get("/conversations", controllers.ListConversations(p.Messages, logg))
			r.Get("/conversations/{matchId}", controllers.GetConversation(p.Messages, logg))
			r.Get("/{messageId}", controllers.GetMessage(p.Messages, logg))
			r.Patch("/{messageId}", controllers.UpdateMessage(p.Messages, logg))
			r.Delete("/{messageId}", controllers.DeleteMessage(p.Messages, logg))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.ListNotifications(p.Notifications, logg))
			r.Post("/", controllers.CreateNotification(p.Notifications, logg))
			r.Get("/unread-count", controllers.UnreadNotificationCount(p.Notifications, logg))
			r.Post("/read-all", controllers.MarkAllNotificationsRead(p.Notifications, logg))
			r.Get("/{notificationId}", controllers.GetNotification(p.Notifications, logg))
			r.Post("/{notificationId}/read", controllers.MarkNotificationRead(p.Notifications, logg))
			r.Delete("/{notificationId}", controllers.DeleteNotification(p.Notifications, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.ListUsers(p.Users, logg))
			r.Post("/", controllers.CreateUser(p.Users, logg))
			r.Get("/me", controllers.CurrentUser(p.Users, logg))
			r.Get("/{userId}", controllers.GetUser(p.Users, logg))
			r.Get("/{userId}/profile", controllers.UserProfile(p.Users, logg))
			r.Patch("/{userId}", controllers.UpdateUser(p.Users, logg))
			r.Delete("/{userId}", controllers.DeleteUser(p.Users, logg))
		})
	})

	return r
}
