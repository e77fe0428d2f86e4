package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/skillswap/skillswap-backend/api/responses"
	"github.com/skillswap/skillswap-backend/pkg/config"
	pkgerrors "github.com/skillswap/skillswap-backend/pkg/errors"
	"github.com/skillswap/skillswap-backend/pkg/logger"
	pkgredis "github.com/skillswap/skillswap-backend/pkg/redis"
)

const readinessTimeout = 2 * time.Second

// RecordCounter reports a store's size without simulated latency.
type RecordCounter interface {
	Entity() string
	Len() int
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SkillSwap-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports per-store record counts. redis may be nil when not configured.
func HealthReady(cfg *config.Config, logg *logger.Logger, stores []RecordCounter, redis pkgredis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SkillSwap-Env", cfg.App.Env)

		if redis != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			defer cancel()
			if err := redis.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}

		counts := make(map[string]int, len(stores))
		for _, s := range stores {
			counts[s.Entity()] = s.Len()
		}
		responses.WriteSuccess(w, map[string]any{
			"status":  "ready",
			"records": counts,
			"redis":   redis != nil,
		})
	}
}
