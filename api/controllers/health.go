package controllers

import (
	"net/http"

	"github.com/kojoantwi/shoppoint-backend/api/responses"
	"github.com/kojoantwi/shoppoint-backend/pkg/config"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
	"github.com/kojoantwi/shoppoint-backend/pkg/logger"
	"github.com/kojoantwi/shoppoint-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ShopPoint-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness, including the optional redis dependency.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisClient redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ShopPoint-Env", cfg.App.Env)

		checks := map[string]string{}
		if redisClient != nil {
			if err := redisClient.Ping(r.Context()); err != nil {
				checks["redis"] = "down"
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable").WithDetails(checks))
				return
			}
			checks["redis"] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
