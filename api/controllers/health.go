package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/avelarsoft/menuforge-backend/api/responses"
	"github.com/avelarsoft/menuforge-backend/pkg/db"
	pkgerrors "github.com/avelarsoft/menuforge-backend/pkg/errors"
	"github.com/avelarsoft/menuforge-backend/pkg/logger"
)

const readinessTimeout = 2 * time.Second

// HealthLive handles GET /health/live.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// HealthReady handles GET /health/ready. Readiness requires a live
// database connection.
func HealthReady(pinger db.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "database unavailable"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := pinger.Ping(ctx); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: ping"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}

// PublicPing handles GET /api/public/ping.
func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"message": "pong"})
	}
}
