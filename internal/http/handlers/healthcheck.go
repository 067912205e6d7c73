package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

// Healthcheck answers ok while the database is reachable.
func Healthcheck(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, map[string]string{"status": "unavailable"})
			return
		}

		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}
