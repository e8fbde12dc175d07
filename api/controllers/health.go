package controllers

import (
	"net/http"

	"github.com/lcervantes/bistro-backend/api/responses"
	"github.com/lcervantes/bistro-backend/pkg/config"
)

func Root(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Bistro-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}
