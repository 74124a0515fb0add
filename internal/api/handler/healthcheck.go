package handler

import (
	"net/http"
	"time"
)

// CacheStatus expõe o estado do cache da tabela de vendas
type CacheStatus interface {
	LoadedAt() time.Time
	Source() string
}

// HealthcheckHandler responde a liveness; não força a carga dos dados
func HealthcheckHandler(cache CacheStatus) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}

		if cache != nil {
			response["source"] = cache.Source()
			if loadedAt := cache.LoadedAt(); !loadedAt.IsZero() {
				response["data_loaded_at"] = loadedAt.Format(time.RFC3339)
			}
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}
