package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// SessionCookieName é o cookie que identifica a sessão do navegador
const SessionCookieName = "dashboard_session"

const sessionMaxAge = 12 * time.Hour

// SessionMiddleware garante um ID de sessão por navegador e o coloca no contexto.
// A sessão só serve para correlacionar logs; nenhum estado é guardado no servidor.
func SessionMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				sessionID = cookie.Value
			}

			if sessionID == "" {
				id, err := utils.GenerateID()
				if err != nil {
					log.ForContext(r.Context()).WithError(err).Warn("Não foi possível gerar ID de sessão")
					next.ServeHTTP(w, r)
					return
				}

				sessionID = id
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(sessionMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := log.WithSessionID(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
