package middleware

import "net/http"

// NoCache impede que navegadores reaproveitem respostas geradas a partir da seleção atual
func NoCache() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store, max-age=0")
			next.ServeHTTP(w, r)
		})
	}
}
