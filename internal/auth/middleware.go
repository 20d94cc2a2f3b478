package auth

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// Middleware exige bearer token válido e injeta o Principal no contexto.
func (v Verificador) Middleware(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "Token ausente", http.StatusUnauthorized)
				return
			}
			claims, err := v.Validar(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				log.WithError(err).Debug("token rejeitado")
				http.Error(w, "Token inválido", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(ComPrincipal(r.Context(), claims.Principal())))
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, ok := PrincipalDe(r.Context()); !ok || !p.IsAdmin() {
			http.Error(w, "Forbidden (admin only)", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
