package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/authority-backend/internal/domain"
	"github.com/heartmarshall/authority-backend/pkg/ctxutil"
)

// RequireAdmin rejects requests whose caller is not an admin: 401 when
// anonymous, 403 otherwise.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := CheckAdmin(r.Context()); err != nil {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CheckAdmin returns domain.ErrForbidden if the context caller is not admin.
func CheckAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
