package v1

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/The-Gleb/event_banner/internal/errors"
)

type CheckTokenUsecase interface {
	CheckToken(ctx context.Context, token string) (bool, error)
}

// authMiddleWare admits only requests carrying an admin token.
type authMiddleWare struct {
	usecase CheckTokenUsecase
}

func NewAuthMiddleware(usecase CheckTokenUsecase) *authMiddleWare {
	return &authMiddleWare{usecase}
}

func (m *authMiddleWare) Do(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("auth middleware working", "path", r.URL.Path)

		token := r.Header.Get("token")
		if token == "" {
			http.Error(w, string(errors.ErrUnauthorized), http.StatusUnauthorized)
			return
		}

		isAdmin, err := m.usecase.CheckToken(r.Context(), token)
		if err != nil {
			switch errors.Code(err) {
			case errors.ErrUnauthorized:
				http.Error(w, string(errors.ErrUnauthorized), http.StatusUnauthorized)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		if !isAdmin {
			http.Error(w, string(errors.ErrForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
