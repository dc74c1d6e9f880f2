package ports

import (
	"context"

	"github.com/fivam/blog-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	// Login returns a signed bearer token on success. Unknown email and
	// wrong password both surface as domain.ErrInvalidCredentials so the
	// two cases are indistinguishable to callers.
	Login(ctx context.Context, email, password string) (string, error)
}
