package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/fivam/blog-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "user-" + user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123", "ALUNO")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != "ALUNO" {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "a@example.com", "pass", ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "", ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty password, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "Bob", "bob@example.com", "pass", "")
	if _, err := svc.Register(context.Background(), "Bobby", "bob@example.com", "pass2", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	created, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret", "ALUNO")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != created.ID {
		t.Fatalf("expected subject %s, got %v", created.ID, claims["sub"])
	}
	if claims["role"] != "ALUNO" {
		t.Fatalf("expected role ALUNO, got %v", claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected expiry claim")
	}
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass", "")

	_, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, unknownEmail := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if unknownEmail != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownEmail)
	}
}

func TestAuthService_Login_MissingSecret(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "", time.Hour)

	_, _ = svc.Register(context.Background(), "Eve", "eve@example.com", "pass123", "")
	if _, err := svc.Login(context.Background(), "eve@example.com", "pass123"); err != domain.ErrMissingSigningSecret {
		t.Fatalf("expected ErrMissingSigningSecret, got %v", err)
	}
}

func TestAuthService_TokenTTLDefault(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", 0)
	if svc.tokenTTL != defaultTokenTTL {
		t.Fatalf("expected default TTL %v, got %v", defaultTokenTTL, svc.tokenTTL)
	}
}
