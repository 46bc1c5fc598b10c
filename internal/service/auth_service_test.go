package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"video_studio/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn     func(email, name, hash string) (*models.User, error)
	GetByEmailFn func(email string) (*models.User, error)
	GetByIDFn    func(id string) (*models.User, error)

	createCalls []struct {
		email string
		name  string
		hash  string
	}
}

func (m *mockUserRepo) Create(_ context.Context, email, name, hash string) (*models.User, error) {
	m.createCalls = append(m.createCalls, struct {
		email string
		name  string
		hash  string
	}{email, name, hash})
	return m.CreateFn(email, name, hash)
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return m.GetByEmailFn(email)
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	return m.GetByIDFn(id)
}

const testSecret = "unit-test-secret"

func newTestAuthService(repo *mockUserRepo) *AuthService {
	return &AuthService{users: repo, signingKey: []byte(testSecret)}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	repo := &mockUserRepo{
		GetByEmailFn: func(string) (*models.User, error) { return nil, nil },
		CreateFn: func(email, name, hash string) (*models.User, error) {
			return &models.User{ID: "u-1", Email: email, Name: name, PasswordHash: hash, CreatedAt: time.Now().UTC()}, nil
		},
	}
	s := newTestAuthService(repo)

	u, token, err := s.SignUp(context.Background(), SignUpParams{
		Email:    "a@x.com",
		Password: "secret1",
		Name:     "A",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != "u-1" || u.Email != "a@x.com" {
		t.Fatalf("unexpected user: %+v", u)
	}

	// stored hash must verify against the plaintext
	if len(repo.createCalls) != 1 {
		t.Fatalf("expected 1 create call, got %d", len(repo.createCalls))
	}
	hash := repo.createCalls[0].hash
	if hash == "secret1" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	// issued token must resolve back to the same identity
	id, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if id.UserID != "u-1" || id.Email != "a@x.com" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	repo := &mockUserRepo{
		GetByEmailFn: func(string) (*models.User, error) {
			t.Fatal("store must not be touched on invalid input")
			return nil, nil
		},
	}
	s := newTestAuthService(repo)

	cases := []struct {
		name string
		p    SignUpParams
	}{
		{"bad email", SignUpParams{Email: "not-an-email", Password: "secret1", Name: "A"}},
		{"short password", SignUpParams{Email: "a@x.com", Password: "12345", Name: "A"}},
		{"empty name", SignUpParams{Email: "a@x.com", Password: "secret1", Name: "  "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := s.SignUp(context.Background(), tc.p)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return &models.User{ID: "u-1", Email: email}, nil
		},
		CreateFn: func(string, string, string) (*models.User, error) {
			t.Fatal("Create must not be called for a taken email")
			return nil, nil
		},
	}
	s := newTestAuthService(repo)

	_, _, err := s.SignUp(context.Background(), SignUpParams{Email: "a@x.com", Password: "secret1", Name: "A"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_SignIn_CollapsesFailures(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
		stored   *models.User
	}{
		{"unknown email", "missing@x.com", "secret1", nil},
		{"wrong password", "a@x.com", "wrong", &models.User{ID: "u-1", Email: "a@x.com", PasswordHash: string(hash)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockUserRepo{
				GetByEmailFn: func(string) (*models.User, error) { return tc.stored, nil },
			}
			s := newTestAuthService(repo)

			_, _, err := s.SignIn(context.Background(), tc.email, tc.password)
			// both cases must surface the exact same error value
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthService_SignIn_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &mockUserRepo{
		GetByEmailFn: func(string) (*models.User, error) {
			return &models.User{ID: "u-1", Email: "a@x.com", PasswordHash: string(hash)}, nil
		},
	}
	s := newTestAuthService(repo)

	u, token, err := s.SignIn(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", u)
	}
	id, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if id.UserID != "u-1" {
		t.Fatalf("token resolves to %q, want u-1", id.UserID)
	}
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	s := newTestAuthService(&mockUserRepo{})

	expired := signTestToken(t, testSecret, "u-1", -time.Hour)
	valid := signTestToken(t, testSecret, "u-1", time.Hour)
	otherKey := signTestToken(t, "some-other-secret", "u-1", time.Hour)

	cases := []struct {
		name  string
		token string
	}{
		{"malformed", "not.a.token"},
		{"expired", expired},
		{"tampered signature", valid + "x"},
		{"wrong signing key", otherKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.ParseToken(tc.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestAuthService_CurrentUser_Stale(t *testing.T) {
	repo := &mockUserRepo{
		GetByIDFn: func(string) (*models.User, error) { return nil, nil },
	}
	s := newTestAuthService(repo)

	_, err := s.CurrentUser(context.Background(), "gone")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted user, got %v", err)
	}
}

func signTestToken(t *testing.T, secret, subject string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
		Email: "a@x.com",
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return signed
}
