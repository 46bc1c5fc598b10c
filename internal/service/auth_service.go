package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"video_studio/internal/models"
	"video_studio/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL = 7 * 24 * time.Hour

	// Fixed bcrypt work factor (10 rounds).
	hashCost = bcrypt.DefaultCost

	minPasswordLen = 6
)

// AuthService handles credentials, token issuance and token verification.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

func NewAuthService(users repository.Users, signingKey string) *AuthService {
	return &AuthService{users: users, signingKey: []byte(signingKey)}
}

type SignUpParams struct {
	Email    string
	Password string
	Name     string
}

// Claims defines JWT claims; the subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// SignUp validates input, rejects duplicate emails, hashes the password and
// issues a token for the new user.
func (s *AuthService) SignUp(ctx context.Context, p SignUpParams) (*models.User, string, error) {
	if err := validateSignUp(p); err != nil {
		return nil, "", err
	}

	existing, err := s.users.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := hashPassword(p.Password)
	if err != nil {
		return nil, "", err
	}

	u, err := s.users.Create(ctx, p.Email, p.Name, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// SignIn validates credentials and returns the user plus a fresh token.
// Unknown email and wrong password both map to ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// ParseToken verifies signature and expiry and returns the caller identity.
func (s *AuthService) ParseToken(accessToken string) (Identity, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: claims.Subject, Email: claims.Email}, nil
}

// CurrentUser resolves the token subject to a stored user. A token may
// outlive its user record; that surfaces as ErrNotFound.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func validateSignUp(p SignUpParams) error {
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(p.Password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash. A mismatch maps to
// ErrInvalidCredentials; any other bcrypt failure is an internal fault and
// must not be mistaken for a wrong password.
func verifyPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidCredentials
	}
	return fmt.Errorf("verify password: %w", err)
}

// helper: issue a signed JWT for a user, expiring in 7 days
func (s *AuthService) issueToken(u *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: u.Email,
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
