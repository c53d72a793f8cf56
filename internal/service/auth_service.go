package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"bysam-catalog/internal/domain"
	"bysam-catalog/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// The single admin identity produced by a successful login.
const adminSessionID = "admin1"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNoSession          = errors.New("no active session")
)

// Claims represents the JWT claims carried by an access token
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService is the session/auth gate: one static admin credential
// pair, one optional current session persisted under the store's user
// key, and access tokens for the HTTP layer.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.Session, string, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*domain.Session, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	store         store.Store
	adminUsername string
	adminPassword string
	jwtSecret     string
	accessExpiry  time.Duration
}

// NewAuthService creates a new instance of AuthService. adminPassword
// may be either the plain credential or a bcrypt hash of it.
func NewAuthService(st store.Store, adminUsername, adminPassword, jwtSecret string, accessExpiry time.Duration) AuthService {
	return &authService{
		store:         st,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		jwtSecret:     jwtSecret,
		accessExpiry:  accessExpiry,
	}
}

// Login matches the credential pair, persists the session and returns it
// together with a signed access token.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.Session, string, error) {
	if username != s.adminUsername || !s.passwordMatches(password) {
		return nil, "", ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:       adminSessionID,
		Username: username,
		IsAdmin:  true,
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Save(ctx, store.CollectionUser, data); err != nil {
		return nil, "", fmt.Errorf("failed to persist session: %w", err)
	}

	token, err := s.generateAccessToken(session)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return session, token, nil
}

// Logout clears the persisted session. Logging out without a session is
// not an error.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, store.CollectionUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentSession returns the persisted session, or ErrNoSession when
// nobody is logged in.
func (s *authService) CurrentSession(ctx context.Context) (*domain.Session, error) {
	data, err := s.store.Load(ctx, store.CollectionUser)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &session, nil
}

// ValidateToken validates an access token and returns its claims.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// passwordMatches compares the supplied password against the configured
// credential, using bcrypt when the configured value is a hash.
func (s *authService) passwordMatches(password string) bool {
	if strings.HasPrefix(s.adminPassword, "$2a$") ||
		strings.HasPrefix(s.adminPassword, "$2b$") ||
		strings.HasPrefix(s.adminPassword, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(s.adminPassword), []byte(password)) == nil
	}
	return password == s.adminPassword
}

// generateAccessToken signs an HS256 token carrying the admin identity.
func (s *authService) generateAccessToken(session *domain.Session) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   session.ID,
		Username: session.Username,
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
