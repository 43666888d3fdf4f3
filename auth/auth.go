// Package auth holds the single administrator credential and the signed
// session tokens gating the admin API.
package auth

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTTL is how long an issued session token stays valid. There is
// no revocation; a token is good until its stamped expiry elapses.
const DefaultTTL = 24 * time.Hour

const RoleAdmin = "admin"

// Fallback secret kept for local development only. Deployments must set
// JWT_SECRET; startup logs a warning when this value is in use.
const devSecret = "your-secret-key-change-in-production"

// ErrInvalidToken is returned for every verification failure. Structural,
// signature and expiry problems are deliberately indistinguishable to the
// caller.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secret       []byte
	username     string
	passwordHash []byte
}

// NewServiceFromEnv builds the service from JWT_SECRET, ADMIN_USERNAME
// and ADMIN_PASSWORD. The admin password is bcrypt-hashed at startup and
// only the hash is kept.
func NewServiceFromEnv() (*Service, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("Warning: JWT_SECRET not set, using built-in development secret. Set it before deploying.")
		secret = devSecret
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("Warning: ADMIN_PASSWORD not set, using default admin credentials. Set it before deploying.")
		password = "admin123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Service{secret: []byte(secret), username: username, passwordHash: hash}, nil
}

// NewService is the injectable constructor used by tests.
func NewService(secret, username, password string) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{secret: []byte(secret), username: username, passwordHash: hash}, nil
}

// Authenticate checks the static admin identity.
func (s *Service) Authenticate(username, password string) bool {
	if username != s.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
}

// Issue signs a session token carrying the identity and role claims.
func (s *Service) Issue(username, role string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify decodes and checks signature and expiry.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
