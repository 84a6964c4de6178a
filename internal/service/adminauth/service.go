// Package adminauth issues and validates the bearer tokens of the single
// facility administrator, who logs in with a shared password.
package adminauth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Subject значение sub в токене администратора
	Subject = "admin"

	issuer = "pitch-booking"
)

// Claims утверждения токена администратора
type Claims struct {
	jwt.RegisteredClaims
}

// Token выданный токен
type Token struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Service аутентификация администратора по общему паролю
type Service struct {
	password     []byte
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
	logger       Logger
}

// NewService создает сервис. Если passwordHash (bcrypt) не пуст, password не используется.
func NewService(password, passwordHash, secret string, ttl time.Duration, logger Logger) *Service {
	return &Service{
		password:     []byte(password),
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		ttl:          ttl,
		now:          time.Now,
		logger:       logger,
	}
}

// Login проверяет пароль и выдает подписанный HS256 токен
func (s *Service) Login(_ context.Context, password string) (*Token, error) {
	if len(s.secret) == 0 || (len(s.password) == 0 && len(s.passwordHash) == 0) {
		s.logger.Error("Login: admin password or jwt secret is not configured")
		return nil, ErrNotConfigured
	}

	if !s.checkPassword(password) {
		s.logger.Warn("Login: invalid admin password")
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return nil, fmt.Errorf("adminauth: sign token: %w", err)
	}

	s.logger.Info("Login: admin token issued, expires at %s", expiresAt.Format(time.RFC3339))
	return &Token{AccessToken: signed, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}

// ValidateToken проверяет подпись, срок действия и subject токена
func (s *Service) ValidateToken(raw string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrNotConfigured
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithSubject(Subject),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: expired", ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claims, nil
}

func (s *Service) checkPassword(password string) bool {
	if len(s.passwordHash) > 0 {
		return bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare(s.password, []byte(password)) == 1
}
