package identity

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/decode"
)

type service struct {
	secret   []byte
	ttl      time.Duration
	username string
	password string
	ownerID  string
	logger   *slog.Logger
}

// New creates a JWT-backed identity system from the given configuration.
func New(cfg *Config, logger *slog.Logger) System {
	return &service{
		secret:   []byte(cfg.Secret),
		ttl:      cfg.TokenTTLDuration(),
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		ownerID:  uuid.NewSHA1(uuid.NameSpaceURL, []byte("admin:"+cfg.AdminUsername)).String(),
		logger:   logger.With("system", "identity"),
	}
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username))
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.password))
	if userMatch&passMatch != 1 {
		s.logger.Warn("login rejected", "username", username)
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  s.ownerID,
		"name": s.username,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("session issued", "username", username)
	return signed, nil
}

func (s *service) Verify(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	session, err := decode.FromMap[Session](claims)
	if err != nil || session.OwnerID == "" {
		return nil, ErrInvalidToken
	}

	return &session, nil
}

func (s *service) CurrentSession(ctx context.Context) (*Session, error) {
	session, ok := SessionFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	return session, nil
}
