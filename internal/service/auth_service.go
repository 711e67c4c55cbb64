package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cms-preschool/checkin-api/internal/dto"
	"github.com/cms-preschool/checkin-api/pkg/config"
	apperrors "github.com/cms-preschool/checkin-api/pkg/errors"
)

// AuthService gates the whole API behind the shared staff passphrase.
// There are no per-user accounts; a successful login yields a signed
// session token every device presents on each request. "Remember this
// device" stretches the token to the long TTL instead of persisting
// anything server-side.
type AuthService struct {
	passphraseHash []byte
	secret         []byte
	sessionTTL     time.Duration
	rememberedTTL  time.Duration
	clock          *Clock
	validate       *validator.Validate
	logger         *zap.Logger
}

func NewAuthService(cfg config.AuthConfig, clock *Clock, validate *validator.Validate, logger *zap.Logger) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Passphrase), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash passphrase: %w", err)
	}
	return &AuthService{
		passphraseHash: hash,
		secret:         []byte(cfg.TokenSecret),
		sessionTTL:     cfg.SessionTTL,
		rememberedTTL:  cfg.RememberedTTL,
		clock:          clock,
		validate:       validate,
		logger:         logger,
	}, nil
}

// Login checks the passphrase and issues a session token.
func (s *AuthService) Login(req dto.LoginRequest) (dto.LoginResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.LoginResponse{}, apperrors.ErrValidation.WithError(err)
	}
	if err := bcrypt.CompareHashAndPassword(s.passphraseHash, []byte(req.Password)); err != nil {
		s.logger.Warn("login rejected: wrong passphrase")
		return dto.LoginResponse{}, apperrors.ErrInvalidPassphrase
	}

	ttl := s.sessionTTL
	if req.Remember {
		ttl = s.rememberedTTL
	}
	now := s.clock.Now()
	expires := now.Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat":        now.Unix(),
		"exp":        expires.Unix(),
		"remembered": req.Remember,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return dto.LoginResponse{}, apperrors.ErrInternal.WithError(err)
	}

	s.logger.Info("session issued", zap.Bool("remembered", req.Remember), zap.Time("expires_at", expires))
	return dto.LoginResponse{
		Token:     signed,
		ExpiresAt: expires.Format(time.RFC3339),
		Remember:  req.Remember,
	}, nil
}

// ValidateToken verifies a presented session token.
func (s *AuthService) ValidateToken(raw string) error {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !token.Valid {
		return apperrors.ErrUnauthorized.WithError(err)
	}
	return nil
}
