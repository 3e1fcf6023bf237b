package usecase

import (
	"context"
	"strings"

	"sitebuilder/internal/pkg/jwt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (string, error)
}

type Auth struct {
	whitelist    map[string]struct{}
	passwordHash []byte
	tokens       jwt.Service
	logger       zerolog.Logger
}

// NewAuthUsecase admits the whitelisted emails. With a non-empty bcrypt hash
// the password must also match it.
func NewAuthUsecase(whitelist []string, passwordHash string, tokens jwt.Service, logger zerolog.Logger) *Auth {
	wl := make(map[string]struct{}, len(whitelist))
	for _, e := range whitelist {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			wl[e] = struct{}{}
		}
	}
	var hash []byte
	if passwordHash != "" {
		hash = []byte(passwordHash)
	}
	return &Auth{whitelist: wl, passwordHash: hash, tokens: tokens, logger: logger}
}

func (u *Auth) Login(_ context.Context, in LoginInput) (string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return "", ErrInvalidInput
	}
	if _, ok := u.whitelist[email]; !ok {
		u.logger.Warn().Str("email", email).Msg("login rejected")
		return "", ErrForbidden
	}
	if u.passwordHash != nil {
		if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(in.Password)); err != nil {
			return "", ErrUnauthorized
		}
	}

	token, err := u.tokens.GenerateAdminToken(email)
	if err != nil {
		u.logger.Error().Err(err).Msg("sign token failed")
		return "", ErrInternal
	}
	return token, nil
}
