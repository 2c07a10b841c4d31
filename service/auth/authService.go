package authsvc

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentabook/model"
	"rentabook/util/apperr"
	"rentabook/util/hash"
	jwtutil "rentabook/util/jwt"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
	SetRecovery(ctx context.Context, userID, token string, expires time.Time) error
	ByRecoveryToken(ctx context.Context, token string) (*model.User, error)
	ResetPassword(ctx context.Context, userID, passwordHash string) error
}

type Service interface {
	// Register creates the account and returns a first token.
	Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)

	// RecoveryStart stores a one-shot recovery token on the user. The token
	// is returned so the mail-out path (not this service) can deliver it.
	RecoveryStart(ctx context.Context, email string) (string, error)

	// RecoveryReset sets a new password and bumps tokenVersion, killing
	// every previously issued JWT.
	RecoveryReset(ctx context.Context, req model.RecoveryReq) error
}

type service struct {
	ur       Repo
	secret   string
	ttlHours int
}

func New(ur Repo, secret string, ttlHours int) Service {
	return &service{ur: ur, secret: secret, ttlHours: ttlHours}
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 6 {
		return nil, "", apperr.New(apperr.ErrBadInput, "invalid email or password")
	}

	existing, err := s.ur.ByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperr.New(apperr.ErrAlreadyExists, "email already registered")
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	u := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.ur.Create(ctx, u); err != nil {
		return nil, "", err
	}

	tok, err := jwtutil.Issue(s.secret, u.ID.Hex(), u.Email, u.TokenVersion, s.ttlHours)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", apperr.New(apperr.ErrBadInput, "missing email or password")
	}

	u, err := s.ur.ByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil || !hash.CheckPassword(u.PasswordHash, req.Password) {
		return nil, "", apperr.New(apperr.ErrInvalidCreds, "invalid email or password")
	}

	tok, err := jwtutil.Issue(s.secret, u.ID.Hex(), u.Email, u.TokenVersion, s.ttlHours)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

func (s *service) RecoveryStart(ctx context.Context, email string) (string, error) {
	u, err := s.ur.ByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", apperr.New(apperr.ErrNotFound, "user not found")
	}

	token := uuid.NewString()
	expires := time.Now().UTC().Add(30 * time.Minute)
	if err := s.ur.SetRecovery(ctx, u.ID.Hex(), token, expires); err != nil {
		return "", err
	}
	return token, nil
}

func (s *service) RecoveryReset(ctx context.Context, req model.RecoveryReq) error {
	u, err := s.ur.ByRecoveryToken(ctx, req.Token)
	if err != nil {
		return err
	}
	if u == nil {
		return apperr.New(apperr.ErrInvalidToken, "unknown recovery token")
	}
	if u.RecoveryExpiration == nil || time.Now().UTC().After(*u.RecoveryExpiration) {
		return apperr.New(apperr.ErrInvalidToken, "recovery token expired")
	}

	hashed, err := hash.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.ur.ResetPassword(ctx, u.ID.Hex(), hashed)
}
