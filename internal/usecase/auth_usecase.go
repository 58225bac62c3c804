package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"worklink/internal/domain/user"
	"worklink/internal/pkg/jwt"
	"worklink/internal/repository"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

const minPasswordLength = 8

type RegisterInput struct {
	Email    string
	Password string
	Role     string
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error)
	Login(ctx context.Context, email, password string) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Password)) < minPasswordLength {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}
	if !user.ValidRole(in.Role) {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, TokenPair{}, fmt.Errorf("hash password: %w", err)
	}

	usr := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Active:       true,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return user.User{}, TokenPair{}, fmt.Errorf("create user: %w", err)
	}

	pair, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return sanitizeUser(usr), pair, nil
}

func (u *Auth) Login(ctx context.Context, email, password string) (user.User, TokenPair, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return user.User{}, TokenPair{}, fmt.Errorf("load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}
	if !usr.Active {
		return user.User{}, TokenPair{}, user.ErrDeactivated
	}

	pair, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return sanitizeUser(usr), pair, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, fmt.Errorf("load user: %w", err)
	}
	if !usr.Active {
		return TokenPair{}, user.ErrDeactivated
	}

	return u.issueTokens(usr)
}

func (u *Auth) issueTokens(usr user.User) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email, usr.Role)
	if err != nil {
		return TokenPair{}, fmt.Errorf("generate access token: %w", err)
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("generate refresh token: %w", err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
