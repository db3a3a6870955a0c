package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/algoarena.net/internal/core/ports/primary"
	"gitlab.com/algoarena.net/internal/core/ports/secondary"
	"gitlab.com/algoarena.net/internal/domain"
	"gitlab.com/algoarena.net/internal/static/errs"
)

var _ IAuthService = (*LocalAuthService)(nil)

type LocalAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
}

func NewLocalAuthService(
	userPort secondary.UserPort,
	jwtProvider primary.JWTService,
) *LocalAuthService {
	return &LocalAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
	}
}

func (g *LocalAuthService) ProviderName() domain.Provider {
	return domain.ProviderLocal
}

// Login verifies the username/password pair; users.PasswordHash carries the
// plaintext candidate at this point.
func (g *LocalAuthService) Login(ctx context.Context, users *domain.Users) (string, error) {
	usr, err := g.userPort.GetByUserName(ctx, users.UserName)
	if err != nil {
		return "", err
	}
	if usr == nil || usr.PasswordHash == nil || users.PasswordHash == nil {
		return "", errs.InvalidCredentials
	}

	valid, err := g.jwtProvider.VerifyPassword(ctx, *usr.PasswordHash, *users.PasswordHash)
	if err != nil || !valid {
		return "", errs.InvalidCredentials
	}

	return generateToken(ctx, g.jwtProvider, usr)
}

// Register creates a local account and returns a fresh token for it.
func (g *LocalAuthService) Register(ctx context.Context, userName, email, password string) (string, error) {
	existing, err := g.userPort.GetByUserName(ctx, userName)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", errs.UserNameTaken
	}

	hash, err := g.jwtProvider.EncryptPassword(ctx, password)
	if err != nil {
		return "", errs.InternalError
	}

	user := &domain.Users{
		UserName:     userName,
		PasswordHash: &hash,
		Email:        &email,
		AuthProvider: string(domain.ProviderLocal),
	}
	if err := g.userPort.Create(ctx, user); err != nil {
		return "", errs.FailedToCreateUser
	}

	return generateToken(ctx, g.jwtProvider, user)
}

func generateToken(ctx context.Context, jwtProvider primary.JWTService, user *domain.Users) (string, error) {
	claims := map[string]interface{}{
		"sub":        user.ID.String(),
		"username":   user.UserName,
		"permission": []string{"judge.submit"},
	}
	token, err := jwtProvider.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, claims)
	if err != nil {
		return "", errs.GeneratingToken
	}
	return token, nil
}
