package auth

import (
	"context"
	"strings"

	"gitlab.com/algoarena.net/internal/core/ports/primary"
	"gitlab.com/algoarena.net/internal/core/ports/secondary"
	"gitlab.com/algoarena.net/internal/domain"
	"gitlab.com/algoarena.net/internal/static/errs"
)

var _ IAuthService = (*googleAuthService)(nil)

type googleAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
}

func NewGoogleAuthService(userPort secondary.UserPort, jwtProvider primary.JWTService) IAuthService {
	return &googleAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
	}
}

func (g *googleAuthService) ProviderName() domain.Provider {
	return domain.ProviderGoogle
}

// Login signs in an existing Google-linked account or provisions one on the
// fly from the verified Google profile.
func (g *googleAuthService) Login(ctx context.Context, users *domain.Users) (string, error) {
	if users.GoogleID == nil {
		return "", errs.InvalidCredentials
	}
	if users.Email == nil {
		return "", errs.EmailRequired
	}

	usr, err := g.userPort.GetByGoogleID(ctx, *users.GoogleID)
	if err != nil {
		return "", err
	}
	if usr != nil {
		return generateToken(ctx, g.jwtProvider, usr)
	}

	users.PasswordHash = nil
	users.UserName = strings.Split(*users.Email, "@")[0]
	users.AuthProvider = string(domain.ProviderGoogle)
	if err := g.userPort.Create(ctx, users); err != nil {
		return "", errs.FailedToCreateUser
	}

	return generateToken(ctx, g.jwtProvider, users)
}
