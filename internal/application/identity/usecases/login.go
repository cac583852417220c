package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/identity/dto"
	"centro/internal/domain/identity"
	"centro/internal/shared/logger"
)

// TokenPair mirrors the issued token bundle without depending on the JWT
// implementation.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type TokenIssuer interface {
	Generate(user *identity.User) (*TokenPair, error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo       identity.Repository
	passwordHasher identity.PasswordHasher
	tokenIssuer    TokenIssuer
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo identity.Repository,
	passwordHasher identity.PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResultDTO, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, identity.ErrInvalidCredentials
	}

	user, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Missing user and wrong password fail identically so the endpoint never
	// reveals whether an email is registered.
	if user == nil {
		return nil, identity.ErrInvalidCredentials
	}

	if err := uc.passwordHasher.Verify(cmd.Password, user.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_sid", user.SID())
		return nil, identity.ErrInvalidCredentials
	}

	if user.Disabled() {
		return nil, identity.ErrUserDisabled
	}

	tokens, err := uc.tokenIssuer.Generate(user)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_sid", user.SID(), "error", err)
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "user_sid", user.SID(), "role", user.Role())

	return &dto.LoginResultDTO{
		User:         dto.ToUserDTO(user),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
