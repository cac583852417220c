package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/identity/dto"
	"centro/internal/domain/identity"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
)

type CreateUserCommand struct {
	Email          string
	Password       string
	Name           string
	Role           string
	OrganizationID *uint
	ActivityID     *uint
}

type CreateUserUseCase struct {
	userRepo       identity.Repository
	passwordHasher identity.PasswordHasher
	logger         logger.Interface
}

func NewCreateUserUseCase(
	userRepo identity.Repository,
	passwordHasher identity.PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check existing user", "error", err)
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, identity.ErrEmailAlreadyExists
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := biztime.NowUTC()
	user, err := identity.NewUser(cmd.Email, hash, cmd.Name, identity.Role(cmd.Role), now)
	if err != nil {
		return nil, err
	}

	if cmd.OrganizationID != nil && cmd.ActivityID != nil {
		if err := user.AttachToTenant(*cmd.OrganizationID, *cmd.ActivityID, now); err != nil {
			return nil, err
		}
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user created", "user_sid", user.SID(), "role", user.Role())
	return dto.ToUserDTO(user), nil
}
