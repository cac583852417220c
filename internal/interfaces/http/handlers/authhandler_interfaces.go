package handlers

import (
	"context"

	identitydto "centro/internal/application/identity/dto"
	identityUsecases "centro/internal/application/identity/usecases"
)

// Narrow use case interface so handler tests can substitute a mock.
type loginExecutor interface {
	Execute(ctx context.Context, cmd identityUsecases.LoginCommand) (*identitydto.LoginResultDTO, error)
}
