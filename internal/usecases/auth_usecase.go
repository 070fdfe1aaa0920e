package usecases

import (
	"context"

	"ghala.backend/internal/domain/entities"
	domainerrors "ghala.backend/internal/domain/errors"
	"ghala.backend/internal/domain/repositories"
	"ghala.backend/pkg/crypto"
	"ghala.backend/pkg/jwt"
)

// AuthUsecase handles login
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, jwtService: jwtService}
}

// Login verifies the credentials and issues a token pair. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.User, *jwt.TokenPair, error) {
	user, err := u.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, nil, domainerrors.Unauthorized("invalid username or password")
		}
		return nil, nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, nil, domainerrors.Unauthorized("invalid username or password")
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.Username, string(user.Role), user.MerchantID)
	if err != nil {
		return nil, nil, domainerrors.InternalError(err)
	}

	return user, tokens, nil
}
