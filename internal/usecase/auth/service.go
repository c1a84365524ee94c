package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"product-inventory-api/internal/config"
	domainUser "product-inventory-api/internal/domain/user"
	"product-inventory-api/internal/logger"
	appErrors "product-inventory-api/pkg/errors"
	"product-inventory-api/pkg/utils"
)

// Service implements the login and registration flows.
type Service struct {
	userRepo domainUser.Repository
	jwtCfg   *config.JWTConfig
}

func NewService(userRepo domainUser.Repository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		jwtCfg:   &cfg.JWT,
	}
}

// Login verifies credentials and issues an access token. An absent user, a
// wrong password and an inactive account all return the same generic error
// so the caller cannot tell which case occurred.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, appErrors.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, appErrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateToken(user.ID, user.Username, s.jwtCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: UserInfo{
			ID:       user.ID,
			Username: user.Username,
		},
	}, nil
}

// Register validates the request (including the confirm-password match)
// before touching the repository, then hashes the password and persists a new
// active user. The unique index on username backs the existence check.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, appErrors.ErrUserAlreadyExists
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domainUser.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, expiresAt, err := utils.GenerateToken(user.ID, user.Username, s.jwtCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: UserInfo{
			ID:       user.ID,
			Username: user.Username,
		},
	}, nil
}
