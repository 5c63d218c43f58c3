package user

import (
	"context"
	"errors"

	"logistics-inventory-api/internal/config"
	domainUser "logistics-inventory-api/internal/domain/user"
	"logistics-inventory-api/internal/logger"
	appErrors "logistics-inventory-api/pkg/errors"
	"logistics-inventory-api/pkg/utils"

	"go.uber.org/zap"
)

// Service implements user and authentication use cases
type Service struct {
	userRepo domainUser.Repository
	jwtCfg   config.JWTConfig
}

func NewService(userRepo domainUser.Repository, jwtCfg config.JWTConfig) *Service {
	return &Service{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
	}
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Password does not meet requirements", err)
	}

	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, domainUser.ErrUsernameTaken
	} else if !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, domainUser.ErrEmailTaken
	} else if !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domainUser.RoleOperator
	}

	entity := &domainUser.User{
		Username:       req.Username,
		Email:          req.Email,
		FullName:       req.FullName,
		PasswordHashed: hashed,
		Role:           role,
	}
	if err := s.userRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		zap.Int64("user_id", entity.ID),
		zap.String("username", entity.Username),
		zap.String("role", entity.Role),
	)

	return toUserResponse(entity), nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}

	entity, err := s.userRepo.GetByUsername(ctx, req.Username)
	if errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, domainUser.ErrInvalidCredential
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPassword(entity.PasswordHashed, req.Password) {
		return nil, domainUser.ErrInvalidCredential
	}

	token, err := utils.GenerateToken(entity.ID, entity.Username, entity.Role, s.jwtCfg.Secret, s.jwtCfg.ExpiryHours)
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in", zap.Int64("user_id", entity.ID), zap.String("username", entity.Username))

	return &LoginResponse{
		Token: token,
		User:  toUserResponse(entity),
	}, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID int64, req *ChangePasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}
	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		return appErrors.NewAppError(appErrors.CodeValidationError, "Password does not meet requirements", err)
	}

	entity, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(entity.PasswordHashed, req.CurrentPassword) {
		return domainUser.ErrInvalidCredential
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	entity.PasswordHashed = hashed
	return s.userRepo.Update(ctx, entity)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*UserResponse, error) {
	entity, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(entity), nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, req *UpdateUserRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}

	entity, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Email = req.Email
	entity.FullName = req.FullName
	entity.Role = req.Role

	if err := s.userRepo.Update(ctx, entity); err != nil {
		return nil, err
	}
	return toUserResponse(entity), nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]*UserResponse, error) {
	entities, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*UserResponse, len(entities))
	for i, entity := range entities {
		responses[i] = toUserResponse(entity)
	}
	return responses, nil
}
