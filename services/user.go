package services

import (
	"context"

	"go.uber.org/zap"

	"trainpay/models"
	"trainpay/store"
)

// UserService creates wallet-owning users.
type UserService struct {
	store  store.Store
	logger *zap.SugaredLogger
}

func NewUserService(st store.Store, logger *zap.SugaredLogger) *UserService {
	return &UserService{store: st, logger: logger}
}

// Create inserts a user and returns it with its assigned id.
func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	user, err := s.store.CreateUser(ctx, req.UserName, req.Balance)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("user created", "user_id", user.UserID, "user_name", user.UserName)
	return user, nil
}
