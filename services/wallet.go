package services

import (
	"context"

	"go.uber.org/zap"

	"trainpay/models"
	"trainpay/store"
)

// Top-up bounds, inclusive, in currency minor units.
const (
	MinTopUp = 100
	MaxTopUp = 10000
)

// WalletService reads balances and applies bounded top-ups.
type WalletService struct {
	store  store.Store
	logger *zap.SugaredLogger
}

func NewWalletService(st store.Store, logger *zap.SugaredLogger) *WalletService {
	return &WalletService{store: st, logger: logger}
}

// Balance returns the wallet view for a user, or store.ErrNotFound.
func (s *WalletService) Balance(ctx context.Context, walletID int64) (*models.WalletView, error) {
	user, err := s.store.GetUser(ctx, walletID)
	if err != nil {
		return nil, err
	}
	return walletView(user), nil
}

// TopUp credits amount to the wallet. The wallet must exist and amount
// must lie in [MinTopUp, MaxTopUp]; existence is checked first, matching
// the endpoint's 404-before-400 ordering.
func (s *WalletService) TopUp(ctx context.Context, walletID, amount int64) (*models.WalletView, error) {
	user, err := s.store.GetUser(ctx, walletID)
	if err != nil {
		return nil, err
	}

	if amount < MinTopUp || amount > MaxTopUp {
		return nil, ErrInvalidAmount
	}

	balance, err := s.store.CreditBalance(ctx, walletID, amount)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("wallet recharged", "wallet_id", walletID, "amount", amount, "balance", balance)

	user.Balance = balance
	return walletView(user), nil
}

func walletView(user *models.User) *models.WalletView {
	return &models.WalletView{
		WalletID: user.UserID,
		Balance:  user.Balance,
		WalletUser: models.WalletUser{
			UserID:   user.UserID,
			UserName: user.UserName,
		},
	}
}
