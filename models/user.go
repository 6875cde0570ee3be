package models

// User owns a cash wallet; Balance is in currency minor units and never
// goes negative as a result of a purchase.
type User struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
	Balance  int64  `json:"balance"`
}

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Balance  int64  `json:"balance"`
}

// WalletUser identifies the owner of a wallet in wallet views
type WalletUser struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
}

// WalletView represents a wallet as returned by the wallet endpoints
type WalletView struct {
	WalletID   int64      `json:"wallet_id"`
	Balance    int64      `json:"balance"`
	WalletUser WalletUser `json:"wallet_user"`
}

// TopUpRequest represents a wallet recharge request
type TopUpRequest struct {
	Recharge int64 `json:"recharge" binding:"required"`
}
