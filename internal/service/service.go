package service

import (
	"context"

	"slot_backend/internal/model"
)

type SlotService interface {
	Spin(ctx context.Context, accountID int64, bet int64) (*model.SpinRecord, *model.Account, error)
	History(ctx context.Context, accountID int64, limit int) ([]model.SpinRecord, error)

	GrantFreeSpins(ctx context.Context, accountID int64, count int) (*model.Account, error)
	AddCash(ctx context.Context, accountID int64, amount int64) (*model.Account, error)
	Cashout(ctx context.Context, accountID int64) (int64, error)
	CanPlay(ctx context.Context, accountID int64) (bool, error)

	CreateOrGetAccount(ctx context.Context, name string) (*model.Account, error)
	GetAccount(ctx context.Context, id int64) (*model.Account, error)
	GetAccountByName(ctx context.Context, name string) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)
}

type SymbolService interface {
	List(ctx context.Context) ([]model.Symbol, error)
	Update(ctx context.Context, id int, payout int64, weight int) (*model.Symbol, error)
	EnsureDefaults(ctx context.Context, defaults []model.Symbol) error
}
