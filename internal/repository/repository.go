package repository

import (
	"context"

	"slot_backend/internal/model"
)

// Репозитории возвращают (nil, nil), если записи нет.
// Маппинг на доменные ошибки делает сервисный слой

type AccountRepository interface {
	Create(ctx context.Context, name string) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	// GetByIDForUpdate - читает аккаунт с блокировкой строки (SELECT ... FOR UPDATE).
	// Точка сериализации конкурентных спинов одного аккаунта
	GetByIDForUpdate(ctx context.Context, id int64) (*model.Account, error)
	GetByName(ctx context.Context, name string) (*model.Account, error)
	List(ctx context.Context) ([]model.Account, error)
	// UpdateState - сохраняет balance/free_spins/multiplier и обновляет modified_at
	UpdateState(ctx context.Context, acc *model.Account) error
}

type SymbolRepository interface {
	List(ctx context.Context) ([]model.Symbol, error)
	GetByID(ctx context.Context, id int) (*model.Symbol, error)
	Update(ctx context.Context, sym *model.Symbol) error
	// InsertIfAbsent - вставляет символ, если символа с таким именем еще нет
	InsertIfAbsent(ctx context.Context, sym model.Symbol) error
}

type SpinRepository interface {
	Create(ctx context.Context, rec *model.SpinRecord) error
	ListByAccount(ctx context.Context, accountID int64, limit int) ([]model.SpinRecord, error)
}
