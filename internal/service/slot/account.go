package slot

import (
	"context"
	"fmt"

	"slot_backend/internal/model"
	"slot_backend/internal/service"
)

// CreateOrGetAccount - идемпотентная регистрация по отображаемому имени.
// Повторная регистрация существующего имени возвращает существующий аккаунт
func (s *serv) CreateOrGetAccount(ctx context.Context, name string) (*model.Account, error) {
	var acc *model.Account

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		acc, err = s.accountRepo.GetByName(txCtx, name)
		if err != nil {
			return fmt.Errorf("failed to get account by name: %w", err)
		}
		if acc != nil {
			return nil
		}

		// Вставка ON CONFLICT DO NOTHING: при гонке двух регистраций
		// проигравшая получает nil и перечитывает существующую запись
		acc, err = s.accountRepo.Create(txCtx, name)
		if err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}
		if acc == nil {
			acc, err = s.accountRepo.GetByName(txCtx, name)
			if err != nil {
				return fmt.Errorf("failed to reread account: %w", err)
			}
			if acc == nil {
				return service.ErrAccountNotFound
			}
		} else {
			s.log.WithField("account_id", acc.ID).WithField("name", name).Info("account created")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return acc, nil
}

// GetAccount - возвращает аккаунт по ID
func (s *serv) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	acc, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acc == nil {
		return nil, service.ErrAccountNotFound
	}
	return acc, nil
}

// GetAccountByName - возвращает аккаунт по отображаемому имени
func (s *serv) GetAccountByName(ctx context.Context, name string) (*model.Account, error) {
	acc, err := s.accountRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get account by name: %w", err)
	}
	if acc == nil {
		return nil, service.ErrAccountNotFound
	}
	return acc, nil
}

// ListAccounts - возвращает все аккаунты
func (s *serv) ListAccounts(ctx context.Context) ([]model.Account, error) {
	return s.accountRepo.List(ctx)
}
