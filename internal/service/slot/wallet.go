package slot

import (
	"context"
	"fmt"

	"slot_backend/internal/model"
	"slot_backend/internal/service"
)

// GrantFreeSpins - административное начисление фриспинов.
// При count <= 0 начисляется значение по умолчанию
func (s *serv) GrantFreeSpins(ctx context.Context, accountID int64, count int) (*model.Account, error) {
	if count <= 0 {
		count = model.DefaultFreeSpinGrant
	}

	acc, err := s.mutateAccount(ctx, accountID, func(acc *model.Account) {
		acc.AddFreeSpins(count)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithField("account_id", accountID).WithField("count", count).Info("free spins granted")
	return acc, nil
}

// AddCash - пополнение баланса. Верхняя граница на этом уровне не проверяется
func (s *serv) AddCash(ctx context.Context, accountID int64, amount int64) (*model.Account, error) {
	return s.mutateAccount(ctx, accountID, func(acc *model.Account) {
		acc.AddCash(amount)
	})
}

// Cashout - атомарно обнуляет баланс и возвращает снятую сумму.
// На нулевом балансе возвращает 0 без ошибки
func (s *serv) Cashout(ctx context.Context, accountID int64) (int64, error) {
	var amount int64

	_, err := s.mutateAccount(ctx, accountID, func(acc *model.Account) {
		amount = acc.Cashout()
	})
	if err != nil {
		return 0, err
	}

	s.log.WithField("account_id", accountID).WithField("amount", amount).Info("cashout")
	return amount, nil
}

// CanPlay - проверка играбельности без изменения состояния
func (s *serv) CanPlay(ctx context.Context, accountID int64) (bool, error) {
	acc, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return false, fmt.Errorf("failed to get account: %w", err)
	}
	if acc == nil {
		return false, service.ErrAccountNotFound
	}
	return acc.CanPlay(), nil
}

// mutateAccount - читает аккаунт под блокировкой, применяет мутацию
// и сохраняет результат одной транзакцией
func (s *serv) mutateAccount(ctx context.Context, accountID int64, mutate func(*model.Account)) (*model.Account, error) {
	var acc *model.Account

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		acc, err = s.accountRepo.GetByIDForUpdate(txCtx, accountID)
		if err != nil {
			return fmt.Errorf("failed to load account: %w", err)
		}
		if acc == nil {
			return service.ErrAccountNotFound
		}

		mutate(acc)

		if err := s.accountRepo.UpdateState(txCtx, acc); err != nil {
			return fmt.Errorf("failed to update account state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return acc, nil
}
