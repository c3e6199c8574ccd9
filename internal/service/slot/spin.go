package slot

import (
	"context"
	"fmt"
	"time"

	"slot_backend/internal/metrics"
	"slot_backend/internal/model"
	"slot_backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultHistoryLimit = 20

// Spin - выполняет спин с учетом баланса и фриспинов.
// Вся последовательность загрузка -> проверка -> розыгрыш -> оценка ->
// расчет -> запись выполняется одной транзакцией: блокировка строки
// аккаунта сериализует конкурентные спины, а откат транзакции гарантирует,
// что частичное применение никогда не будет видно
func (s *serv) Spin(ctx context.Context, accountID int64, bet int64) (*model.SpinRecord, *model.Account, error) {
	// Валидация ставки
	if bet <= 0 {
		return nil, nil, service.ErrInvalidBet
	}

	var (
		rec *model.SpinRecord
		acc *model.Account
	)

	// Начало транзакции, где выполняется процесс спина
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error

		// Загружаем аккаунт с блокировкой строки
		acc, err = s.accountRepo.GetByIDForUpdate(txCtx, accountID)
		if err != nil {
			return fmt.Errorf("failed to load account: %w", err)
		}
		if acc == nil {
			return service.ErrAccountNotFound
		}

		// Проверка играбельности. Ставка в проверке не участвует
		if !acc.CanPlay() {
			return service.ErrPlayNotAllowed
		}

		// Запоминаем до любых изменений, будет ли этот спин фриспином.
		// Начисленные этим же спином фриспины потратить нельзя
		usedFreeSpin := acc.FreeSpins > 0

		// Читаем таблицу символов и разыгрываем три позиции
		symbols, err := s.symbolRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("failed to load symbol table: %w", err)
		}
		drawn, err := s.drawThree(symbols)
		if err != nil {
			return err
		}

		// Оценка результата
		outcome := evaluate(drawn, bet)

		// Расчет. Порядок изменений важен:
		// сначала бонусные фриспины, затем списание, затем начисление выигрыша
		if outcome.AwardedFreeSpins > 0 {
			acc.AddFreeSpins(outcome.AwardedFreeSpins)
		}
		if usedFreeSpin {
			acc.ConsumeFreeSpin()
		} else {
			acc.Debit(bet)
		}
		acc.Credit(outcome.WinAmount)

		drawnNames := make([]string, model.ReelCount)
		for i, sym := range drawn {
			drawnNames[i] = sym.Name
		}

		rec = &model.SpinRecord{
			ID:           uuid.New(),
			AccountID:    acc.ID,
			Symbols:      drawnNames,
			Bet:          bet,
			Win:          outcome.WinAmount,
			IsWin:        outcome.IsWin,
			UsedFreeSpin: usedFreeSpin,
			CreatedAt:    time.Now().UTC(),
		}

		// Аккаунт и запись о спине коммитятся как единое целое
		if err := s.accountRepo.UpdateState(txCtx, acc); err != nil {
			return fmt.Errorf("failed to update account state: %w", err)
		}
		if err := s.spinRepo.Create(txCtx, rec); err != nil {
			return fmt.Errorf("failed to save spin record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	metrics.ObserveSpin(rec)

	s.log.WithFields(logrus.Fields{
		"account_id":     acc.ID,
		"symbols":        rec.Symbols,
		"bet":            rec.Bet,
		"win":            rec.Win,
		"is_win":         rec.IsWin,
		"used_free_spin": rec.UsedFreeSpin,
		"balance":        acc.Balance,
		"free_spins":     acc.FreeSpins,
	}).Info("spin settled")

	return rec, acc, nil
}

// History - возвращает последние спины аккаунта
func (s *serv) History(ctx context.Context, accountID int64, limit int) ([]model.SpinRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	acc, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if acc == nil {
		return nil, service.ErrAccountNotFound
	}

	return s.spinRepo.ListByAccount(ctx, accountID, limit)
}
