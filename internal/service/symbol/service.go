package symbol

import (
	"context"
	"fmt"

	"slot_backend/internal/model"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/sirupsen/logrus"
)

type serv struct {
	repo      repository.SymbolRepository
	txManager trm.Manager
	log       *logrus.Logger
}

// NewSymbolService - административный сервис таблицы символов
func NewSymbolService(repo repository.SymbolRepository, txManager trm.Manager, log *logrus.Logger) service.SymbolService {
	return &serv{
		repo:      repo,
		txManager: txManager,
		log:       log,
	}
}

// List - возвращает таблицу символов
func (s *serv) List(ctx context.Context) ([]model.Symbol, error) {
	return s.repo.List(ctx)
}

// Update - правка выплаты и веса символа. Выполняется вне пути спина
func (s *serv) Update(ctx context.Context, id int, payout int64, weight int) (*model.Symbol, error) {
	var sym *model.Symbol

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		sym, err = s.repo.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to get symbol: %w", err)
		}
		if sym == nil {
			return service.ErrSymbolNotFound
		}

		sym.Payout = payout
		sym.Weight = weight

		if err := s.repo.Update(txCtx, sym); err != nil {
			return fmt.Errorf("failed to update symbol: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"symbol": sym.Name,
		"payout": payout,
		"weight": weight,
	}).Info("symbol updated")

	return sym, nil
}

// EnsureDefaults - идемпотентный сидинг таблицы символов при старте.
// Существующие записи не трогаются, чтобы не перетирать административные правки
func (s *serv) EnsureDefaults(ctx context.Context, defaults []model.Symbol) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, sym := range defaults {
			if err := s.repo.InsertIfAbsent(txCtx, sym); err != nil {
				return fmt.Errorf("failed to seed symbol %q: %w", sym.Name, err)
			}
		}
		return nil
	})
}
