package slot

import (
	"slot_backend/internal/repository"
	"slot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/sirupsen/logrus"
)

type serv struct {
	accountRepo repository.AccountRepository
	symbolRepo  repository.SymbolRepository
	spinRepo    repository.SpinRepository
	txManager   trm.Manager
	rng         Rand
	log         *logrus.Logger
}

// NewSlotService - создать сервис слот-машины с одним набором барабанов.
// Источник случайности передается явно, чтобы тесты могли сидировать его
func NewSlotService(
	accountRepo repository.AccountRepository,
	symbolRepo repository.SymbolRepository,
	spinRepo repository.SpinRepository,
	txManager trm.Manager,
	rng Rand,
	log *logrus.Logger,
) service.SlotService {
	return &serv{
		accountRepo: accountRepo,
		symbolRepo:  symbolRepo,
		spinRepo:    spinRepo,
		txManager:   txManager,
		rng:         rng,
		log:         log,
	}
}
