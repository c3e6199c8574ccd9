package slot

import (
	"context"
	"math/rand"
	"testing"

	"slot_backend/internal/model"
	"slot_backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrGetAccount_NewAccount(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	symbolRepo := new(MockSymbolRepository)
	spinRepo := new(MockSpinRepository)

	created := &model.Account{ID: 7, Name: "alice", Balance: model.DefaultBalance, Multiplier: 1}
	accountRepo.On("GetByName", mock.Anything, "alice").Return(nil, nil).Once()
	accountRepo.On("Create", mock.Anything, "alice").Return(created, nil).Once()

	s := newTestService(accountRepo, symbolRepo, spinRepo)

	acc, err := s.CreateOrGetAccount(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(7), acc.ID)
	assert.Equal(t, int64(model.DefaultBalance), acc.Balance)

	accountRepo.AssertExpectations(t)
}

func TestCreateOrGetAccount_ExistingNameReturnsSameAccount(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	symbolRepo := new(MockSymbolRepository)
	spinRepo := new(MockSpinRepository)

	existing := &model.Account{ID: 7, Name: "alice", Balance: 340, Multiplier: 1}
	accountRepo.On("GetByName", mock.Anything, "alice").Return(existing, nil)

	s := newTestService(accountRepo, symbolRepo, spinRepo)

	// Повторная регистрация не создает второй аккаунт и не трогает баланс
	acc, err := s.CreateOrGetAccount(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(7), acc.ID)
	assert.Equal(t, int64(340), acc.Balance)

	accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrGetAccount_LosesInsertRace(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	symbolRepo := new(MockSymbolRepository)
	spinRepo := new(MockSpinRepository)

	winner := &model.Account{ID: 9, Name: "bob", Balance: model.DefaultBalance, Multiplier: 1}
	accountRepo.On("GetByName", mock.Anything, "bob").Return(nil, nil).Once()
	// ON CONFLICT DO NOTHING: вставка вернула nil, перечитываем победителя
	accountRepo.On("Create", mock.Anything, "bob").Return(nil, nil).Once()
	accountRepo.On("GetByName", mock.Anything, "bob").Return(winner, nil).Once()

	s := newTestService(accountRepo, symbolRepo, spinRepo)

	acc, err := s.CreateOrGetAccount(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(9), acc.ID)

	accountRepo.AssertExpectations(t)
}

func TestGrantFreeSpins_DefaultCount(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	symbolRepo := new(MockSymbolRepository)
	spinRepo := new(MockSpinRepository)

	acc := &model.Account{ID: 1, Balance: 500, Multiplier: 1}
	accountRepo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(acc, nil)
	accountRepo.On("UpdateState", mock.Anything, acc).Return(nil)

	s := newTestService(accountRepo, symbolRepo, spinRepo)

	after, err := s.GrantFreeSpins(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultFreeSpinGrant, after.FreeSpins)
}

func TestGrantFreeSpins_ExplicitCount(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	symbolRepo := new(MockSymbolRepository)
	spinRepo := new(MockSpinRepository)

	acc := &model.Account{ID: 1, FreeSpins: 2, Multiplier: 1}
	accountRepo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(acc, nil)
	accountRepo.On("UpdateState", mock.Anything, acc).Return(nil)

	s := newTestService(accountRepo, symbolRepo, spinRepo)

	after, err := s.GrantFreeSpins(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, after.FreeSpins)
}

func TestCashout_DrainsBalance(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	symbolRepo := new(MockSymbolRepository)
	spinRepo := new(MockSpinRepository)

	acc := &model.Account{ID: 1, Balance: 750, Multiplier: 1}
	accountRepo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(acc, nil)
	accountRepo.On("UpdateState", mock.Anything, acc).Return(nil)

	s := newTestService(accountRepo, symbolRepo, spinRepo)

	amount, err := s.Cashout(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(750), amount)
	assert.Equal(t, int64(0), acc.Balance)

	// Повторный кэшаут на пустом балансе возвращает 0 без ошибки
	amount, err = s.Cashout(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), amount)
}

func TestAddCash_IncreasesBalance(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	symbolRepo := new(MockSymbolRepository)
	spinRepo := new(MockSpinRepository)

	acc := &model.Account{ID: 1, Balance: 100, Multiplier: 1}
	accountRepo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(acc, nil)
	accountRepo.On("UpdateState", mock.Anything, acc).Return(nil)

	s := newTestService(accountRepo, symbolRepo, spinRepo)

	after, err := s.AddCash(context.Background(), 1, 250)
	require.NoError(t, err)
	assert.Equal(t, int64(350), after.Balance)
}

func TestCanPlay_AccountMissing(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	symbolRepo := new(MockSymbolRepository)
	spinRepo := new(MockSpinRepository)

	accountRepo.On("GetByID", mock.Anything, int64(5)).Return(nil, nil)

	s := newTestService(accountRepo, symbolRepo, spinRepo)

	_, err := s.CanPlay(context.Background(), 5)
	assert.ErrorIs(t, err, service.ErrAccountNotFound)
}

func TestHistory_DefaultLimit(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	symbolRepo := new(MockSymbolRepository)
	spinRepo := new(MockSpinRepository)

	acc := &model.Account{ID: 1, Multiplier: 1}
	accountRepo.On("GetByID", mock.Anything, int64(1)).Return(acc, nil)
	spinRepo.On("ListByAccount", mock.Anything, int64(1), defaultHistoryLimit).Return([]model.SpinRecord{}, nil)

	s := NewSlotService(accountRepo, symbolRepo, spinRepo, txManagerStub{}, rand.New(rand.NewSource(1)), quietLogger())

	_, err := s.History(context.Background(), 1, 0)
	require.NoError(t, err)
	spinRepo.AssertExpectations(t)
}
