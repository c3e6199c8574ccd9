package slot

import (
	"context"
	"io"

	"slot_backend/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

// txManagerStub - выполняет функцию транзакции как есть, без БД
type txManagerStub struct{}

func (txManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (txManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// seqRand - детерминированная последовательность значений
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// MockAccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, name string) (*model.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, id int64) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByName(ctx context.Context, name string) (*model.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]model.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateState(ctx context.Context, acc *model.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

// MockSymbolRepository
type MockSymbolRepository struct {
	mock.Mock
}

func (m *MockSymbolRepository) List(ctx context.Context) ([]model.Symbol, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Symbol), args.Error(1)
}

func (m *MockSymbolRepository) GetByID(ctx context.Context, id int) (*model.Symbol, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Symbol), args.Error(1)
}

func (m *MockSymbolRepository) Update(ctx context.Context, sym *model.Symbol) error {
	args := m.Called(ctx, sym)
	return args.Error(0)
}

func (m *MockSymbolRepository) InsertIfAbsent(ctx context.Context, sym model.Symbol) error {
	args := m.Called(ctx, sym)
	return args.Error(0)
}

// MockSpinRepository
type MockSpinRepository struct {
	mock.Mock
}

func (m *MockSpinRepository) Create(ctx context.Context, rec *model.SpinRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockSpinRepository) ListByAccount(ctx context.Context, accountID int64, limit int) ([]model.SpinRecord, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SpinRecord), args.Error(1)
}
