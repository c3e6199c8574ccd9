package slot

import (
	"context"
	"errors"

	"slot_backend/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// memStore - общее состояние для фейковых репозиториев.
// Имитирует БД: чтение отдает копию, запись сохраняет копию.
type memStore struct {
	account        *model.Account
	spins          []model.SpinRecord
	failSpinCreate error
}

func newMemStore(acc *model.Account) *memStore {
	cp := *acc
	return &memStore{account: &cp}
}

func (s *memStore) snapshot() (model.Account, []model.SpinRecord) {
	spins := make([]model.SpinRecord, len(s.spins))
	copy(spins, s.spins)
	return *s.account, spins
}

func (s *memStore) restore(acc model.Account, spins []model.SpinRecord) {
	s.account = &acc
	s.spins = spins
}

// rollbackTxManager - откатывает memStore, если функция транзакции вернула ошибку
type rollbackTxManager struct {
	store *memStore
}

func (m *rollbackTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	acc, spins := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.restore(acc, spins)
		return err
	}
	return nil
}

func (m *rollbackTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type memAccountRepo struct {
	store *memStore
}

func (r *memAccountRepo) Create(_ context.Context, _ string) (*model.Account, error) {
	return nil, errors.New("not implemented")
}

func (r *memAccountRepo) GetByID(_ context.Context, id int64) (*model.Account, error) {
	return r.GetByIDForUpdate(context.Background(), id)
}

func (r *memAccountRepo) GetByIDForUpdate(_ context.Context, id int64) (*model.Account, error) {
	if r.store.account == nil || r.store.account.ID != id {
		return nil, nil
	}
	cp := *r.store.account
	return &cp, nil
}

func (r *memAccountRepo) GetByName(_ context.Context, _ string) (*model.Account, error) {
	return nil, nil
}

func (r *memAccountRepo) List(_ context.Context) ([]model.Account, error) {
	if r.store.account == nil {
		return nil, nil
	}
	return []model.Account{*r.store.account}, nil
}

func (r *memAccountRepo) UpdateState(_ context.Context, acc *model.Account) error {
	cp := *acc
	r.store.account = &cp
	return nil
}

type memSymbolRepo struct {
	symbols []model.Symbol
}

func (r *memSymbolRepo) List(_ context.Context) ([]model.Symbol, error) {
	return r.symbols, nil
}

func (r *memSymbolRepo) GetByID(_ context.Context, id int) (*model.Symbol, error) {
	for _, s := range r.symbols {
		if s.ID == id {
			cp := s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memSymbolRepo) Update(_ context.Context, _ *model.Symbol) error {
	return errors.New("not implemented")
}

func (r *memSymbolRepo) InsertIfAbsent(_ context.Context, _ model.Symbol) error {
	return errors.New("not implemented")
}

type memSpinRepo struct {
	store *memStore
}

func (r *memSpinRepo) Create(_ context.Context, rec *model.SpinRecord) error {
	if r.store.failSpinCreate != nil {
		return r.store.failSpinCreate
	}
	r.store.spins = append(r.store.spins, *rec)
	return nil
}

func (r *memSpinRepo) ListByAccount(_ context.Context, accountID int64, limit int) ([]model.SpinRecord, error) {
	var out []model.SpinRecord
	for i := len(r.store.spins) - 1; i >= 0 && len(out) < limit; i-- {
		if r.store.spins[i].AccountID == accountID {
			out = append(out, r.store.spins[i])
		}
	}
	return out, nil
}
