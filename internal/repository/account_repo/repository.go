package account_repo

import (
	"context"
	"errors"

	"slot_backend/internal/model"
	"slot_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "accounts"
	colID         = "id"
	colName       = "name"
	colBalance    = "balance"
	colFreeSpins  = "free_spins"
	colMultiplier = "multiplier"
	colModifiedAt = "modified_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAccountRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.AccountRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// Create - создает новый аккаунт со значениями по умолчанию.
// Возвращает (nil, nil), если имя уже занято
func (r *repo) Create(ctx context.Context, name string) (*model.Account, error) {
	query := sq.Insert(table).
		Columns(colName).
		Values(name).
		Suffix("ON CONFLICT (" + colName + ") DO NOTHING RETURNING " +
			colID + ", " + colName + ", " + colBalance + ", " + colFreeSpins + ", " + colMultiplier + ", " + colModifiedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanAccount(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
}

// GetByID - возвращает аккаунт по ID
func (r *repo) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	return r.getOne(ctx, sq.Eq{colID: id}, false)
}

// GetByIDForUpdate - возвращает аккаунт по ID с блокировкой строки.
// Конкурентные спины одного аккаунта сериализуются на этой блокировке
func (r *repo) GetByIDForUpdate(ctx context.Context, id int64) (*model.Account, error) {
	return r.getOne(ctx, sq.Eq{colID: id}, true)
}

// GetByName - возвращает аккаунт по отображаемому имени
func (r *repo) GetByName(ctx context.Context, name string) (*model.Account, error) {
	return r.getOne(ctx, sq.Eq{colName: name}, false)
}

// List - возвращает все аккаунты, упорядоченные по ID
func (r *repo) List(ctx context.Context) ([]model.Account, error) {
	query := sq.Select(colID, colName, colBalance, colFreeSpins, colMultiplier, colModifiedAt).
		From(table).
		OrderBy(colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.Balance, &acc.FreeSpins, &acc.Multiplier, &acc.ModifiedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// UpdateState - сохраняет изменяемые поля аккаунта.
// modified_at выставляется на момент коммита
func (r *repo) UpdateState(ctx context.Context, acc *model.Account) error {
	query := sq.Update(table).
		Set(colBalance, acc.Balance).
		Set(colFreeSpins, acc.FreeSpins).
		Set(colMultiplier, acc.Multiplier).
		Set(colModifiedAt, sq.Expr("now()")).
		Where(sq.Eq{colID: acc.ID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errors.New("account row not found on update")
	}
	return nil
}

func (r *repo) getOne(ctx context.Context, where sq.Eq, forUpdate bool) (*model.Account, error) {
	query := sq.Select(colID, colName, colBalance, colFreeSpins, colMultiplier, colModifiedAt).
		From(table).
		Where(where).
		PlaceholderFormat(sq.Dollar)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanAccount(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
}

func (r *repo) scanAccount(row pgx.Row) (*model.Account, error) {
	var acc model.Account
	err := row.Scan(&acc.ID, &acc.Name, &acc.Balance, &acc.FreeSpins, &acc.Multiplier, &acc.ModifiedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &acc, nil
}
