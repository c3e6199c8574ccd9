package spin_repo

import (
	"context"

	"slot_backend/internal/model"
	"slot_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "spins"
	colID           = "id"
	colAccountID    = "account_id"
	colSymbols      = "symbols"
	colBet          = "bet"
	colWin          = "win"
	colIsWin        = "is_win"
	colUsedFreeSpin = "used_free_spin"
	colCreatedAt    = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSpinRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.SpinRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// Create - вставляет запись о завершенном спине.
// Вызывается только внутри транзакции спина
func (r *repo) Create(ctx context.Context, rec *model.SpinRecord) error {
	query := sq.Insert(table).
		Columns(colID, colAccountID, colSymbols, colBet, colWin, colIsWin, colUsedFreeSpin, colCreatedAt).
		Values(rec.ID, rec.AccountID, rec.Symbols, rec.Bet, rec.Win, rec.IsWin, rec.UsedFreeSpin, rec.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// ListByAccount - возвращает последние спины аккаунта, новые первыми
func (r *repo) ListByAccount(ctx context.Context, accountID int64, limit int) ([]model.SpinRecord, error) {
	query := sq.Select(colID, colAccountID, colSymbols, colBet, colWin, colIsWin, colUsedFreeSpin, colCreatedAt).
		From(table).
		Where(sq.Eq{colAccountID: accountID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
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

	var records []model.SpinRecord
	for rows.Next() {
		var rec model.SpinRecord
		err := rows.Scan(&rec.ID, &rec.AccountID, &rec.Symbols, &rec.Bet, &rec.Win, &rec.IsWin, &rec.UsedFreeSpin, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
