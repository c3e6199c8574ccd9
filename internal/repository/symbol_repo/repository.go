package symbol_repo

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
	table     = "symbols"
	colID     = "id"
	colName   = "name"
	colPayout = "payout"
	colWeight = "weight"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSymbolRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.SymbolRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// List - возвращает всю таблицу символов, упорядоченную по ID.
// Таблица маленькая, читается целиком на каждый спин
func (r *repo) List(ctx context.Context) ([]model.Symbol, error) {
	query := sq.Select(colID, colName, colPayout, colWeight).
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

	var symbols []model.Symbol
	for rows.Next() {
		var sym model.Symbol
		if err := rows.Scan(&sym.ID, &sym.Name, &sym.Payout, &sym.Weight); err != nil {
			return nil, err
		}
		symbols = append(symbols, sym)
	}
	return symbols, rows.Err()
}

// GetByID - возвращает символ по ID. Возвращает (nil, nil), если символа нет
func (r *repo) GetByID(ctx context.Context, id int) (*model.Symbol, error) {
	query := sq.Select(colID, colName, colPayout, colWeight).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var sym model.Symbol
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&sym.ID, &sym.Name, &sym.Payout, &sym.Weight)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sym, nil
}

// Update - сохраняет значение выплаты и вес символа.
// Административная операция, вне пути спина
func (r *repo) Update(ctx context.Context, sym *model.Symbol) error {
	query := sq.Update(table).
		Set(colPayout, sym.Payout).
		Set(colWeight, sym.Weight).
		Where(sq.Eq{colID: sym.ID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// InsertIfAbsent - вставляет символ, если записи с таким именем еще нет.
// Используется при сидинге таблицы по умолчанию
func (r *repo) InsertIfAbsent(ctx context.Context, sym model.Symbol) error {
	query := sq.Insert(table).
		Columns(colName, colPayout, colWeight).
		Values(sym.Name, sym.Payout, sym.Weight).
		Suffix("ON CONFLICT (" + colName + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
