package service

import "errors"

// Ошибки игрового ядра. Все три восстановимы на стороне вызывающего
// и не должны ронять процесс
var (
	// ErrAccountNotFound - аккаунт с таким ID или именем не найден
	ErrAccountNotFound = errors.New("account not found")
	// ErrPlayNotAllowed - нет фриспинов и баланс ниже порога играбельности
	ErrPlayNotAllowed = errors.New("account cannot play: insufficient balance and no free spins")
	// ErrSymbolConfig - таблица символов пуста или суммарный вес нулевой.
	// Это дефект конфигурации, а не ошибка запроса
	ErrSymbolConfig = errors.New("symbol table is empty or has zero total weight")
)

var (
	// ErrInvalidBet - ставка должна быть положительной
	ErrInvalidBet = errors.New("bet must be positive")
	// ErrSymbolNotFound - символ с таким ID не найден
	ErrSymbolNotFound = errors.New("symbol not found")
)
