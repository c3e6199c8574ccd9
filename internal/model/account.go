package model

import "time"

// Все суммы хранятся в центах
const (
	// DefaultBalance - стартовый баланс нового аккаунта (10.00)
	DefaultBalance int64 = 1000
	// MinPlayableAmount - порог играбельности для платного спина (1.00)
	MinPlayableAmount int64 = 100
	// DefaultFreeSpinGrant - количество фриспинов при административном начислении
	DefaultFreeSpinGrant = 10
)

type Account struct {
	ID         int64
	Name       string
	Balance    int64 // В центах
	FreeSpins  int
	Multiplier int // В диапазоне [1,10], участвует только в проверке играбельности
	ModifiedAt time.Time
}

// CanPlay - проверяет, может ли аккаунт начать спин.
// Проверка не зависит от размера ставки: достаточно фриспина
// или balance*multiplier не ниже фиксированного порога
func (a *Account) CanPlay() bool {
	return a.FreeSpins > 0 || a.Balance*int64(a.Multiplier) >= MinPlayableAmount
}

// ConsumeFreeSpin - списывает один фриспин, если он есть.
// Возвращает true при списании; иначе вызывающий списывает ставку с баланса
func (a *Account) ConsumeFreeSpin() bool {
	if a.FreeSpins > 0 {
		a.FreeSpins--
		return true
	}
	return false
}

// Debit - списывает ставку с баланса
func (a *Account) Debit(amount int64) {
	a.Balance -= amount
}

// Credit - начисляет выигрыш на баланс. Нулевой выигрыш тоже начисляется
func (a *Account) Credit(amount int64) {
	a.Balance += amount
}

// AddFreeSpins - добавляет фриспины
func (a *Account) AddFreeSpins(count int) {
	a.FreeSpins += count
}

// AddCash - пополняет баланс
func (a *Account) AddCash(amount int64) {
	a.Balance += amount
}

// Cashout - обнуляет баланс и возвращает снятую сумму.
// На пустом балансе возвращает 0 без ошибки
func (a *Account) Cashout() int64 {
	amount := a.Balance
	a.Balance = 0
	return amount
}
