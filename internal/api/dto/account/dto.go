package account

import "time"

type CreateAccountRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type AccountResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Balance    int64     `json:"balance"` // В центах
	FreeSpins  int       `json:"free_spins"`
	Multiplier int       `json:"multiplier"`
	CanPlay    bool      `json:"can_play"`
	ModifiedAt time.Time `json:"modified_at"`
}

type AddCashRequest struct {
	Amount int64 `json:"amount" validate:"gt=0"` // Сумма депозита в центах
}

type GrantFreeSpinsRequest struct {
	Count int `json:"count" validate:"gte=0"` // 0 означает значение по умолчанию
}

type CashoutResponse struct {
	Amount int64 `json:"amount"` // Снятая сумма в центах
}

type CanPlayResponse struct {
	CanPlay bool `json:"can_play"`
}
