package game

import "time"

type SpinRequest struct {
	BetAmount int64 `json:"bet_amount" validate:"gt=0"` // Ставка в центах
}

type SpinResponse struct {
	GameID       string       `json:"game_id"`
	Symbols      []string     `json:"symbols"`        // Выпавшие символы, по порядку
	BetAmount    int64        `json:"bet_amount"`     // Ставка в центах
	WinAmount    int64        `json:"win_amount"`     // Выигрыш в центах
	IsWin        bool         `json:"is_win"`
	UsedFreeSpin bool         `json:"used_free_spin"`
	SpinTime     time.Time    `json:"spin_time"`
	Account      AccountState `json:"account"` // Состояние аккаунта после спина
}

type AccountState struct {
	ID         int64 `json:"id"`
	Balance    int64 `json:"balance"`
	FreeSpins  int   `json:"free_spins"`
	Multiplier int   `json:"multiplier"`
	CanPlay    bool  `json:"can_play"`
}

type HistoryItem struct {
	GameID       string    `json:"game_id"`
	Symbols      []string  `json:"symbols"`
	BetAmount    int64     `json:"bet_amount"`
	WinAmount    int64     `json:"win_amount"`
	IsWin        bool      `json:"is_win"`
	UsedFreeSpin bool      `json:"used_free_spin"`
	SpinTime     time.Time `json:"spin_time"`
}
