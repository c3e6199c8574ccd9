package converter

import (
	"slot_backend/internal/api/dto/game"
	"slot_backend/internal/model"
)

func ToSpinResponse(rec model.SpinRecord, acc model.Account) game.SpinResponse {
	return game.SpinResponse{
		GameID:       rec.ID.String(),
		Symbols:      rec.Symbols,
		BetAmount:    rec.Bet,
		WinAmount:    rec.Win,
		IsWin:        rec.IsWin,
		UsedFreeSpin: rec.UsedFreeSpin,
		SpinTime:     rec.CreatedAt,
		Account: game.AccountState{
			ID:         acc.ID,
			Balance:    acc.Balance,
			FreeSpins:  acc.FreeSpins,
			Multiplier: acc.Multiplier,
			CanPlay:    acc.CanPlay(),
		},
	}
}

func ToHistoryResponse(records []model.SpinRecord) []game.HistoryItem {
	result := make([]game.HistoryItem, len(records))
	for i, rec := range records {
		result[i] = game.HistoryItem{
			GameID:       rec.ID.String(),
			Symbols:      rec.Symbols,
			BetAmount:    rec.Bet,
			WinAmount:    rec.Win,
			IsWin:        rec.IsWin,
			UsedFreeSpin: rec.UsedFreeSpin,
			SpinTime:     rec.CreatedAt,
		}
	}
	return result
}
