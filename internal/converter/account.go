package converter

import (
	"slot_backend/internal/api/dto/account"
	"slot_backend/internal/model"
)

func ToAccountResponse(acc model.Account) account.AccountResponse {
	return account.AccountResponse{
		ID:         acc.ID,
		Name:       acc.Name,
		Balance:    acc.Balance,
		FreeSpins:  acc.FreeSpins,
		Multiplier: acc.Multiplier,
		CanPlay:    acc.CanPlay(),
		ModifiedAt: acc.ModifiedAt,
	}
}

func ToAccountResponses(accounts []model.Account) []account.AccountResponse {
	result := make([]account.AccountResponse, len(accounts))
	for i, acc := range accounts {
		result[i] = ToAccountResponse(acc)
	}
	return result
}
