package converter

import (
	"slot_backend/internal/api/dto/symbol"
	"slot_backend/internal/model"
)

func ToSymbolResponse(sym model.Symbol) symbol.SymbolResponse {
	return symbol.SymbolResponse{
		ID:     sym.ID,
		Name:   sym.Name,
		Payout: sym.Payout,
		Weight: sym.Weight,
	}
}

func ToSymbolResponses(symbols []model.Symbol) []symbol.SymbolResponse {
	result := make([]symbol.SymbolResponse, len(symbols))
	for i, sym := range symbols {
		result[i] = ToSymbolResponse(sym)
	}
	return result
}
