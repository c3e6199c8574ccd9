package symbol

type SymbolResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Payout int64  `json:"payout"` // В центах за 1.00 ставки
	Weight int    `json:"weight"`
}

type UpdateSymbolRequest struct {
	Payout int64 `json:"payout" validate:"gte=0"`
	Weight int   `json:"weight" validate:"gt=0"`
}
