package model

// BonusSymbolName - имя символа, за который начисляются фриспины
const BonusSymbolName = "Bonus"

type Symbol struct {
	ID     int
	Name   string
	Payout int64 // Выплата в центах за 1.00 ставки при трех одинаковых
	Weight int   // Относительная частота выпадения, не вероятность
}
