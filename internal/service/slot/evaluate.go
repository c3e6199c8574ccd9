package slot

import (
	"slot_backend/internal/model"
)

// freeSpinsByBonusCount - таблица начисления фриспинов за бонусные символы.
// За три бонусных начисляется 10, а не 15 - таблица сохранена как есть,
// нелинейность на максимуме является частью контракта
var freeSpinsByBonusCount = map[int]int{
	0: 0,
	1: 5,
	2: 10,
	3: 10,
}

// evaluate - оценивает выпавшие символы.
// Выигрыш и бонус считаются независимо по одному и тому же набору:
// спин выигрывает только при трех одинаковых именах, а фриспины
// начисляются за бонусные символы даже на проигрышном спине
func evaluate(drawn [model.ReelCount]model.Symbol, bet int64) model.SpinOutcome {
	var out model.SpinOutcome

	if drawn[0].Name == drawn[1].Name && drawn[1].Name == drawn[2].Name {
		out.IsWin = true
		// Payout задан в центах за 1.00 ставки
		out.WinAmount = drawn[0].Payout * bet / 100
	}

	for _, sym := range drawn {
		if sym.Name == model.BonusSymbolName {
			out.BonusCount++
		}
	}
	out.AwardedFreeSpins = freeSpinsByBonusCount[out.BonusCount]

	return out
}
