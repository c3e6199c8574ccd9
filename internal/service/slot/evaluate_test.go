package slot

import (
	"testing"

	"slot_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func sym(name string, payout int64) model.Symbol {
	return model.Symbol{Name: name, Payout: payout}
}

func TestEvaluate_WinRule(t *testing.T) {
	ace := sym("Ace", 800)
	king := sym("King", 400)

	// Три одинаковых - выигрыш: 8.00 за 1.00 ставки
	out := evaluate([model.ReelCount]model.Symbol{ace, ace, ace}, 100)
	assert.True(t, out.IsWin)
	assert.Equal(t, int64(800), out.WinAmount)

	// Два из трех - проигрыш без выплаты
	out = evaluate([model.ReelCount]model.Symbol{ace, ace, king}, 100)
	assert.False(t, out.IsWin)
	assert.Equal(t, int64(0), out.WinAmount)
}

func TestEvaluate_PayoutScalesWithBet(t *testing.T) {
	queen := sym("Queen", 200)

	out := evaluate([model.ReelCount]model.Symbol{queen, queen, queen}, 250)
	assert.True(t, out.IsWin)
	assert.Equal(t, int64(500), out.WinAmount) // 2.00 * 2.50
}

func TestEvaluate_BonusTable(t *testing.T) {
	bonus := sym(model.BonusSymbolName, 0)
	nine := sym("Nine", 25)

	tests := []struct {
		name          string
		drawn         [model.ReelCount]model.Symbol
		expectedCount int
		expectedSpins int
	}{
		{"no bonus", [model.ReelCount]model.Symbol{nine, nine, nine}, 0, 0},
		{"one bonus", [model.ReelCount]model.Symbol{bonus, nine, nine}, 1, 5},
		{"two bonus", [model.ReelCount]model.Symbol{bonus, nine, bonus}, 2, 10},
		// Три бонусных дают 10, а не 15 - таблица нелинейна на максимуме
		{"three bonus", [model.ReelCount]model.Symbol{bonus, bonus, bonus}, 3, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := evaluate(tt.drawn, 100)
			assert.Equal(t, tt.expectedCount, out.BonusCount)
			assert.Equal(t, tt.expectedSpins, out.AwardedFreeSpins)
		})
	}
}

func TestEvaluate_BonusAwardedOnLosingSpin(t *testing.T) {
	bonus := sym(model.BonusSymbolName, 0)
	nine := sym("Nine", 25)
	ace := sym("Ace", 800)

	out := evaluate([model.ReelCount]model.Symbol{bonus, nine, ace}, 100)
	assert.False(t, out.IsWin)
	assert.Equal(t, int64(0), out.WinAmount)
	assert.Equal(t, 5, out.AwardedFreeSpins)
}

func TestEvaluate_ThreeBonusIsAlsoWin(t *testing.T) {
	bonus := sym(model.BonusSymbolName, 0)

	// Выигрыш и бонус считаются независимо по одному набору:
	// три бонусных - это и тройка (с нулевой выплатой), и максимум фриспинов
	out := evaluate([model.ReelCount]model.Symbol{bonus, bonus, bonus}, 100)
	assert.True(t, out.IsWin)
	assert.Equal(t, int64(0), out.WinAmount)
	assert.Equal(t, 10, out.AwardedFreeSpins)
}
