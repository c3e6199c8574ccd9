package slot

import (
	"slot_backend/internal/model"
	"slot_backend/internal/service"
)

// drawOne - выбирает один символ пропорционально весам.
// Равномерное число из [1, W] и проход по накопленным весам дают
// вероятность выбора weight/W для каждого символа
func (s *serv) drawOne(symbols []model.Symbol) (model.Symbol, error) {
	totalWeight := 0
	for _, sym := range symbols {
		totalWeight += sym.Weight
	}
	if len(symbols) == 0 || totalWeight <= 0 {
		return model.Symbol{}, service.ErrSymbolConfig
	}

	r := s.rng.Intn(totalWeight) + 1
	cumulative := 0
	for _, sym := range symbols {
		cumulative += sym.Weight
		if r <= cumulative {
			return sym, nil
		}
	}

	// Недостижимо: накопленная сумма покрывает весь диапазон [1, W]
	return symbols[len(symbols)-1], nil
}

// drawThree - три независимых выбора, повторы ожидаемы.
// Именно повторы и дают выигрышные комбинации
func (s *serv) drawThree(symbols []model.Symbol) ([model.ReelCount]model.Symbol, error) {
	var drawn [model.ReelCount]model.Symbol
	for i := 0; i < model.ReelCount; i++ {
		sym, err := s.drawOne(symbols)
		if err != nil {
			return drawn, err
		}
		drawn[i] = sym
	}
	return drawn, nil
}
