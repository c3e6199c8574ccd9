package env

import (
	"errors"
	"fmt"
	"os"

	"slot_backend/internal/config"
	"slot_backend/internal/model"

	"gopkg.in/yaml.v3"
)

type slotConfig struct {
	symbols []model.Symbol
}

type slotYAML struct {
	Symbols []struct {
		Name   string `yaml:"name"`
		Payout int64  `yaml:"payout"`
		Weight int    `yaml:"weight"`
	} `yaml:"symbols"`
}

// NewSlotConfigFromYAML - читает таблицу символов по умолчанию из YAML.
// Если файла нет, используется встроенная таблица
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &slotConfig{symbols: builtinSymbols()}, nil
		}
		return nil, err
	}

	var doc slotYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse slot config: %w", err)
	}
	if len(doc.Symbols) == 0 {
		return nil, errors.New("slot config has no symbols")
	}

	symbols := make([]model.Symbol, 0, len(doc.Symbols))
	for _, s := range doc.Symbols {
		if s.Name == "" || s.Payout < 0 || s.Weight <= 0 {
			return nil, fmt.Errorf("invalid symbol entry %q in slot config", s.Name)
		}
		symbols = append(symbols, model.Symbol{
			Name:   s.Name,
			Payout: s.Payout,
			Weight: s.Weight,
		})
	}

	return &slotConfig{symbols: symbols}, nil
}

func (cfg *slotConfig) DefaultSymbols() []model.Symbol {
	return cfg.symbols
}

// builtinSymbols - классический набор из восьми символов.
// Выплаты в центах за 1.00 ставки, веса задают частоту выпадения
func builtinSymbols() []model.Symbol {
	return []model.Symbol{
		{Name: "Nine", Payout: 25, Weight: 256},
		{Name: "Ten", Payout: 50, Weight: 128},
		{Name: "Jack", Payout: 100, Weight: 64},
		{Name: "Queen", Payout: 200, Weight: 32},
		{Name: "King", Payout: 400, Weight: 16},
		{Name: "Ace", Payout: 800, Weight: 8},
		{Name: "Bonus", Payout: 0, Weight: 4},
		{Name: "Jackpot", Payout: 10000, Weight: 2},
	}
}
