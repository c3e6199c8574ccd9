package config

import (
	"slot_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

// SlotConfig - конфигурация игры: таблица символов по умолчанию.
// Применяется идемпотентным сидингом при старте
type SlotConfig interface {
	DefaultSymbols() []model.Symbol
}
