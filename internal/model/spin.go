package model

import (
	"time"

	"github.com/google/uuid"
)

// ReelCount - количество позиций в одном спине
const ReelCount = 3

// SpinRecord - запись о завершенном спине. После создания не изменяется
type SpinRecord struct {
	ID           uuid.UUID
	AccountID    int64
	Symbols      []string // Имена выпавших символов, ровно ReelCount штук
	Bet          int64
	Win          int64
	IsWin        bool
	UsedFreeSpin bool
	CreatedAt    time.Time
}

// SpinOutcome - результат оценки выпавших символов
type SpinOutcome struct {
	IsWin            bool
	WinAmount        int64
	BonusCount       int // Количество бонусных символов в спине (0-3)
	AwardedFreeSpins int
}
