package slot

import (
	"math/rand"
	"sync"
)

// Rand - источник равномерных случайных чисел для выбора символов.
// Реализация должна быть безопасна при конкурентных спинах
type Rand interface {
	Intn(n int) int
}

// NewLockedRand - сидированный источник, безопасный для конкурентного использования
func NewLockedRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
