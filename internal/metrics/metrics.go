package metrics

import (
	"slot_backend/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slot_spins_total",
			Help: "Completed spins by result",
		},
		[]string{"result"},
	)

	BetCentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slot_bet_cents_total",
			Help: "Total amount bet, in cents",
		},
	)

	WinCentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slot_win_cents_total",
			Help: "Total amount paid out, in cents",
		},
	)

	FreeSpinsUsedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slot_free_spins_used_total",
			Help: "Spins paid with a free spin credit",
		},
	)
)

// ObserveSpin - учитывает завершенный спин в счетчиках
func ObserveSpin(rec *model.SpinRecord) {
	result := "loss"
	if rec.IsWin {
		result = "win"
	}
	SpinsTotal.WithLabelValues(result).Inc()
	BetCentsTotal.Add(float64(rec.Bet))
	WinCentsTotal.Add(float64(rec.Win))
	if rec.UsedFreeSpin {
		FreeSpinsUsedTotal.Inc()
	}
}
