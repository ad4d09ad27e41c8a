package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchTotal counts best-action searches by side to move and mode
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tictactoe_search_total",
		Help: "Total best-action searches by player and mode",
	}, []string{"player", "mode"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tictactoe_search_duration_seconds",
		Help:    "Best-action search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
	}, []string{"mode"})

	// searchNodes tracks game-tree nodes visited per search
	searchNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tictactoe_search_nodes",
		Help:    "Game-tree nodes visited per best-action search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 11),
	})

	gamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tictactoe_games_finished_total",
		Help: "Finished bot games by outcome",
	}, []string{"outcome"})
)

// Recorder - the Prometheus sink used by the solver and the game manager.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (that *Recorder) ObserveSearch(player, mode string, duration time.Duration, nodes uint64) {
	searchTotal.WithLabelValues(player, mode).Inc()
	searchDuration.WithLabelValues(mode).Observe(duration.Seconds())
	searchNodes.Observe(float64(nodes))
}

func (that *Recorder) GameFinished(outcome string) {
	gamesFinished.WithLabelValues(outcome).Inc()
}
