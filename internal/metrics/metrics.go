package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "neurolearn"

// Metrics holds the Prometheus collectors reported by the learner services.
type Metrics struct {
	persistJobs         *prometheus.CounterVec
	persistDuration     prometheus.Histogram
	quizCompletions     prometheus.Counter
	pomodoroCompletions *prometheus.CounterVec
	energyLogs          prometheus.Counter
	liveSessions        prometheus.Gauge
	timerConnections    prometheus.Gauge
}

// New registers the collectors on reg. A nil reg uses a private registry,
// which keeps tests free of duplicate registration panics.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		persistJobs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "preferences",
				Name:      "persist_jobs_total",
				Help:      "Preference persistence jobs by result.",
			},
			[]string{"result"},
		),
		persistDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "preferences",
				Name:      "persist_duration_seconds",
				Help:      "Time spent writing one preference profile.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		quizCompletions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "quiz",
				Name:      "completions_total",
				Help:      "Onboarding quizzes completed.",
			},
		),
		pomodoroCompletions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pomodoro",
				Name:      "completions_total",
				Help:      "Pomodoro phases that ran to zero, by finished mode.",
			},
			[]string{"mode"},
		),
		energyLogs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "energy",
				Name:      "logs_total",
				Help:      "Energy check-ins recorded.",
			},
		),
		liveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "session",
				Name:      "live",
				Help:      "Learner sessions currently held in memory.",
			},
		),
		timerConnections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "pomodoro",
				Name:      "ws_connections",
				Help:      "Open live timer websocket connections.",
			},
		),
	}

	reg.MustRegister(
		m.persistJobs,
		m.persistDuration,
		m.quizCompletions,
		m.pomodoroCompletions,
		m.energyLogs,
		m.liveSessions,
		m.timerConnections,
	)
	return m
}

// NewNop returns collectors bound to a throwaway registry.
func NewNop() *Metrics {
	return New(nil)
}

func (m *Metrics) PersistSucceeded(seconds float64) {
	m.persistJobs.WithLabelValues("ok").Inc()
	m.persistDuration.Observe(seconds)
}

func (m *Metrics) PersistFailed(reason string) {
	m.persistJobs.WithLabelValues(reason).Inc()
}

func (m *Metrics) QuizCompleted() {
	m.quizCompletions.Inc()
}

func (m *Metrics) PomodoroCompleted(mode string) {
	m.pomodoroCompletions.WithLabelValues(mode).Inc()
}

func (m *Metrics) EnergyLogged() {
	m.energyLogs.Inc()
}

func (m *Metrics) SetLiveSessions(n int) {
	m.liveSessions.Set(float64(n))
}

func (m *Metrics) TimerConnected() {
	m.timerConnections.Inc()
}

func (m *Metrics) TimerDisconnected() {
	m.timerConnections.Dec()
}
