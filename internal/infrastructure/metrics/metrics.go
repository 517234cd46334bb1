package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BotMetrics holds all lifecycle and delivery metrics.
type BotMetrics struct {
	TransitionsTotal         prometheus.CounterVec
	TransitionsDeniedTotal   prometheus.CounterVec
	SubmissionsTotal         prometheus.CounterVec
	SubmissionsRejectedTotal prometheus.Counter
	ProofUploadsTotal        prometheus.Counter
	NotificationsSentTotal   prometheus.CounterVec
	NotificationsFailedTotal prometheus.CounterVec
	BroadcastSentTotal       prometheus.Counter
	BroadcastFailedTotal     prometheus.Counter
	ActiveTransactionsGauge  prometheus.GaugeVec
}

func NewBotMetrics() *BotMetrics {
	return &BotMetrics{
		TransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rekber_transitions_total",
				Help: "Completed lifecycle transitions by action",
			},
			[]string{"action"},
		),

		TransitionsDeniedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rekber_transitions_denied_total",
				Help: "Transition attempts denied by role check or status guard",
			},
			[]string{"action", "reason"},
		),

		SubmissionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rekber_submissions_total",
				Help: "Transaction submissions by outcome",
			},
			[]string{"outcome"},
		),

		SubmissionsRejectedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rekber_submissions_rejected_total",
				Help: "Submissions rejected for missing required fields",
			},
		),

		ProofUploadsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rekber_proof_uploads_total",
				Help: "Payment proof files accepted",
			},
		),

		NotificationsSentTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rekber_notifications_sent_total",
				Help: "Notifications delivered by kind",
			},
			[]string{"kind"},
		),

		NotificationsFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rekber_notifications_failed_total",
				Help: "Notification deliveries that failed (never surfaced to the actor)",
			},
			[]string{"kind"},
		),

		BroadcastSentTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rekber_broadcast_sent_total",
				Help: "Broadcast messages delivered",
			},
		),

		BroadcastFailedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rekber_broadcast_failed_total",
				Help: "Broadcast messages that could not be delivered",
			},
		),

		ActiveTransactionsGauge: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rekber_transactions_by_status",
				Help: "Transactions currently in each status",
			},
			[]string{"status"},
		),
	}
}

func (m *BotMetrics) RecordTransition(action string) {
	m.TransitionsTotal.WithLabelValues(action).Inc()
}

func (m *BotMetrics) RecordTransitionDenied(action, reason string) {
	m.TransitionsDeniedTotal.WithLabelValues(action, reason).Inc()
}

func (m *BotMetrics) RecordSubmission(outcome string) {
	m.SubmissionsTotal.WithLabelValues(outcome).Inc()
	if outcome == "rejected" {
		m.SubmissionsRejectedTotal.Inc()
	}
}

func (m *BotMetrics) RecordProofUpload() {
	m.ProofUploadsTotal.Inc()
}

func (m *BotMetrics) RecordNotification(kind string, ok bool) {
	if ok {
		m.NotificationsSentTotal.WithLabelValues(kind).Inc()
	} else {
		m.NotificationsFailedTotal.WithLabelValues(kind).Inc()
	}
}

func (m *BotMetrics) RecordBroadcast(sent, failed int) {
	m.BroadcastSentTotal.Add(float64(sent))
	m.BroadcastFailedTotal.Add(float64(failed))
}

func (m *BotMetrics) SetTransactionsByStatus(status string, count int64) {
	m.ActiveTransactionsGauge.WithLabelValues(status).Set(float64(count))
}
