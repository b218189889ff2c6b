package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	smsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_sent_total",
			Help: "Messages accepted by the transport, per kind.",
		},
		[]string{"kind"},
	)

	smsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_failed_total",
			Help: "Messages the transport rejected, per kind; credit refunded.",
		},
		[]string{"kind"},
	)

	creditsDebited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "credits_debited_total",
			Help: "Net credits debited across both pools.",
		},
	)

	creditsRefunded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "credits_refunded_total",
			Help: "Credits returned after transport failures.",
		},
	)

	bulkPrecheckBlocks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bulk_precheck_blocks_total",
			Help: "Bulk sends rejected upfront by the affordability gate.",
		},
	)
)

func init() {
	register(smsSent, smsFailed, creditsDebited, creditsRefunded, bulkPrecheckBlocks)
}

func IncSMSSent(kind string)   { smsSent.WithLabelValues(kind).Inc() }
func IncSMSFailed(kind string) { smsFailed.WithLabelValues(kind).Inc() }
func IncBulkPrecheckBlocks()   { bulkPrecheckBlocks.Inc() }

func AddCreditsDebited(n int) {
	if n > 0 {
		creditsDebited.Add(float64(n))
	}
}

func AddCreditsRefunded(n int) {
	if n > 0 {
		creditsRefunded.Add(float64(n))
	}
}
