package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks request latency per route template
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fervo_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
			Buckets: []float64{
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
				5.0,   // 5s
			},
		},
		[]string{"method", "route", "status"},
	)

	CheckIns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fervo_check_ins_total",
			Help: "Check-in attempts by result",
		},
		[]string{"result"}, // ok, malformed_payload, event_not_found, invalid_token, already_checked_in, error
	)

	Shares = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fervo_shares_total",
			Help: "Recorded shares by reward outcome",
		},
		[]string{"outcome"}, // rewarded, sharing_disabled, event_ended
	)

	CouponsMinted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fervo_coupons_minted_total",
			Help: "Coupons minted by share-to-earn",
		},
	)

	CouponsRedeemed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fervo_coupon_redemptions_total",
			Help: "Coupon redemption attempts by result",
		},
		[]string{"result"},
	)

	OutboxDispatch = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fervo_outbox_dispatch_total",
			Help: "Outbox job dispatch results",
		},
		[]string{"kind", "result"}, // result: done, retry, failed
	)
)

func RecordHTTPRequest(method, route, status string, seconds float64) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

func RecordCheckIn(result string) {
	CheckIns.WithLabelValues(result).Inc()
}

func RecordShare(outcome string, couponsMinted int) {
	Shares.WithLabelValues(outcome).Inc()
	if couponsMinted > 0 {
		CouponsMinted.Add(float64(couponsMinted))
	}
}

func RecordRedemption(result string) {
	CouponsRedeemed.WithLabelValues(result).Inc()
}

func RecordOutboxDispatch(kind, result string) {
	OutboxDispatch.WithLabelValues(kind, result).Inc()
}
