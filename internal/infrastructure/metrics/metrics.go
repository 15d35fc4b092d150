package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain event counters, registered on the default registry and exposed
// through the /metrics endpoint.
var (
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vibra_logins_total",
		Help: "Successful logins by method.",
	}, []string{"method"})

	LoginFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vibra_login_failures_total",
		Help: "Failed login attempts.",
	})

	Registrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vibra_registrations_total",
		Help: "New account registrations.",
	})

	FeedScrollEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vibra_feed_scroll_events_total",
		Help: "Feed scroll events handled.",
	})

	Likes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vibra_likes_total",
		Help: "Like toggles applied.",
	})

	Shares = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vibra_shares_total",
		Help: "Share actions applied.",
	})

	Withdrawals = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vibra_withdrawals_total",
		Help: "Simulated withdrawals by outcome.",
	}, []string{"outcome"})

	Uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vibra_uploads_total",
		Help: "Simulated uploads by outcome.",
	}, []string{"outcome"})
)
