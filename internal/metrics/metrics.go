// Package metrics registers the application's Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	UsersRegistered prometheus.Counter
	Logins          prometheus.Counter
	TokenRefreshes  prometheus.Counter
	ListsCreated    prometheus.Counter
	ListsShared     prometheus.Counter
}

// New creates all Prometheus metrics and registers them with the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates all Prometheus metrics against the given registerer.
// Tests pass a fresh registry so repeated construction never collides.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "shopsync_users_registered_total",
			Help: "Total number of user accounts registered",
		}),
		Logins: factory.NewCounter(prometheus.CounterOpts{
			Name: "shopsync_logins_total",
			Help: "Total number of successful logins",
		}),
		TokenRefreshes: factory.NewCounter(prometheus.CounterOpts{
			Name: "shopsync_token_refreshes_total",
			Help: "Total number of successful access token refreshes",
		}),
		ListsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "shopsync_lists_created_total",
			Help: "Total number of shopping lists created",
		}),
		ListsShared: factory.NewCounter(prometheus.CounterOpts{
			Name: "shopsync_lists_shared_total",
			Help: "Total number of sharing grants issued",
		}),
	}
}
