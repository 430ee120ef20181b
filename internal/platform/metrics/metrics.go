// Package metrics exposes Prometheus instrumentation for the API.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EntityMutations counts applied mutations per entity and action.
var EntityMutations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "teamboard_entity_mutations_total",
		Help: "Number of entity mutations applied, by entity type and action.",
	},
	[]string{"entity", "action"},
)

// LoginAttempts counts login attempts by outcome (success/failure).
var LoginAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "teamboard_login_attempts_total",
		Help: "Number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// Handler serves the default Prometheus registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
