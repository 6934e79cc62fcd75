// Package observability provides Prometheus metrics and OpenTelemetry tracing
// for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// PostsCreated counts posts successfully created.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_posts_created_total",
		Help: "Total number of posts created",
	})

	// PostsDeleted counts posts successfully deleted by their owners.
	PostsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_posts_deleted_total",
		Help: "Total number of posts deleted",
	})

	// LikesRecorded counts like and unlike operations by action.
	LikesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_likes_total",
		Help: "Total number of like and unlike operations",
	}, []string{"action"})
)
