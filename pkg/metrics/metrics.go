package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	UsersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "exercise_tracker", Name: "users_created_total", Help: "Number of users created."},
	)
	ExercisesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "exercise_tracker", Name: "exercises_created_total", Help: "Number of exercises logged."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "exercise_tracker", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "exercise_tracker", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(UsersCreated, ExercisesCreated, RateLimitAllowed, RateLimitRejected)
}
