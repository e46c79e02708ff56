// Package metrics объявляет счетчики Prometheus административной панели.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoginAttempts считает попытки входа по исходу: success, failure, error.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subpool_admin_login_attempts_total",
		Help: "Number of administrative login attempts by result.",
	}, []string{"result"})

	// SessionChecks считает проверки сессионного токена по исходу:
	// accepted, rejected. Причины отказов не различаются наружу намеренно,
	// детали остаются в логе.
	SessionChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subpool_admin_session_checks_total",
		Help: "Number of session token verifications by result.",
	}, []string{"result"})

	// SessionRefreshes считает перевыпуски сессионного токена по исходу.
	SessionRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subpool_admin_session_refreshes_total",
		Help: "Number of session token refresh operations by result.",
	}, []string{"result"})
)
