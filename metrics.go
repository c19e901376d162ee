package redcap

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/redcap-tools/redcap-go/internal/rcrequest"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "redcap_client",
			Name:      "requests_total",
			Help:      "API calls attempted, by content kind and action.",
		},
		[]string{"content", "action"},
	)

	requestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "redcap_client",
			Name:      "request_errors_total",
			Help:      "API calls that failed, by content kind and error kind.",
		},
		[]string{"content", "kind"},
	)
)

func actionLabel(cfg rcrequest.Config) string {
	if cfg.Action != "" {
		return cfg.Action
	}
	return "export"
}

func errorKind(err error) string {
	var srv *rcrequest.ServerError
	if errors.As(err, &srv) {
		return "server"
	}
	var dec *rcrequest.DecodeError
	if errors.As(err, &dec) {
		return "decode"
	}
	return "network"
}
