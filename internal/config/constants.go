package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envPollEnabled  = "POLL_ENABLED"
	envCompetition  = "COMPETITION"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultCompetition = "PL"
	defaultMetricsPort = "9090"
	defaultPollEnabled = true
	// Conservative default poll interval to respect the upstream free-tier
	// quota (football-data: 10 req/min).
	defaultPollInterval = 5 * Duration(time.Minute)
)
