// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

// Package metrics exposes Prometheus counters for sweep and scaling activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	sweepsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ebs_autoscaler_sweeps_total",
		Help: "Total volume sweeps performed.",
	})
	volumesScaledTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ebs_autoscaler_volumes_scaled_total",
		Help: "Total volumes successfully scaled.",
	})
	scaleFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ebs_autoscaler_scale_failures_total",
		Help: "Total per-volume scaling failures.",
	})
	modificationRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ebs_autoscaler_modification_requests_total",
		Help: "Total EBS ModifyVolume requests issued.",
	})
)

func init() {
	prometheus.MustRegister(
		sweepsTotal,
		volumesScaledTotal,
		scaleFailuresTotal,
		modificationRequestsTotal,
	)
}

func IncSweeps() {
	sweepsTotal.Inc()
}

func IncVolumesScaled() {
	volumesScaledTotal.Inc()
}

func IncScaleFailures() {
	scaleFailuresTotal.Inc()
}

func IncModificationRequests() {
	modificationRequestsTotal.Inc()
}

// Serve exposes /metrics on addr. It blocks, so callers run it in a goroutine.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
