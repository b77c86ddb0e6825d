// Package metrics provides Prometheus instrumentation for the converter.
//
// All metrics are prefixed with "h265_converter_" and registered with the
// default registry via promauto. Batch runs are short-lived compared to a
// typical scrape target, so the endpoint is optional: it is only served
// when --metrics-addr is set, which is mainly useful for long overnight
// batches watched from an existing Prometheus setup.
//
// To record metrics from other packages:
//
//	metrics.JobsInFlight.Inc()
//	metrics.JobsTotal.WithLabelValues("success").Inc()
//	metrics.EncodeDuration.Observe(elapsed.Seconds())
package metrics
