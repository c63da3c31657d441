package metrics

import (
	"github.com/agglayer/cascadekit/log"
	"github.com/agglayer/cascadekit/prometheus"
	prometheusClient "github.com/prometheus/client_golang/prometheus"
)

const (
	prefix             = "cascade_"
	signalsDetected    = prefix + "signals_detected"
	decodeFailures     = prefix + "decode_failures"
	submissionOutcomes = prefix + "submission_outcomes"
	sendRetries        = prefix + "send_retries"
	claimsSent         = prefix + "claims_sent"
	claimErrors        = prefix + "claim_errors"
	claimQueueSize     = prefix + "claim_queue_size"
	lastBlockProcessed = prefix + "last_block_processed"
	bridgeCacheSize    = prefix + "bridge_cache_size"
)

// Register the metrics of the relayer
func Register() {
	prometheus.RegisterCounterVecs(
		prometheus.CounterVecOpts{
			CounterOpts: prometheusClient.CounterOpts{
				Name: signalsDetected,
				Help: "[CASCADE] number of signals built, by kind",
			},
			Labels: []string{"kind"},
		},
		prometheus.CounterVecOpts{
			CounterOpts: prometheusClient.CounterOpts{
				Name: submissionOutcomes,
				Help: "[CASCADE] number of signal submissions, by terminal outcome",
			},
			Labels: []string{"outcome"},
		},
	)
	prometheus.RegisterCounters(
		prometheusClient.CounterOpts{
			Name: decodeFailures,
			Help: "[CASCADE] number of logs or transactions skipped because they could not be decoded",
		},
		prometheusClient.CounterOpts{
			Name: sendRetries,
			Help: "[CASCADE] number of submission retries after a transient rejection",
		},
		prometheusClient.CounterOpts{
			Name: claimsSent,
			Help: "[CASCADE] number of claim transactions sent",
		},
		prometheusClient.CounterOpts{
			Name: claimErrors,
			Help: "[CASCADE] number of failed yield queries or claim transactions",
		},
	)
	prometheus.RegisterGauges(
		prometheusClient.GaugeOpts{
			Name: claimQueueSize,
			Help: "[CASCADE] number of signals waiting for their yield to be claimed",
		},
		prometheusClient.GaugeOpts{
			Name: lastBlockProcessed,
			Help: "[CASCADE] last block handled by the dispatcher",
		},
		prometheusClient.GaugeOpts{
			Name: bridgeCacheSize,
			Help: "[CASCADE] number of bridge requests kept in cache",
		},
	)
	log.Info("Registered prometheus cascade metrics")
}

// SignalDetected increments the counter of built signals of the given kind
func SignalDetected(kind string) {
	prometheus.CounterVecInc(signalsDetected, kind)
}

// DecodeFailure increments the counter of skipped events
func DecodeFailure() {
	prometheus.CounterInc(decodeFailures)
}

// SubmissionOutcome increments the counter of the given terminal outcome
func SubmissionOutcome(outcome string) {
	prometheus.CounterVecInc(submissionOutcomes, outcome)
}

// SendRetry increments the counter of submission retries
func SendRetry() {
	prometheus.CounterInc(sendRetries)
}

// ClaimSent increments the counter of claim transactions sent
func ClaimSent() {
	prometheus.CounterInc(claimsSent)
}

// ClaimError increments the counter of claim errors
func ClaimError() {
	prometheus.CounterInc(claimErrors)
}

// ClaimQueueSize sets the gauge of queued claims
func ClaimQueueSize(size int) {
	prometheus.GaugeSet(claimQueueSize, float64(size))
}

// LastBlockProcessed sets the gauge of the last handled block
func LastBlockProcessed(blockNum uint64) {
	prometheus.GaugeSet(lastBlockProcessed, float64(blockNum))
}

// BridgeCacheSize sets the gauge of cached bridge requests
func BridgeCacheSize(size int) {
	prometheus.GaugeSet(bridgeCacheSize, float64(size))
}
