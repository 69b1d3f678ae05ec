package metrics

import "time"

// Recorder records counters and latencies for paid actions
//
//go:generate mockgen -source=metrics.go -destination=../mocks/metrics.go -package=mocks -mock_names=Recorder=MockRecorder
type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

// Event names
const (
	EventPaymentSent     = "payment_sent"
	EventPaymentRejected = "payment_rejected"
	EventPaymentVerified = "payment_verified"
	// EventVerifyAttemptFailed counts every failed chain check, including settle retries
	EventVerifyAttemptFailed = "verify_attempt_failed"
	// EventMutationRejected counts paid mutations dropped because the payment never verified
	EventMutationRejected  = "mutation_rejected"
	EventContentPersisted  = "content_persisted"
	EventPersistenceFailed = "persistence_failed"

	OperationVerify = "verify_payment"
	OperationAction = "paid_action"
)
