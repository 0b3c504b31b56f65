package service

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// AuthMetrics records sign-in outcomes.
type AuthMetrics interface {
	ObserveAttempt(provider, outcome string)
	ObserveOTPSent()
}
