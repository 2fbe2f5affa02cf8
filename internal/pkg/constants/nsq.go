package constants

// NSQ topics
const (
	TopicPaymentInitialized = "payment.initialized"
	TopicPaymentVerified    = "payment.verified"
)
