// Package checkout integrates the hosted checkout provider. Sessions live
// entirely on the provider side; identifying metadata rides on the session so
// it survives the redirect round trip.
package checkout

// SessionMetadata is embedded on the provider session, not in local state.
type SessionMetadata struct {
	TutorEmail   string
	StudentEmail string
	TuitionId    string
	TutorName    string
}

type SessionInput struct {
	// AmountMinor is the charge in the smallest currency unit.
	AmountMinor   int64
	ProductName   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      SessionMetadata
}

type Session struct {
	Id          string
	URL         string
	AmountMinor int64
	// TransactionId is the provider's payment intent, the settlement
	// idempotency key.
	TransactionId string
	PaymentStatus string
	Metadata      SessionMetadata
}

// Paid reports whether the provider considers the session settled.
func (s *Session) Paid() bool {
	return s.PaymentStatus == "paid"
}
