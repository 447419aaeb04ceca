package checkout

import (
	"context"
	"errors"
	"net/http"
	"time"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

const requestTimeout = 15 * time.Second

// StripeProvider implements the provider contract on top of Stripe Checkout.
type StripeProvider struct {
	api *client.API
}

func NewStripeProvider(secretKey string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, stripe.NewBackends(&http.Client{Timeout: requestTimeout}))
	return &StripeProvider{api: api}
}

func (p *StripeProvider) CreateSession(ctx context.Context, input *SessionInput) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(input.ProductName),
					},
					UnitAmount: stripe.Int64(input.AmountMinor),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(input.CustomerEmail),
		SuccessURL:    stripe.String(input.SuccessURL),
		CancelURL:     stripe.String(input.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("tutorEmail", input.Metadata.TutorEmail)
	params.AddMetadata("studentEmail", input.Metadata.StudentEmail)
	params.AddMetadata("tuitionId", input.Metadata.TuitionId)
	params.AddMetadata("tutorName", input.Metadata.TutorName)

	sess, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}
	return fromStripeSession(sess), nil
}

func (p *StripeProvider) GetSession(ctx context.Context, sessionId string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := p.api.CheckoutSessions.Get(sessionId, params)
	if err != nil {
		return nil, err
	}
	return fromStripeSession(sess), nil
}

func fromStripeSession(sess *stripe.CheckoutSession) *Session {
	s := &Session{
		Id:            sess.ID,
		URL:           sess.URL,
		AmountMinor:   sess.AmountTotal,
		PaymentStatus: string(sess.PaymentStatus),
		Metadata: SessionMetadata{
			TutorEmail:   sess.Metadata["tutorEmail"],
			StudentEmail: sess.Metadata["studentEmail"],
			TuitionId:    sess.Metadata["tuitionId"],
			TutorName:    sess.Metadata["tutorName"],
		},
	}
	if sess.PaymentIntent != nil {
		s.TransactionId = sess.PaymentIntent.ID
	}
	return s
}

// IsRetriable reports whether a provider failure is worth another attempt:
// transport errors and provider-side 5xx responses.
func IsRetriable(err error) bool {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return stripeErr.HTTPStatusCode >= http.StatusInternalServerError
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
