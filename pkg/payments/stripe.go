package payments

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/floatlist/floatlist-backend/app/models"
	"github.com/floatlist/floatlist-backend/pkg/config"
)

var (
	ErrNotConfigured = errors.New("payment processing is not configured")
	ErrUpstream      = errors.New("payment provider request failed")
)

// Session is what callers get back: enough to redirect the buyer.
type Session struct {
	ID  string
	URL string
}

type sessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// Client wraps the Stripe checkout-session API. A Client built without a
// secret key is a valid "disabled" client: Enabled reports false and every
// Create call returns ErrNotConfigured without touching the network.
type Client struct {
	sessions sessionAPI
	currency string
	siteName string
}

func NewClient(cfg *config.Config) *Client {
	c := &Client{currency: cfg.Currency, siteName: cfg.SiteName}
	if cfg.StripeSecretKey == "" {
		return c
	}
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)
	c.sessions = api.CheckoutSessions
	return c
}

func (c *Client) Enabled() bool {
	return c.sessions != nil
}

// MinorUnits converts a decimal price to the processor's integer minor
// units, rounding half-up. Decimal arithmetic keeps inputs like 19.995 from
// landing on the wrong side of the boundary through float error.
func MinorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// Stripe has no hourly billing, so hourly rentals are billed daily.
// Anything unrecognized falls back to monthly.
var rentalIntervals = map[string]stripe.PriceRecurringInterval{
	"hourly":  stripe.PriceRecurringIntervalDay,
	"daily":   stripe.PriceRecurringIntervalDay,
	"weekly":  stripe.PriceRecurringIntervalWeek,
	"monthly": stripe.PriceRecurringIntervalMonth,
}

func BillingInterval(rentalPeriod string) stripe.PriceRecurringInterval {
	if interval, ok := rentalIntervals[rentalPeriod]; ok {
		return interval
	}
	return stripe.PriceRecurringIntervalMonth
}

// BuildPurchaseParams shapes the one-time checkout-session request. origin
// must already be validated against the allowlist.
func (c *Client) BuildPurchaseParams(req models.CheckoutRequest, origin string) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(c.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.ListingTitle),
						Description: stripe.String(fmt.Sprintf("Purchase from %s", c.siteName)),
					},
					UnitAmount: stripe.Int64(MinorUnits(req.Price)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(origin + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(origin + "/listing/" + req.ListingID),
	}
	params.AddMetadata("listingId", req.ListingID)
	params.AddMetadata("sellerId", req.SellerID)
	params.AddMetadata("type", req.Type)
	params.SetIdempotencyKey(idempotencyKey("payment", origin, req.ListingID, req.SellerID, req.Type,
		strconv.FormatInt(MinorUnits(req.Price), 10)))
	return params
}

// BuildRentalParams shapes the subscription checkout-session request. A
// strictly positive deposit becomes a second, one-time line item.
func (c *Client) BuildRentalParams(req models.SubscriptionCheckoutRequest, origin string) *stripe.CheckoutSessionParams {
	lineItems := []*stripe.CheckoutSessionLineItemParams{
		{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(c.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(fmt.Sprintf("%s - %s rental", req.ListingTitle, req.RentalPeriod)),
					Description: stripe.String(fmt.Sprintf("Recurring rental from %s", c.siteName)),
				},
				UnitAmount: stripe.Int64(MinorUnits(req.Price)),
				Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
					Interval: stripe.String(string(BillingInterval(req.RentalPeriod))),
				},
			},
			Quantity: stripe.Int64(1),
		},
	}

	if req.Deposit > 0 {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(c.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String("Security Deposit (one-time)"),
					Description: stripe.String("Refundable security deposit"),
				},
				UnitAmount: stripe.Int64(MinorUnits(req.Deposit)),
			},
			Quantity: stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL:         stripe.String(origin + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(origin + "/listing/" + req.ListingID),
	}
	params.AddMetadata("listingId", req.ListingID)
	params.AddMetadata("sellerId", req.SellerID)
	params.AddMetadata("rentalPeriod", req.RentalPeriod)
	params.AddMetadata("deposit", strconv.FormatFloat(req.Deposit, 'f', -1, 64))
	params.SetIdempotencyKey(idempotencyKey("subscription", origin, req.ListingID, req.SellerID, req.RentalPeriod,
		strconv.FormatInt(MinorUnits(req.Price), 10), strconv.FormatInt(MinorUnits(req.Deposit), 10)))
	return params
}

func (c *Client) CreatePurchaseSession(req models.CheckoutRequest, origin string) (*Session, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}
	sess, err := c.sessions.New(c.BuildPurchaseParams(req, origin))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return &Session{ID: sess.ID, URL: sess.URL}, nil
}

func (c *Client) CreateRentalSession(req models.SubscriptionCheckoutRequest, origin string) (*Session, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}
	sess, err := c.sessions.New(c.BuildRentalParams(req, origin))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return &Session{ID: sess.ID, URL: sess.URL}, nil
}

// idempotencyKey gives retried requests with identical payloads the same
// key, so the processor collapses them into one session.
func idempotencyKey(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
