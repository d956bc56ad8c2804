package payments

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v79"

	"github.com/floatlist/floatlist-backend/app/models"
	"github.com/floatlist/floatlist-backend/pkg/config"
)

func testClient() *Client {
	return &Client{currency: "usd", siteName: "NS Market"}
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{0, 0},
		{1, 100},
		{49.99, 4999},
		{19.995, 2000},
		{19.994, 1999},
		{120, 12000},
		{0.005, 1},
		{800, 80000},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MinorUnits(tc.price), "price %v", tc.price)
	}
}

func TestBillingInterval(t *testing.T) {
	cases := map[string]stripe.PriceRecurringInterval{
		"hourly":    stripe.PriceRecurringIntervalDay,
		"daily":     stripe.PriceRecurringIntervalDay,
		"weekly":    stripe.PriceRecurringIntervalWeek,
		"monthly":   stripe.PriceRecurringIntervalMonth,
		"yearly":    stripe.PriceRecurringIntervalMonth,
		"":          stripe.PriceRecurringIntervalMonth,
		"fortnight": stripe.PriceRecurringIntervalMonth,
	}
	for period, want := range cases {
		assert.Equal(t, want, BillingInterval(period), "period %q", period)
	}
}

func TestBuildPurchaseParams(t *testing.T) {
	c := testClient()
	req := models.CheckoutRequest{
		ListingID:    "lst_1",
		ListingTitle: "Mountain Bike",
		Price:        49.99,
		Type:         "for-sale",
		SellerID:     "usr_9",
	}

	params := c.BuildPurchaseParams(req, "https://floatlist.app")

	assert.Equal(t, string(stripe.CheckoutSessionModePayment), *params.Mode)
	if assert.Len(t, params.LineItems, 1) {
		item := params.LineItems[0]
		assert.Equal(t, int64(1), *item.Quantity)
		assert.Equal(t, "usd", *item.PriceData.Currency)
		assert.Equal(t, int64(4999), *item.PriceData.UnitAmount)
		assert.Equal(t, "Mountain Bike", *item.PriceData.ProductData.Name)
		assert.Equal(t, "Purchase from NS Market", *item.PriceData.ProductData.Description)
		assert.Nil(t, item.PriceData.Recurring)
	}
	assert.Equal(t, "https://floatlist.app/checkout/success?session_id={CHECKOUT_SESSION_ID}", *params.SuccessURL)
	assert.Equal(t, "https://floatlist.app/listing/lst_1", *params.CancelURL)
	assert.Equal(t, "lst_1", params.Metadata["listingId"])
	assert.Equal(t, "usr_9", params.Metadata["sellerId"])
	assert.Equal(t, "for-sale", params.Metadata["type"])
	assert.NotNil(t, params.IdempotencyKey)
}

func TestBuildRentalParamsWithDeposit(t *testing.T) {
	c := testClient()
	req := models.SubscriptionCheckoutRequest{
		ListingID:    "lst_2",
		ListingTitle: "Studio KL",
		Price:        120,
		RentalPeriod: "weekly",
		Deposit:      300,
		SellerID:     "usr_3",
	}

	params := c.BuildRentalParams(req, "https://floatlist.app")

	assert.Equal(t, string(stripe.CheckoutSessionModeSubscription), *params.Mode)
	if assert.Len(t, params.LineItems, 2) {
		recurring := params.LineItems[0]
		assert.Equal(t, int64(12000), *recurring.PriceData.UnitAmount)
		assert.Equal(t, "Studio KL - weekly rental", *recurring.PriceData.ProductData.Name)
		assert.Equal(t, "Recurring rental from NS Market", *recurring.PriceData.ProductData.Description)
		if assert.NotNil(t, recurring.PriceData.Recurring) {
			assert.Equal(t, "week", *recurring.PriceData.Recurring.Interval)
		}

		deposit := params.LineItems[1]
		assert.Equal(t, int64(30000), *deposit.PriceData.UnitAmount)
		assert.Equal(t, "Security Deposit (one-time)", *deposit.PriceData.ProductData.Name)
		assert.Equal(t, "Refundable security deposit", *deposit.PriceData.ProductData.Description)
		assert.Nil(t, deposit.PriceData.Recurring)
	}
	assert.Equal(t, "weekly", params.Metadata["rentalPeriod"])
	assert.Equal(t, "300", params.Metadata["deposit"])
}

func TestBuildRentalParamsDepositOmitted(t *testing.T) {
	c := testClient()
	for _, deposit := range []float64{0, -50} {
		req := models.SubscriptionCheckoutRequest{
			ListingID:    "lst_2",
			ListingTitle: "Studio KL",
			Price:        120,
			RentalPeriod: "monthly",
			Deposit:      deposit,
		}
		params := c.BuildRentalParams(req, "https://floatlist.app")
		assert.Len(t, params.LineItems, 1, "deposit %v", deposit)
	}
}

func TestBuildRentalParamsHourlyBilledDaily(t *testing.T) {
	c := testClient()
	req := models.SubscriptionCheckoutRequest{
		ListingID:    "lst_4",
		ListingTitle: "Pressure Washer",
		Price:        15,
		RentalPeriod: "hourly",
	}
	params := c.BuildRentalParams(req, "https://floatlist.app")
	assert.Equal(t, "day", *params.LineItems[0].PriceData.Recurring.Interval)
	// The abstract period, not the mapped interval, is what reconciliation sees.
	assert.Equal(t, "hourly", params.Metadata["rentalPeriod"])
	assert.Equal(t, "0", params.Metadata["deposit"])
}

func TestIdempotencyKeyStable(t *testing.T) {
	c := testClient()
	req := models.CheckoutRequest{ListingID: "lst_1", ListingTitle: "Bike", Price: 10}

	first := c.BuildPurchaseParams(req, "https://floatlist.app")
	second := c.BuildPurchaseParams(req, "https://floatlist.app")
	assert.Equal(t, *first.IdempotencyKey, *second.IdempotencyKey)

	req.Price = 11
	third := c.BuildPurchaseParams(req, "https://floatlist.app")
	assert.NotEqual(t, *first.IdempotencyKey, *third.IdempotencyKey)
}

type fakeSessionAPI struct {
	session *stripe.CheckoutSession
	err     error
	calls   int
}

func (f *fakeSessionAPI) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.calls++
	return f.session, f.err
}

func TestCreateSessionNotConfigured(t *testing.T) {
	c := NewClient(&config.Config{Currency: "usd", SiteName: "NS Market"})
	assert.False(t, c.Enabled())

	_, err := c.CreatePurchaseSession(models.CheckoutRequest{ListingID: "lst_1", ListingTitle: "Bike", Price: 10}, "https://floatlist.app")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.CreateRentalSession(models.SubscriptionCheckoutRequest{ListingID: "lst_1", ListingTitle: "Bike", Price: 10, RentalPeriod: "daily"}, "https://floatlist.app")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCreatePurchaseSession(t *testing.T) {
	fake := &fakeSessionAPI{session: &stripe.CheckoutSession{ID: "cs_123", URL: "https://checkout.stripe.com/c/cs_123"}}
	c := testClient()
	c.sessions = fake

	sess, err := c.CreatePurchaseSession(models.CheckoutRequest{ListingID: "lst_1", ListingTitle: "Bike", Price: 10}, "https://floatlist.app")
	assert.NoError(t, err)
	assert.Equal(t, "cs_123", sess.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/cs_123", sess.URL)
	assert.Equal(t, 1, fake.calls)
}

func TestCreateSessionUpstreamFailure(t *testing.T) {
	fake := &fakeSessionAPI{err: errors.New("card_declined")}
	c := testClient()
	c.sessions = fake

	_, err := c.CreatePurchaseSession(models.CheckoutRequest{ListingID: "lst_1", ListingTitle: "Bike", Price: 10}, "https://floatlist.app")
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = c.CreateRentalSession(models.SubscriptionCheckoutRequest{ListingID: "lst_1", ListingTitle: "Bike", Price: 10, RentalPeriod: "daily"}, "https://floatlist.app")
	assert.ErrorIs(t, err, ErrUpstream)
}
