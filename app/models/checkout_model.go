package models

// CheckoutRequest starts a one-time purchase. Type and SellerID are
// best-effort metadata carried through to the payment session.
type CheckoutRequest struct {
	ListingID    string  `json:"listingId" validate:"required"`
	ListingTitle string  `json:"listingTitle" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Type         string  `json:"type,omitempty"`
	SellerID     string  `json:"sellerId,omitempty"`
}

// SubscriptionCheckoutRequest starts a recurring rental. Deposit, when
// positive, is charged once on top of the recurring price.
type SubscriptionCheckoutRequest struct {
	ListingID    string  `json:"listingId" validate:"required"`
	ListingTitle string  `json:"listingTitle" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	RentalPeriod string  `json:"rentalPeriod" validate:"required"`
	Deposit      float64 `json:"deposit,omitempty"`
	SellerID     string  `json:"sellerId,omitempty"`
}

type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
