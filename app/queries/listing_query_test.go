package queries

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floatlist/floatlist-backend/app/models"
)

var listingCols = []string{"id", "title", "description", "price", "type", "category", "subcategory",
	"images", "seller_id", "seller_name", "whatsapp", "telegram", "available", "views", "business_id",
	"created_at", "updated_at"}

func newMock(t *testing.T) (*ListingQueries, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &ListingQueries{DB: db}, mock
}

func TestGetAvailableListings(t *testing.T) {
	q, mock := newMock(t)
	now := time.Now()
	first := uuid.New()
	second := uuid.New()

	rows := sqlmock.NewRows(listingCols).
		AddRow(first, "Bike", "red mountain bike", 49.99, "for-sale", "for-sale", "sports",
			[]byte(`{https://img/1.jpg,https://img/2.jpg}`), "usr_1", "Sam", nil, nil, true, 3, nil, now, now).
		AddRow(second, "Studio KL", "near LRT", nil, "housing", "housing", nil,
			[]byte(`{}`), "usr_2", "Mei", "+60123456789", nil, true, 0, nil, now.Add(-time.Hour), now)

	mock.ExpectQuery(`SELECT .+ FROM listings WHERE available = true ORDER BY created_at DESC`).
		WillReturnRows(rows)

	listings, err := q.GetAvailableListings()
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, first, listings[0].ID)
	require.NotNil(t, listings[0].Price)
	assert.Equal(t, 49.99, *listings[0].Price)
	assert.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, listings[0].Images)

	assert.Nil(t, listings[1].Price)
	require.NotNil(t, listings[1].Whatsapp)
	assert.Equal(t, "+60123456789", *listings[1].Whatsapp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailableListingsQueryError(t *testing.T) {
	q, mock := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM listings`).WillReturnError(assert.AnError)

	_, err := q.GetAvailableListings()
	assert.EqualError(t, err, "unable to fetch listings")
}

func TestGetAvailableListingsNilDB(t *testing.T) {
	q := &ListingQueries{}
	_, err := q.GetAvailableListings()
	assert.EqualError(t, err, "database not initialized")
}

func TestGetListingByIDNotFound(t *testing.T) {
	q, mock := newMock(t)
	id := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM listings WHERE id = \$1`).WithArgs(id).
		WillReturnRows(sqlmock.NewRows(listingCols))

	_, err := q.GetListingByID(id)
	assert.EqualError(t, err, "listing not found")
}

func TestCreateListing(t *testing.T) {
	q, mock := newMock(t)
	now := time.Now()
	price := 10.0
	l := &models.Listing{
		ID:          uuid.New(),
		Title:       "Bike",
		Description: "red mountain bike",
		Price:       &price,
		Type:        "for-sale",
		Category:    "for-sale",
		Images:      []string{"https://img/1.jpg"},
		SellerID:    "usr_1",
		SellerName:  "Sam",
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectExec(`INSERT INTO listings`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, q.CreateListing(l))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementViews(t *testing.T) {
	q, mock := newMock(t)
	id := uuid.New()
	mock.ExpectExec(`UPDATE listings SET views = views \+ 1 WHERE id = \$1`).
		WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, q.IncrementViews(id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAvailabilityNotFound(t *testing.T) {
	q, mock := newMock(t)
	id := uuid.New()
	now := time.Now()
	mock.ExpectExec(`UPDATE listings SET available = \$2, updated_at = \$3 WHERE id = \$1`).
		WithArgs(id, false, now).WillReturnResult(sqlmock.NewResult(0, 0))

	err := q.SetAvailability(id, false, now)
	assert.EqualError(t, err, "listing not found")
}
