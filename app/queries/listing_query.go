package queries

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/floatlist/floatlist-backend/app/models"
)

const listingColumns = `id, title, description, price, type, category, subcategory, images, seller_id, seller_name, whatsapp, telegram, available, views, business_id, created_at, updated_at`

type ListingQueries struct {
	DB *sql.DB
}

func scanListing(row interface{ Scan(...interface{}) error }) (models.Listing, error) {
	l := models.Listing{}
	err := row.Scan(&l.ID, &l.Title, &l.Description, &l.Price, &l.Type, &l.Category, &l.Subcategory,
		pq.Array(&l.Images), &l.SellerID, &l.SellerName, &l.Whatsapp, &l.Telegram,
		&l.Available, &l.Views, &l.BusinessID, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

// GetAvailableListings returns every visible listing, newest first.
func (q *ListingQueries) GetAvailableListings() ([]models.Listing, error) {
	if q.DB == nil {
		return nil, errors.New("database not initialized")
	}
	query := `SELECT ` + listingColumns + ` FROM listings WHERE available = true ORDER BY created_at DESC`
	rows, err := q.DB.Query(query)
	if err != nil {
		return nil, errors.New("unable to fetch listings")
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, errors.New("unable to scan listing")
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unable to fetch listings")
	}
	return listings, nil
}

func (q *ListingQueries) GetListingByID(id uuid.UUID) (models.Listing, error) {
	if q.DB == nil {
		return models.Listing{}, errors.New("database not initialized")
	}
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	l, err := scanListing(q.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return l, errors.New("listing not found")
		}
		return l, errors.New("unable to get listing")
	}
	return l, nil
}

func (q *ListingQueries) CreateListing(l *models.Listing) error {
	if q.DB == nil {
		return errors.New("database not initialized")
	}
	query := `INSERT INTO listings (` + listingColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`
	_, err := q.DB.Exec(query, l.ID, l.Title, l.Description, l.Price, l.Type, l.Category, l.Subcategory,
		pq.Array(l.Images), l.SellerID, l.SellerName, l.Whatsapp, l.Telegram,
		l.Available, l.Views, l.BusinessID, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return errors.New("unable to create listing")
	}
	return nil
}

func (q *ListingQueries) IncrementViews(id uuid.UUID) error {
	if q.DB == nil {
		return errors.New("database not initialized")
	}
	query := `UPDATE listings SET views = views + 1 WHERE id = $1`
	if _, err := q.DB.Exec(query, id); err != nil {
		return errors.New("unable to update views")
	}
	return nil
}

func (q *ListingQueries) SetAvailability(id uuid.UUID, available bool, updatedAt time.Time) error {
	if q.DB == nil {
		return errors.New("database not initialized")
	}
	query := `UPDATE listings SET available = $2, updated_at = $3 WHERE id = $1`
	res, err := q.DB.Exec(query, id, available, updatedAt)
	if err != nil {
		return errors.New("unable to update listing")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return errors.New("unable to update listing")
	}
	if rows == 0 {
		return errors.New("listing not found")
	}
	return nil
}
