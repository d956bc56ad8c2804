package queries

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/floatlist/floatlist-backend/app/models"
)

const businessColumns = `id, name, slug, description, logo_url, banner_url, owner_id, website, location, category, is_featured, created_at, updated_at`

var ErrSlugTaken = errors.New("slug already taken")

type BusinessQueries struct {
	DB *sql.DB
}

func scanBusiness(row interface{ Scan(...interface{}) error }) (models.Business, error) {
	b := models.Business{}
	err := row.Scan(&b.ID, &b.Name, &b.Slug, &b.Description, &b.LogoURL, &b.BannerURL,
		&b.OwnerID, &b.Website, &b.Location, &b.Category, &b.IsFeatured, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (q *BusinessQueries) GetBusinessBySlug(slug string) (models.Business, error) {
	if q.DB == nil {
		return models.Business{}, errors.New("database not initialized")
	}
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE slug = $1`
	b, err := scanBusiness(q.DB.QueryRow(query, slug))
	if err != nil {
		if err == sql.ErrNoRows {
			return b, errors.New("business not found")
		}
		return b, errors.New("unable to get business")
	}
	return b, nil
}

func (q *BusinessQueries) GetFeaturedBusinesses() ([]models.Business, error) {
	if q.DB == nil {
		return nil, errors.New("database not initialized")
	}
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE is_featured = true ORDER BY created_at DESC`
	rows, err := q.DB.Query(query)
	if err != nil {
		return nil, errors.New("unable to fetch businesses")
	}
	defer rows.Close()

	var businesses []models.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, errors.New("unable to scan business")
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unable to fetch businesses")
	}
	return businesses, nil
}

func (q *BusinessQueries) CreateBusiness(b *models.Business) error {
	if q.DB == nil {
		return errors.New("database not initialized")
	}
	query := `INSERT INTO businesses (` + businessColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`
	_, err := q.DB.Exec(query, b.ID, b.Name, b.Slug, b.Description, b.LogoURL, b.BannerURL,
		b.OwnerID, b.Website, b.Location, b.Category, b.IsFeatured, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrSlugTaken
		}
		return errors.New("unable to create business")
	}
	return nil
}
