package utils

import (
	"strconv"
	"strings"

	"github.com/floatlist/floatlist-backend/app/models"
)

// Icons shown on the board per subcategory. Housing and request listings
// use a fixed category-level icon instead.
var subcategoryIcons = map[string]string{
	"electronics":  "🖥️",
	"furniture":    "🪑",
	"sports":       "🚲",
	"clothing":     "👕",
	"personal":     "💆",
	"professional": "💻",
	"health":       "💊",
	"creative":     "🎨",
}

const defaultIcon = "📦"

var sectionTitles = map[string]string{
	models.CategoryForSale: "For Sale",
	models.CategoryService: "Services",
	models.CategoryHousing: "Housing",
	models.CategoryRequest: "Requests",
	"other":                "Other",
}

// FilterBySearch keeps items whose title or description contains the query,
// case-insensitively. An empty query returns the input unchanged.
func FilterBySearch(items []models.Listing, query string) []models.Listing {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	var matched []models.Listing
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.Description), q) {
			matched = append(matched, item)
		}
	}
	return matched
}

func ListingIcon(l models.Listing) string {
	switch l.Category {
	case models.CategoryHousing:
		return "🏠"
	case models.CategoryRequest:
		return "💬"
	}
	if l.Subcategory != nil {
		if icon, ok := subcategoryIcons[*l.Subcategory]; ok {
			return icon
		}
	}
	return defaultIcon
}

// FormatPrice renders nil and zero as "Free"; both mean the seller isn't
// charging through the platform.
func FormatPrice(price *float64) string {
	if price == nil || *price == 0 {
		return "Free"
	}
	return "$" + strconv.FormatFloat(*price, 'f', -1, 64)
}

// BuildListingBoard partitions listings into the four fixed category
// sections plus a trailing "other" bucket for unrecognized categories,
// applies the search filter per section, and drops sections that end up
// empty. Total is the pre-filter count.
func BuildListingBoard(listings []models.Listing, query string) models.ListingBoard {
	buckets := map[string][]models.Listing{}
	for _, l := range listings {
		switch l.Category {
		case models.CategoryForSale, models.CategoryService, models.CategoryHousing, models.CategoryRequest:
			buckets[l.Category] = append(buckets[l.Category], l)
		default:
			buckets["other"] = append(buckets["other"], l)
		}
	}

	board := models.ListingBoard{Total: len(listings), Sections: []models.BoardSection{}}
	for _, category := range []string{models.CategoryForSale, models.CategoryService, models.CategoryHousing, models.CategoryRequest, "other"} {
		matched := FilterBySearch(buckets[category], query)
		if len(matched) == 0 {
			continue
		}
		section := models.BoardSection{Category: category, Title: sectionTitles[category]}
		for _, l := range matched {
			section.Listings = append(section.Listings, models.BoardListing{
				Listing:      l,
				Icon:         ListingIcon(l),
				DisplayPrice: FormatPrice(l.Price),
			})
		}
		board.Sections = append(board.Sections, section)
	}
	return board
}
