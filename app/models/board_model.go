package models

// BoardListing is a Listing decorated for the board: a display icon and a
// formatted price label.
type BoardListing struct {
	Listing
	Icon         string `json:"icon"`
	DisplayPrice string `json:"display_price"`
}

type BoardSection struct {
	Category string         `json:"category"`
	Title    string         `json:"title"`
	Listings []BoardListing `json:"listings"`
}

// ListingBoard is the grouped home-page view. Total counts all available
// listings before the search filter, so the client can tell "no listings at
// all" apart from "search matched nothing".
type ListingBoard struct {
	Sections []BoardSection `json:"sections"`
	Total    int            `json:"total"`
}
