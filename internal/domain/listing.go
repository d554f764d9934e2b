package domain

// Listing is the canonical card shape shared by the browse grid, the home
// page, and the dashboard portfolio. The backend exposes two DTO families
// (public cards with numeric ids, private listings); the gateway maps both
// onto this one struct.
type Listing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
	Sqft        float64  `json:"sqft"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   float64  `json:"bathrooms"` // fractional allowed, e.g. 2.5
	Type        string   `json:"type"`      // Apartment | Villa | ...
	ListingType string   `json:"listingType"`
	Image       string   `json:"image"`
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	SellerID    string   `json:"sellerId,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

// ListingDetail is the full record behind a single listing page.
type ListingDetail struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	RegularPrice  float64  `json:"regularPrice"`
	DiscountPrice float64  `json:"discountPrice"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     float64  `json:"bathrooms"`
	Furnished     bool     `json:"furnished"`
	Parking       bool     `json:"parking"`
	Type          string   `json:"type"`
	Offer         bool     `json:"offer"`
	ImageURLs     []string `json:"imageUrls"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Pincode       string   `json:"pincode"`
	Amenities     []string `json:"amenities"`
	Size          float64  `json:"size"`
	OwnerName     string   `json:"ownerName"`
	OwnerEmail    string   `json:"ownerEmail"`
}

// MainImage returns the first image URL, or empty if the backend sent none.
func (d ListingDetail) MainImage() string {
	if len(d.ImageURLs) == 0 {
		return ""
	}
	return d.ImageURLs[0]
}
