package gateway

import (
	"context"
	"net/url"
	"strconv"

	"homify/internal/domain"
)

// listingCard is the backend's card DTO for both public browsing and the
// seller's own listings. Ids are numeric on the wire.
type listingCard struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	OfferPrice float64 `json:"offerPrice"`
	Bedrooms   int     `json:"bedrooms"`
	Bathrooms  float64 `json:"bathrooms"`
	Size       float64 `json:"size"`
	Type       string  `json:"type"`
	ImageURL   string  `json:"imageUrl"`
}

func (d listingCard) toDomain() domain.Listing {
	return domain.Listing{
		ID:          strconv.FormatInt(d.ID, 10),
		Title:       d.Name,
		Location:    d.Address,
		Price:       d.OfferPrice,
		Sqft:        d.Size,
		Bedrooms:    d.Bedrooms,
		Bathrooms:   d.Bathrooms,
		ListingType: d.Type,
		Image:       d.ImageURL,
	}
}

func cardsToDomain(cards []listingCard) []domain.Listing {
	out := make([]domain.Listing, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.toDomain())
	}
	return out
}

// ListingRequest is the create/update payload. Amenity and image shaping is
// the dashboard manager's job; this struct is the exact wire shape.
type ListingRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Address      string   `json:"address"`
	RegularPrice float64  `json:"regularPrice"`
	OfferPrice   float64  `json:"offerPrice"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms"`
	Furnished    bool     `json:"furnished"`
	Parking      bool     `json:"parking"`
	Type         string   `json:"type"`
	Offer        bool     `json:"offer"`
	ImageURLs    []string `json:"imageUrls"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Pincode      string   `json:"pincode"`
	Amenities    []string `json:"amenities"`
	Size         float64  `json:"size"`
}

// ContactMessage is the contact-seller payload.
type ContactMessage struct {
	Image    string `json:"image"`
	UserText string `json:"userText"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	From     string `json:"from"`
}

func (c *Client) PublicCards(ctx context.Context) ([]domain.Listing, error) {
	var cards []listingCard
	if err := c.do(ctx, "GET", "public/listings/cards", nil, nil, &cards); err != nil {
		return nil, err
	}
	return cardsToDomain(cards), nil
}

func (c *Client) PublicDetail(ctx context.Context, id string) (domain.ListingDetail, error) {
	var d domain.ListingDetail
	err := c.do(ctx, "GET", "public/listings/"+id, nil, nil, &d)
	return d, err
}

func (c *Client) SearchByKeyword(ctx context.Context, keyword string) ([]domain.Listing, error) {
	q := url.Values{"keyword": {keyword}}
	var cards []listingCard
	if err := c.do(ctx, "GET", "public/listings/search", q, nil, &cards); err != nil {
		return nil, err
	}
	return cardsToDomain(cards), nil
}

func (c *Client) MyListings(ctx context.Context) ([]domain.Listing, error) {
	var cards []listingCard
	if err := c.do(ctx, "GET", "private/listings", nil, nil, &cards); err != nil {
		return nil, err
	}
	return cardsToDomain(cards), nil
}

func (c *Client) CreateListing(ctx context.Context, req ListingRequest) error {
	return c.do(ctx, "POST", "private/listings/createListing", nil, req, nil)
}

func (c *Client) UpdateListing(ctx context.Context, id string, req ListingRequest) error {
	return c.do(ctx, "PUT", "private/listings/updateListing/"+id, nil, req, nil)
}

func (c *Client) DeleteListing(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "private/listings/deleteListing/"+id, nil, nil, nil)
}

func (c *Client) ContactSeller(ctx context.Context, msg ContactMessage) error {
	return c.do(ctx, "POST", "private/listings/contactSeller", nil, msg, nil)
}
