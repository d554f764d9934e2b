// Package dashboard maintains the seller's in-memory listing cache and keeps
// it consistent with the backend: every successful mutation is followed by a
// full refetch rather than an optimistic local patch.
package dashboard

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"homify/internal/domain"
	"homify/internal/gateway"
)

// ErrNotConfirmed is returned by Delete when the confirmation gate was not
// passed; the backend is not called in that case.
var ErrNotConfirmed = errors.New("deletion requires confirmation")

// fallbackImage backs drafts submitted without an image URL.
const fallbackImage = "https://images.unsplash.com/photo-1600585154340-be6161a56a0c"

// Draft carries the raw create/update form values. Coercion to the wire
// shape happens here; business validation stays on the backend.
type Draft struct {
	Name         string
	Description  string
	Address      string
	City         string
	State        string
	Pincode      string
	RegularPrice string
	OfferPrice   string
	Bedrooms     string
	Bathrooms    string
	Size         string
	Type         string
	Furnished    string
	Parking      string
	Offer        string
	Amenities    string // free text, comma separated
	MainImage    string
}

func (d Draft) request() gateway.ListingRequest {
	return gateway.ListingRequest{
		Name:         strings.TrimSpace(d.Name),
		Description:  strings.TrimSpace(d.Description),
		Address:      strings.TrimSpace(d.Address),
		City:         strings.TrimSpace(d.City),
		State:        strings.TrimSpace(d.State),
		Pincode:      strings.TrimSpace(d.Pincode),
		RegularPrice: num(d.RegularPrice),
		OfferPrice:   num(d.OfferPrice),
		Bedrooms:     int(num(d.Bedrooms)),
		Bathrooms:    num(d.Bathrooms),
		Size:         num(d.Size),
		Type:         strings.TrimSpace(d.Type),
		Furnished:    d.Furnished == "true",
		Parking:      d.Parking == "true",
		Offer:        d.Offer == "true",
		ImageURLs:    imageList(d.MainImage),
		Amenities:    SplitAmenities(d.Amenities),
	}
}

func num(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// imageList wraps the single form image into the list shape the backend
// requires.
func imageList(main string) []string {
	main = strings.TrimSpace(main)
	if main == "" {
		main = fallbackImage
	}
	return []string{main}
}

// SplitAmenities turns the free-text amenity field into a list: split on
// commas, trim each entry, drop empties. Absent input yields an empty list,
// not nil, so it serializes as [] rather than null.
func SplitAmenities(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Manager owns the seller's listing cache. The cache is authoritative local
// state only until the next Refresh; on any fetch failure it keeps its
// previous (stale-but-available) value.
type Manager struct {
	api *gateway.Client

	mu       sync.RWMutex
	listings []domain.Listing
}

func NewManager(api *gateway.Client) *Manager {
	return &Manager{api: api}
}

// Listings returns a copy of the cached set.
func (m *Manager) Listings() []domain.Listing {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Listing, len(m.listings))
	copy(out, m.listings)
	return out
}

// Refresh replaces the whole cache with the backend's current view. On
// failure the cache is left untouched and the error is returned for the
// caller to log; no retry happens here.
func (m *Manager) Refresh(ctx context.Context) error {
	fresh, err := m.api.MyListings(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.listings = fresh
	m.mu.Unlock()
	return nil
}

// Create submits the draft and, on success, refetches the full listing set.
// On failure the cache is untouched and the draft stays with the form.
func (m *Manager) Create(ctx context.Context, d Draft) error {
	if err := m.api.CreateListing(ctx, d.request()); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// Update applies the same shaping as Create against an existing listing.
func (m *Manager) Update(ctx context.Context, id string, d Draft) error {
	if err := m.api.UpdateListing(ctx, id, d.request()); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// Delete removes a listing. Deletion is irreversible, so the confirm gate is
// enforced here rather than trusted to the page.
func (m *Manager) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := m.api.DeleteListing(ctx, id); err != nil {
		return err
	}
	return m.Refresh(ctx)
}
