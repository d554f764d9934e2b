package dashboard_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homify/internal/dashboard"
	"homify/internal/gateway"
)

// fakeBackend stands in for the private listings API.
type fakeBackend struct {
	mux       http.ServeMux
	listings  atomic.Value // []map[string]any returned by GET /private/listings
	failList  atomic.Bool
	failWrite atomic.Bool

	createBodies [][]byte
	updateBodies [][]byte
	updateIDs    []string
	deleteCalls  atomic.Int32
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	fb := &fakeBackend{}
	fb.listings.Store([]map[string]any{})

	fb.mux.HandleFunc("GET /api/private/listings", func(w http.ResponseWriter, r *http.Request) {
		if fb.failList.Load() {
			w.WriteHeader(500)
			w.Write([]byte(`{"message":"boom"}`))
			return
		}
		json.NewEncoder(w).Encode(fb.listings.Load())
	})
	fb.mux.HandleFunc("POST /api/private/listings/createListing", func(w http.ResponseWriter, r *http.Request) {
		if fb.failWrite.Load() {
			w.WriteHeader(400)
			w.Write([]byte(`{"message":"invalid payload"}`))
			return
		}
		b, _ := io.ReadAll(r.Body)
		fb.createBodies = append(fb.createBodies, b)
		w.WriteHeader(201)
	})
	fb.mux.HandleFunc("PUT /api/private/listings/updateListing/{id}", func(w http.ResponseWriter, r *http.Request) {
		if fb.failWrite.Load() {
			w.WriteHeader(400)
			w.Write([]byte(`{"message":"invalid payload"}`))
			return
		}
		b, _ := io.ReadAll(r.Body)
		fb.updateBodies = append(fb.updateBodies, b)
		fb.updateIDs = append(fb.updateIDs, r.PathValue("id"))
		w.WriteHeader(200)
	})
	fb.mux.HandleFunc("DELETE /api/private/listings/deleteListing/{id}", func(w http.ResponseWriter, r *http.Request) {
		fb.deleteCalls.Add(1)
		if fb.failWrite.Load() {
			w.WriteHeader(403)
			w.Write([]byte(`{"message":"not yours"}`))
			return
		}
		w.WriteHeader(200)
	})

	srv := httptest.NewServer(&fb.mux)
	t.Cleanup(srv.Close)
	return fb, srv
}

func card(id int, name string) map[string]any {
	return map[string]any{"id": id, "name": name, "address": "a", "offerPrice": 100.0,
		"bedrooms": 1, "bathrooms": 1.0, "size": 500.0, "type": "sale", "imageUrl": "u"}
}

func newManager(t *testing.T, srv *httptest.Server) *dashboard.Manager {
	t.Helper()
	api, err := gateway.New(srv.URL+"/api", nil)
	require.NoError(t, err)
	return dashboard.NewManager(api)
}

func TestRefreshReplacesCache(t *testing.T) {
	fb, srv := newFakeBackend(t)
	m := newManager(t, srv)

	fb.listings.Store([]map[string]any{card(1, "One"), card(2, "Two")})
	require.NoError(t, m.Refresh(context.Background()))
	require.Len(t, m.Listings(), 2)

	fb.listings.Store([]map[string]any{card(3, "Three")})
	require.NoError(t, m.Refresh(context.Background()))
	got := m.Listings()
	require.Len(t, got, 1)
	assert.Equal(t, "Three", got[0].Title)
}

func TestRefreshFailureKeepsStaleCache(t *testing.T) {
	fb, srv := newFakeBackend(t)
	m := newManager(t, srv)

	fb.listings.Store([]map[string]any{card(1, "One")})
	require.NoError(t, m.Refresh(context.Background()))

	fb.failList.Store(true)
	err := m.Refresh(context.Background())
	require.Error(t, err)
	got := m.Listings()
	require.Len(t, got, 1, "stale-but-available cache on failed refresh")
	assert.Equal(t, "One", got[0].Title)
}

func TestCreateShapesAmenitiesAndImages(t *testing.T) {
	fb, srv := newFakeBackend(t)
	m := newManager(t, srv)

	d := dashboard.Draft{
		Name: "Penthouse", Address: "9 Sky Rd",
		RegularPrice: "1000000", OfferPrice: "950000",
		Bedrooms: "3", Bathrooms: "2.5", Size: "2800",
		Type: "sale", Furnished: "true",
		Amenities: " Pool ,Gym,  Concierge ,",
		MainImage: "https://img/main.jpg",
	}
	require.NoError(t, m.Create(context.Background(), d))

	require.Len(t, fb.createBodies, 1)
	var req gateway.ListingRequest
	require.NoError(t, json.Unmarshal(fb.createBodies[0], &req))
	assert.Equal(t, []string{"Pool", "Gym", "Concierge"}, req.Amenities)
	assert.Equal(t, []string{"https://img/main.jpg"}, req.ImageURLs)
	assert.Equal(t, 950000.0, req.OfferPrice)
	assert.Equal(t, 3, req.Bedrooms)
	assert.Equal(t, 2.5, req.Bathrooms)
	assert.True(t, req.Furnished)
}

func TestCreateWithoutAmenitiesSendsEmptyList(t *testing.T) {
	fb, srv := newFakeBackend(t)
	m := newManager(t, srv)

	require.NoError(t, m.Create(context.Background(), dashboard.Draft{Name: "Bare"}))
	require.Len(t, fb.createBodies, 1)
	assert.Contains(t, string(fb.createBodies[0]), `"amenities":[]`, "absent amenities serialize as [], not null")
	assert.Contains(t, string(fb.createBodies[0]), `"imageUrls":["`, "image still wrapped into a list")
}

func TestCreateSuccessTriggersRefetch(t *testing.T) {
	fb, srv := newFakeBackend(t)
	m := newManager(t, srv)

	fb.listings.Store([]map[string]any{card(1, "Fresh")})
	require.NoError(t, m.Create(context.Background(), dashboard.Draft{Name: "Fresh"}))
	got := m.Listings()
	require.Len(t, got, 1)
	assert.Equal(t, "Fresh", got[0].Title, "cache reflects a full server refetch after create")
}

func TestCreateFailureLeavesCacheUntouched(t *testing.T) {
	fb, srv := newFakeBackend(t)
	m := newManager(t, srv)

	fb.listings.Store([]map[string]any{card(1, "One")})
	require.NoError(t, m.Refresh(context.Background()))

	fb.failWrite.Store(true)
	err := m.Create(context.Background(), dashboard.Draft{Name: "Bad"})
	require.Error(t, err)
	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, gateway.KindValidation, apiErr.Kind)

	got := m.Listings()
	require.Len(t, got, 1)
	assert.Equal(t, "One", got[0].Title)
}

func TestCreateThenFailedRefreshKeepsStaleCache(t *testing.T) {
	fb, srv := newFakeBackend(t)
	m := newManager(t, srv)

	fb.listings.Store([]map[string]any{card(1, "One")})
	require.NoError(t, m.Refresh(context.Background()))

	fb.failList.Store(true)
	err := m.Create(context.Background(), dashboard.Draft{Name: "Two"})
	require.Error(t, err, "create succeeded but refetch failed")
	got := m.Listings()
	require.Len(t, got, 1)
	assert.Equal(t, "One", got[0].Title, "previously cached set unchanged, stale-but-valid")
}

func TestUpdateShapesPayloadLikeCreate(t *testing.T) {
	fb, srv := newFakeBackend(t)
	m := newManager(t, srv)

	d := dashboard.Draft{
		Name: "Penthouse v2", Address: "9 Sky Rd",
		OfferPrice: "925000",
		Bedrooms:   "4", Bathrooms: "3",
		Type:      "sale",
		Amenities: " Pool ,Gym,",
		MainImage: "",
	}
	require.NoError(t, m.Update(context.Background(), "17", d))

	require.Len(t, fb.updateBodies, 1)
	assert.Equal(t, []string{"17"}, fb.updateIDs)
	var req gateway.ListingRequest
	require.NoError(t, json.Unmarshal(fb.updateBodies[0], &req))
	assert.Equal(t, []string{"Pool", "Gym"}, req.Amenities)
	require.Len(t, req.ImageURLs, 1, "empty image still wrapped into a single-entry list")
	assert.Contains(t, req.ImageURLs[0], "images.unsplash.com")
	assert.Equal(t, 925000.0, req.OfferPrice)
	assert.Equal(t, 4, req.Bedrooms)
	assert.Equal(t, 3.0, req.Bathrooms)
}

func TestUpdateSuccessTriggersRefetch(t *testing.T) {
	fb, srv := newFakeBackend(t)
	m := newManager(t, srv)

	fb.listings.Store([]map[string]any{card(17, "Renamed")})
	require.NoError(t, m.Update(context.Background(), "17", dashboard.Draft{Name: "Renamed"}))
	got := m.Listings()
	require.Len(t, got, 1)
	assert.Equal(t, "Renamed", got[0].Title, "cache reflects a full server refetch after update")
}

func TestUpdateFailureLeavesCacheUntouched(t *testing.T) {
	fb, srv := newFakeBackend(t)
	m := newManager(t, srv)

	fb.listings.Store([]map[string]any{card(1, "One")})
	require.NoError(t, m.Refresh(context.Background()))

	fb.failWrite.Store(true)
	err := m.Update(context.Background(), "1", dashboard.Draft{Name: "Bad"})
	require.Error(t, err)
	got := m.Listings()
	require.Len(t, got, 1)
	assert.Equal(t, "One", got[0].Title)
}

func TestDeleteWithoutConfirmationDoesNotCallBackend(t *testing.T) {
	fb, srv := newFakeBackend(t)
	m := newManager(t, srv)

	err := m.Delete(context.Background(), "5", false)
	require.ErrorIs(t, err, dashboard.ErrNotConfirmed)
	assert.Zero(t, fb.deleteCalls.Load(), "unconfirmed delete must never reach the backend")
}

func TestDeleteConfirmedRefetches(t *testing.T) {
	fb, srv := newFakeBackend(t)
	m := newManager(t, srv)

	fb.listings.Store([]map[string]any{card(1, "One"), card(2, "Two")})
	require.NoError(t, m.Refresh(context.Background()))

	fb.listings.Store([]map[string]any{card(2, "Two")})
	require.NoError(t, m.Delete(context.Background(), "1", true))
	assert.Equal(t, int32(1), fb.deleteCalls.Load())
	got := m.Listings()
	require.Len(t, got, 1)
	assert.Equal(t, "Two", got[0].Title)
}

func TestDeleteFailureLeavesCacheUntouched(t *testing.T) {
	fb, srv := newFakeBackend(t)
	m := newManager(t, srv)

	fb.listings.Store([]map[string]any{card(1, "One")})
	require.NoError(t, m.Refresh(context.Background()))

	fb.failWrite.Store(true)
	err := m.Delete(context.Background(), "1", true)
	require.Error(t, err)
	require.Len(t, m.Listings(), 1)
}

func TestSplitAmenities(t *testing.T) {
	assert.Equal(t, []string{"Pool", "Gym"}, dashboard.SplitAmenities("Pool, Gym"))
	assert.Equal(t, []string{}, dashboard.SplitAmenities(""))
	assert.Equal(t, []string{"Solo"}, dashboard.SplitAmenities("  Solo  "))
	assert.Equal(t, []string{}, dashboard.SplitAmenities(" , ,, "))
}
