package handlers

import (
	"homify/internal/dashboard"
	"homify/internal/gateway"
	"homify/internal/session"
)

type Deps struct {
	HomeHandler      *HomeHandler
	BrowseHandler    *BrowseHandler
	ListingHandler   *ListingHandler
	AuthHandler      *AuthHandler
	DashboardHandler *DashboardHandler
	PageHandler      *PageHandler
}

func NewDeps(api *gateway.Client, store *session.Store) *Deps {
	mgr := dashboard.NewManager(api)

	return &Deps{
		HomeHandler:      &HomeHandler{API: api},
		BrowseHandler:    &BrowseHandler{API: api},
		ListingHandler:   &ListingHandler{API: api, Sessions: store},
		AuthHandler:      &AuthHandler{API: api, Sessions: store},
		DashboardHandler: &DashboardHandler{Manager: mgr, Sessions: store},
		PageHandler:      &PageHandler{},
	}
}
