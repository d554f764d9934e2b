package handlers

import (
	"homify/internal/browse"
	"homify/internal/domain"
	"homify/internal/gateway"
	"homify/internal/log"
	"homify/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type BrowseHandler struct {
	API *gateway.Client
}

// Browse fetches the listing set and narrows it with the client-side filter.
// A submitted keyword pre-narrows via the backend search endpoint; every
// other criterion is applied locally so filter changes need no refetch.
func (h *BrowseHandler) Browse(c *fiber.Ctx) error {
	rawKeyword := c.Query("keyword")
	keyword, ok := validate.Keyword(rawKeyword)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "keyword", "value": rawKeyword})
		c.Status(fiber.StatusBadRequest)
		return render(c, "browse", fiber.Map{
			"Listings": []domain.Listing{}, "Count": 0,
			"Criteria": browse.Criteria{ListingType: browse.TypeAll},
			"Err":      "Enter a valid keyword (letters/numbers only)",
		})
	}

	criteria := browse.CriteriaFromQuery(
		keyword,
		c.Query("type"),
		c.Query("min_price"),
		c.Query("max_price"),
		c.Query("min_beds"),
	)

	var listings []domain.Listing
	var err error
	if criteria.Keyword != "" {
		listings, err = h.API.SearchByKeyword(c.Context(), criteria.Keyword)
	} else {
		listings, err = h.API.PublicCards(c.Context())
	}
	if err != nil {
		log.Error(c, "browse.fetch.fail", err, nil)
		c.Status(fiber.StatusInternalServerError)
		return render(c, "browse", fiber.Map{
			"Listings": []domain.Listing{}, "Count": 0,
			"Criteria": criteria,
			"Err":      "Could not load listings. Please retry.",
		})
	}

	matched := browse.Filter(listings, criteria)
	return render(c, "browse", fiber.Map{
		"Listings": matched,
		"Count":    len(matched),
		"Criteria": criteria,
	})
}
