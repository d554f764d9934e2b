package handlers

import (
	"homify/internal/domain"
	"homify/internal/gateway"
	"homify/internal/log"

	"github.com/gofiber/fiber/v2"
)

type HomeHandler struct {
	API *gateway.Client
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	listings, err := h.API.PublicCards(c.Context())
	if err != nil {
		log.Error(c, "home.cards.fail", err, nil)
		return render(c, "home", fiber.Map{
			"Featured": []domain.Listing{},
			"Err":      "Could not reach the listing service.",
		})
	}
	return render(c, "home", fiber.Map{"Featured": featured(listings)})
}

// featured picks the flagged listings, topping up with the newest cards so
// the strip never renders empty while the market has inventory.
func featured(listings []domain.Listing) []domain.Listing {
	const stripSize = 3
	out := make([]domain.Listing, 0, stripSize)
	for _, l := range listings {
		if l.Featured && len(out) < stripSize {
			out = append(out, l)
		}
	}
	for _, l := range listings {
		if len(out) == stripSize {
			break
		}
		if !l.Featured {
			out = append(out, l)
		}
	}
	return out
}
