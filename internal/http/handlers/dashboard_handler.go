package handlers

import (
	"errors"

	"homify/internal/dashboard"
	"homify/internal/log"
	"homify/internal/session"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Manager  *dashboard.Manager
	Sessions *session.Store
}

// View refreshes the seller's portfolio and renders it. A failed refresh is
// logged and the stale cache is shown with a warning instead of an error page.
func (h *DashboardHandler) View(c *fiber.Ctx) error {
	data := fiber.Map{"Draft": dashboard.Draft{}}
	if err := h.Manager.Refresh(c.Context()); err != nil {
		log.Error(c, "dashboard.refresh.fail", err, nil)
		data["Err"] = "Could not refresh your listings; showing the last known state."
	}
	data["Listings"] = h.Manager.Listings()
	return render(c, "dashboard", data)
}

func (h *DashboardHandler) Create(c *fiber.Ctx) error {
	d := draftFromForm(c)
	if err := h.Manager.Create(c.Context(), d); err != nil {
		log.Error(c, "dashboard.create.fail", err, map[string]any{"name": d.Name})
		c.Status(400)
		return render(c, "dashboard", fiber.Map{
			"Listings": h.Manager.Listings(),
			"Draft":    d,
			"Err":      "Failed to create listing. " + backendMessage(err),
		})
	}
	log.Audit(c, "dashboard.create", map[string]any{"name": d.Name, "seller": h.sellerEmail()})
	return c.Redirect("/dashboard")
}

func (h *DashboardHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	d := draftFromForm(c)
	if err := h.Manager.Update(c.Context(), id, d); err != nil {
		log.Error(c, "dashboard.update.fail", err, map[string]any{"id": id})
		c.Status(400)
		return render(c, "dashboard", fiber.Map{
			"Listings": h.Manager.Listings(),
			"Draft":    d,
			"EditID":   id,
			"Err":      "Failed to update listing. " + backendMessage(err),
		})
	}
	log.Audit(c, "dashboard.update", map[string]any{"id": id, "seller": h.sellerEmail()})
	return c.Redirect("/dashboard")
}

func (h *DashboardHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	confirmed := c.FormValue("confirm") == "yes"
	err := h.Manager.Delete(c.Context(), id, confirmed)
	if errors.Is(err, dashboard.ErrNotConfirmed) {
		log.Security(c, "dashboard.delete.unconfirmed", map[string]any{"id": id})
		c.Status(400)
		return render(c, "dashboard", fiber.Map{
			"Listings": h.Manager.Listings(),
			"Draft":    dashboard.Draft{},
			"Err":      "Deletion requires confirmation.",
		})
	}
	if err != nil {
		log.Error(c, "dashboard.delete.fail", err, map[string]any{"id": id})
		c.Status(400)
		return render(c, "dashboard", fiber.Map{
			"Listings": h.Manager.Listings(),
			"Draft":    dashboard.Draft{},
			"Err":      "Failed to delete listing. " + backendMessage(err),
		})
	}
	log.Audit(c, "dashboard.delete", map[string]any{"id": id, "seller": h.sellerEmail()})
	return c.Redirect("/dashboard")
}

func (h *DashboardHandler) sellerEmail() string {
	if sess := h.Sessions.Current(); sess.User != nil {
		return sess.User.Email
	}
	return ""
}

func draftFromForm(c *fiber.Ctx) dashboard.Draft {
	return dashboard.Draft{
		Name:         c.FormValue("name"),
		Description:  c.FormValue("description"),
		Address:      c.FormValue("address"),
		City:         c.FormValue("city"),
		State:        c.FormValue("state"),
		Pincode:      c.FormValue("pincode"),
		RegularPrice: c.FormValue("regular_price"),
		OfferPrice:   c.FormValue("offer_price"),
		Bedrooms:     c.FormValue("bedrooms"),
		Bathrooms:    c.FormValue("bathrooms"),
		Size:         c.FormValue("size"),
		Type:         c.FormValue("type"),
		Furnished:    c.FormValue("furnished"),
		Parking:      c.FormValue("parking"),
		Offer:        c.FormValue("offer"),
		Amenities:    c.FormValue("amenities"),
		MainImage:    c.FormValue("main_image"),
	}
}
