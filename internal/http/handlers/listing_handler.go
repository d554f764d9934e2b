package handlers

import (
	"errors"

	"homify/internal/gateway"
	"homify/internal/log"
	"homify/internal/session"
	"homify/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ListingHandler struct {
	API      *gateway.Client
	Sessions *session.Store
}

func (h *ListingHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ListingID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "listing"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This listing is no longer available"})
	}
	d, err := h.API.PublicDetail(c.Context(), id)
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && apiErr.Kind == gateway.KindNotFound {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "This listing is no longer available"})
		}
		log.Error(c, "listing.detail.fail", err, map[string]any{"id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load listing details. Please retry."})
	}
	return render(c, "listing", fiber.Map{"L": d, "ID": id})
}

// Contact forwards an inquiry to the seller through the backend. Auth-gated:
// the route sits behind RequireUser.
func (h *ListingHandler) Contact(c *fiber.Ctx) error {
	id, ok := validate.ListingID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This listing is no longer available"})
	}
	d, err := h.API.PublicDetail(c.Context(), id)
	if err != nil {
		log.Error(c, "listing.contact.load.fail", err, map[string]any{"id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load listing details. Please retry."})
	}

	sess := h.Sessions.Current()
	inquiry := uuid.NewString()
	msg := gateway.ContactMessage{
		Image:    d.MainImage(),
		UserText: c.FormValue("message"),
		To:       d.OwnerEmail,
		Subject:  "Inquiry about " + d.Name,
		From:     sess.User.Email,
	}
	if err := h.API.ContactSeller(c.Context(), msg); err != nil {
		log.Error(c, "listing.contact.fail", err, map[string]any{"id": id, "inquiry": inquiry})
		return render(c, "listing", fiber.Map{"L": d, "ID": id, "Err": "Could not send your message. Please retry."})
	}
	log.Audit(c, "listing.contact.sent", map[string]any{"id": id, "to": d.OwnerEmail, "inquiry": inquiry})
	return render(c, "listing", fiber.Map{"L": d, "ID": id, "Msg": "Message sent to the seller."})
}
