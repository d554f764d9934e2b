package handlers

import "github.com/gofiber/fiber/v2"

// PageHandler serves the static marketing pages.
type PageHandler struct{}

func (h *PageHandler) About(c *fiber.Ctx) error {
	return render(c, "about", nil)
}

func (h *PageHandler) Contact(c *fiber.Ctx) error {
	return render(c, "contact", nil)
}
