package handlers

import (
	"homify/internal/session"

	"github.com/gofiber/fiber/v2"
)

// RequireUser gates a route on a live session; otherwise redirect to login.
func RequireUser(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := store.Current()
		if !sess.LoggedIn() {
			return c.Redirect("/login")
		}
		c.Locals("user", sess.User)
		return c.Next()
	}
}

// RedirectIfAuthed sends logged-in users away from the login/signup pages.
func RedirectIfAuthed(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store.Current().LoggedIn() {
			return c.Redirect("/")
		}
		return c.Next()
	}
}
