package handlers

import (
	"homify/internal/gateway"
	"homify/internal/log"
	"homify/internal/session"
	"homify/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	API      *gateway.Client
	Sessions *session.Store
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

// Login runs the original app's auth sequence: exchange credentials for a
// token, fetch the profile with that token, then create the session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	pass := c.FormValue("password")
	if _, ok := validate.Username(username); !ok {
		log.Security(c, "auth.login.fail", map[string]any{"username": username, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid credentials", "CSRFToken": c.Cookies("csrf_")})
	}
	if !validate.Password(pass) {
		log.Security(c, "auth.login.fail", map[string]any{"username": username, "reason": "bad_password_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid credentials", "CSRFToken": c.Cookies("csrf_")})
	}

	token, err := h.API.SignIn(c.Context(), username, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"username": username})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid credentials", "CSRFToken": c.Cookies("csrf_")})
	}
	user, err := h.API.CurrentUserWith(c.Context(), token)
	if err != nil {
		log.Error(c, "auth.profile.fail", err, map[string]any{"username": username})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid credentials", "CSRFToken": c.Cookies("csrf_")})
	}
	if err := h.Sessions.Login(user, token); err != nil {
		log.Error(c, "auth.session.persist.fail", err, nil)
	}

	log.Audit(c, "auth.login.success", map[string]any{"username": username})
	return c.Redirect("/dashboard")
}

func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return render(c, "signup", fiber.Map{
		"Err": "", "Name": "", "Username": "", "Email": "", "Phone": "",
	})
}

// Signup registers, auto-signs-in, fetches the profile, and lands on the
// dashboard, matching the original flow.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	req := gateway.SignUpRequest{
		FullName:    c.FormValue("name"),
		Username:    c.FormValue("username"),
		Email:       c.FormValue("email"),
		Password:    c.FormValue("password"),
		PhoneNumber: c.FormValue("phone"),
	}

	echo := fiber.Map{
		"Name": req.FullName, "Username": req.Username,
		"Email": req.Email, "Phone": req.PhoneNumber,
		"CSRFToken": c.Cookies("csrf_"),
	}
	if _, ok := validate.Name(req.FullName); !ok {
		echo["Err"] = "Enter your full name"
		return c.Status(400).Render("signup", echo)
	}
	if _, ok := validate.Username(req.Username); !ok {
		echo["Err"] = "Username must be 3-30 letters, digits, dots, dashes or underscores"
		return c.Status(400).Render("signup", echo)
	}
	if _, ok := validate.Email(req.Email); !ok {
		echo["Err"] = "Enter a valid email address"
		return c.Status(400).Render("signup", echo)
	}
	if !validate.Password(req.Password) {
		echo["Err"] = "Password must be 6+ characters"
		return c.Status(400).Render("signup", echo)
	}

	if err := h.API.SignUp(c.Context(), req); err != nil {
		log.Security(c, "auth.signup.fail", map[string]any{"username": req.Username})
		echo["Err"] = "Registration failed. " + backendMessage(err)
		return c.Status(400).Render("signup", echo)
	}
	token, err := h.API.SignIn(c.Context(), req.Username, req.Password)
	if err != nil {
		log.Error(c, "auth.signup.autologin.fail", err, map[string]any{"username": req.Username})
		return c.Redirect("/login")
	}
	user, err := h.API.CurrentUserWith(c.Context(), token)
	if err != nil {
		log.Error(c, "auth.profile.fail", err, map[string]any{"username": req.Username})
		return c.Redirect("/login")
	}
	if err := h.Sessions.Login(user, token); err != nil {
		log.Error(c, "auth.session.persist.fail", err, nil)
	}

	log.Audit(c, "auth.signup.success", map[string]any{"username": req.Username})
	return c.Redirect("/dashboard")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.Sessions.Logout(); err != nil {
		log.Error(c, "auth.session.persist.fail", err, nil)
	}
	log.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}
