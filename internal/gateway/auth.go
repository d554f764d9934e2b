package gateway

import (
	"context"
	"strings"

	"homify/internal/domain"
)

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// signInResponse tolerates the token key drifting across backend versions.
type signInResponse struct {
	JWTToken    string `json:"jwtToken"`
	AccessToken string `json:"accessToken"`
	Token       string `json:"token"`
}

func (r signInResponse) token() string {
	switch {
	case r.JWTToken != "":
		return r.JWTToken
	case r.AccessToken != "":
		return r.AccessToken
	default:
		return r.Token
	}
}

type SignUpRequest struct {
	FullName    string   `json:"fullName"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	PhoneNumber string   `json:"phoneNumber"`
	Roles       []string `json:"role"`
}

type userProfile struct {
	ID       string   `json:"id"`
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// SignIn exchanges credentials for a bearer token. A rejected attempt comes
// back as an *APIError with KindAuth.
func (c *Client) SignIn(ctx context.Context, username, password string) (string, error) {
	var resp signInResponse
	err := c.do(ctx, "POST", "auth/public/signin", nil, signInRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.token(), nil
}

func (c *Client) SignUp(ctx context.Context, req SignUpRequest) error {
	if len(req.Roles) == 0 {
		req.Roles = []string{"user"}
	}
	return c.do(ctx, "POST", "auth/public/signup", nil, req, nil)
}

// CurrentUser fetches the profile behind the stored token.
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	tok := ""
	if c.tokens != nil {
		tok = c.tokens.Token()
	}
	return c.CurrentUserWith(ctx, tok)
}

// CurrentUserWith fetches the profile with an explicit token, used during
// login before the session store is populated.
func (c *Client) CurrentUserWith(ctx context.Context, token string) (domain.User, error) {
	var p userProfile
	if err := c.doWithToken(ctx, token, "GET", "auth/private/user", nil, nil, &p); err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:     p.ID,
		Name:   p.FullName,
		Email:  p.Email,
		Role:   roleFromBackend(p.Roles),
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + p.Email,
	}, nil
}

func roleFromBackend(roles []string) string {
	for _, r := range roles {
		if strings.EqualFold(r, "ROLE_SELLER") {
			return "seller"
		}
	}
	return "user"
}
