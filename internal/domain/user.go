package domain

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"` // user | seller | admin
	Avatar string `json:"avatar"`
}

// Session pairs an authenticated identity with its bearer token. User and
// Token are either both set (logged in) or both empty (logged out), never
// independently.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

func (s Session) LoggedIn() bool {
	return s.User != nil && s.Token != ""
}
