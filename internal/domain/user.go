package domain

const RoleAdmin = "admin"

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	CreatedAt    string `json:"createdAt"`
}

// Session describes the ambient auth state the dashboard needs: whether a
// session exists and whether it carries the admin role. The role half comes
// from a server-side lookup, never from client state.
type Session struct {
	UserID       string `json:"userId,omitempty"`
	Email        string `json:"email,omitempty"`
	HasSession   bool   `json:"hasSession"`
	HasAdminRole bool   `json:"hasAdminRole"`
}
