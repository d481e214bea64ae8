package domain

// ContactMessage is a visitor inquiry from the public contact form. Messages
// are read-only once created; the admin view only lists them.
type ContactMessage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"date"`
}
