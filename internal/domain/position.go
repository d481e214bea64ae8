package domain

type PositionType string

const (
	PositionTypeVolt    PositionType = "volt"
	PositionTypeProject PositionType = "project"
)

// Position is a recruitment listing applicants can apply to. Client-sponsored
// listings (type "project") additionally carry the company name and a project
// description.
type Position struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Type               PositionType `json:"type"`
	Requirements       []string     `json:"requirements"`
	PreferredMajors    []string     `json:"preferredMajors"`
	CompanyName        string       `json:"companyName,omitempty"`
	ProjectDescription string       `json:"projectDescription,omitempty"`
	Active             bool         `json:"active"`
	PublishedDate      *string      `json:"publishedDate,omitempty"`
	Deadline           *string      `json:"deadline,omitempty"`
	CreatedAt          string       `json:"createdAt,omitempty"`
}

// PositionUpdate carries a partial update; nil fields are left untouched.
type PositionUpdate struct {
	Title              *string       `json:"title"`
	Description        *string       `json:"description"`
	Type               *PositionType `json:"type"`
	Requirements       []string      `json:"requirements"`
	PreferredMajors    []string      `json:"preferredMajors"`
	CompanyName        *string       `json:"companyName"`
	ProjectDescription *string       `json:"projectDescription"`
	Active             *bool         `json:"active"`
	PublishedDate      *string       `json:"publishedDate"`
	Deadline           *string       `json:"deadline"`
}

func (t PositionType) Valid() bool {
	return t == PositionTypeVolt || t == PositionTypeProject
}
