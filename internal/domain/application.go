package domain

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// ApplicationDetails holds the free-form candidate fields stored in the
// details JSON column.
type ApplicationDetails struct {
	FirstName       string `json:"firstName,omitempty"`
	FamilyName      string `json:"familyName,omitempty"`
	BirthDate       string `json:"birthDate"`
	DegreeProgram   string `json:"degreeProgram,omitempty"`
	YearOfStudy     string `json:"yearOfStudy,omitempty"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	Email           string `json:"email,omitempty"`
	LinkedInProfile string `json:"linkedinProfile,omitempty"`
}

// Application is a single candidate submission. Position holds the listing
// title as a plain snapshot, not a foreign key: deleting the listing detaches
// the application but never touches it.
type Application struct {
	ID                  string             `json:"id"`
	FullName            string             `json:"fullName"`
	Email               string             `json:"email"`
	Position            string             `json:"position"`
	Type                PositionType       `json:"type"`
	Status              ApplicationStatus  `json:"status"`
	CVURL               string             `json:"cvUrl"`
	MotivationLetterURL string             `json:"motivationLetterUrl"`
	Details             ApplicationDetails `json:"details"`
	AppliedAt           string             `json:"date"`
}
