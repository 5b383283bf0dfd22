// internal/model/user.go
package model

import "time"

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleCompany Role = "COMPANY"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// User is a principal of exactly one role. Student and company fields are
// only populated for the matching role; the rest stay at their zero values.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Student profile
	Major             string   `json:"major,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	CVLink            string   `json:"cv_link,omitempty"`
	University        string   `json:"university,omitempty"`
	GraduationYear    int      `json:"graduation_year,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	PortfolioLink     string   `json:"portfolio_link,omitempty"`
	LinkedinProfile   string   `json:"linkedin_profile,omitempty"`
	ProfilePictureURL string   `json:"profile_picture_url,omitempty"`

	// Company profile
	Field       string   `json:"field,omitempty"`
	Description string   `json:"description,omitempty"`
	LogoURL     string   `json:"logo_url,omitempty"`
	Website     string   `json:"website,omitempty"`
	Location    string   `json:"location,omitempty"`
	CompanySize string   `json:"company_size,omitempty"`
	TechStack   []string `json:"tech_stack,omitempty"`
}

// IsStudent reports whether the user holds the student role.
func (u *User) IsStudent() bool { return u.Role == RoleStudent }

// IsCompany reports whether the user holds the company role.
func (u *User) IsCompany() bool { return u.Role == RoleCompany }

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
