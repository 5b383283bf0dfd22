// internal/model/internship.go
package model

import "time"

type JobType string

const (
	JobTypeOnSite JobType = "On-site"
	JobTypeRemote JobType = "Remote"
	JobTypeHybrid JobType = "Hybrid"
)

// Internship is an open position posted by a company. CompanyName is captured
// when the posting is created and is not kept in sync with later renames of
// the owning company.
type Internship struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"company_id"`
	CompanyName  string    `json:"company_name"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Duration     string    `json:"duration"`
	JobType      JobType   `json:"job_type"`
	PostedDate   time.Time `json:"posted_date"`
	ClosingDate  time.Time `json:"closing_date"`
	Requirements []string  `json:"requirements"`
	Field        string    `json:"field"`
}
