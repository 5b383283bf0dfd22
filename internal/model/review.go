// internal/model/review.go
package model

import "time"

// Review is a student's rating of a company. StudentName is denormalized at
// creation. Reviews are append-only: never edited, never deleted.
type Review struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"company_id"`
	StudentID   int64     `json:"student_id"`
	StudentName string    `json:"student_name"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	Date        time.Time `json:"date"`
}
