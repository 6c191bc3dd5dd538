package models

import "time"

// Feedback is principal-lecturer commentary attached to a report. Multiple
// feedback rows per report are allowed; the log is append-only.
type Feedback struct {
	ID                  int64     `db:"id" json:"id"`
	ReportID            int64     `db:"report_id" json:"report_id"`
	PrincipalLecturerID int64     `db:"principal_lecturer_id" json:"principal_lecturer_id"`
	FeedbackText        string    `db:"feedback_text" json:"feedback_text"`
	Rating              *int      `db:"rating" json:"rating"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}

// FeedbackDetail joins feedback with the reviewing principal lecturer's name.
type FeedbackDetail struct {
	Feedback
	PrincipalLecturerName string `db:"principal_lecturer_name" json:"principal_lecturer_name"`
}
