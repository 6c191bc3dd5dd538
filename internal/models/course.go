package models

import "time"

// Course represents a course owned by a program leader.
type Course struct {
	ID              int64     `db:"id" json:"id"`
	CourseCode      string    `db:"course_code" json:"course_code"`
	CourseName      string    `db:"course_name" json:"course_name"`
	Faculty         string    `db:"faculty" json:"faculty"`
	ProgramLeaderID int64     `db:"program_leader_id" json:"program_leader_id"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
