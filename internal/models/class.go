package models

import "time"

// Class is a scheduled section of a course taught by one lecturer.
type Class struct {
	ID                      int64     `db:"id" json:"id"`
	ClassName               string    `db:"class_name" json:"class_name"`
	CourseID                int64     `db:"course_id" json:"course_id"`
	LecturerID              int64     `db:"lecturer_id" json:"lecturer_id"`
	TotalRegisteredStudents int       `db:"total_registered_students" json:"total_registered_students"`
	Venue                   string    `db:"venue" json:"venue"`
	ScheduledTime           string    `db:"scheduled_time" json:"scheduled_time"`
	CreatedAt               time.Time `db:"created_at" json:"created_at"`
}

// ClassDetail joins the class with its course and lecturer names.
type ClassDetail struct {
	Class
	CourseCode   string `db:"course_code" json:"course_code"`
	CourseName   string `db:"course_name" json:"course_name"`
	LecturerName string `db:"lecturer_name" json:"lecturer_name"`
}
