package models

import "time"

// Report records one delivered class session. Reports are immutable once
// created; there is no update or delete path.
type Report struct {
	ID                    int64     `db:"id" json:"id"`
	FacultyName           string    `db:"faculty_name" json:"faculty_name"`
	ClassID               int64     `db:"class_id" json:"class_id"`
	CourseID              int64     `db:"course_id" json:"course_id"`
	LecturerID            int64     `db:"lecturer_id" json:"lecturer_id"`
	WeekOfReporting       string    `db:"week_of_reporting" json:"week_of_reporting"`
	DateOfLecture         time.Time `db:"date_of_lecture" json:"date_of_lecture"`
	ActualStudentsPresent int       `db:"actual_students_present" json:"actual_students_present"`
	Venue                 string    `db:"venue" json:"venue"`
	ScheduledLectureTime  string    `db:"scheduled_lecture_time" json:"scheduled_lecture_time"`
	TopicTaught           string    `db:"topic_taught" json:"topic_taught"`
	LearningOutcomes      string    `db:"learning_outcomes" json:"learning_outcomes"`
	Recommendations       string    `db:"recommendations" json:"recommendations"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
}

// ReportDetail joins a report with course, class and lecturer names the way
// every listing endpoint returns it.
type ReportDetail struct {
	Report
	CourseCode   string `db:"course_code" json:"course_code"`
	CourseName   string `db:"course_name" json:"course_name"`
	ClassName    string `db:"class_name" json:"class_name"`
	LecturerName string `db:"lecturer_name" json:"lecturer_name"`
}
