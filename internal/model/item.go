package model

import "time"

// Audience designates who a task or event is addressed to.
type Audience string

// AudienceAllStudents is the only audience the backend currently exercises.
const AudienceAllStudents Audience = "all_students"

// Task is a deadline-bearing assignment created by a teacher.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Audience    Audience  `json:"audience"`
}

// Event is a scheduled occurrence with a start and an end.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Audience    Audience  `json:"audience"`
}

// Notification is produced by the backend (e.g. by the deadline sweep) and is
// read-only here.
type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}
