package models

// Principal roles carried in JWT claims and audit entries.
const (
	RoleAdmin   = "admin"
	RoleCoach   = "coach"
	RoleStudent = "student"
)
