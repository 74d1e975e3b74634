package auth

// Principal identifies the signed-in student.
type Principal struct {
	ID        string
	Name      string
	Email     string
	StudentID string
}
