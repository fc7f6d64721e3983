package model

// Scope identifies the acting user for a request.
type Scope struct {
	UserID   string
	Username string
	ChatID   int64
}
