package models

// ValidationIssue describes one rejected field of a request body
type ValidationIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}
