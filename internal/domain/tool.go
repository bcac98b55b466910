package domain

// Tool is an entry of the tools registry.
type Tool struct {
	ID          string
	Name        string
	Description string
	Category    string
	Command     string
}
