package companies

// Company represents one employer record. Handle is the immutable primary
// key. Jobs is populated on single-record fetches only.
type Company struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`

	Jobs []JobSummary `json:"jobs,omitempty"`
}

// JobSummary is the shape of a job embedded in a company detail response.
// The companies package queries the jobs table directly rather than
// importing the jobs domain.
type JobSummary struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Salary *int    `json:"salary"`
	Equity *string `json:"equity"`
}
