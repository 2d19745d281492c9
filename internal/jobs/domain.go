package jobs

// Job represents one job posting. ID is generated at creation; the owning
// company handle is immutable afterwards. Equity is carried as a decimal
// string to preserve the storage engine's numeric precision on the wire.
// Company is populated on single-record fetches only.
type Job struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Salary        *int    `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`

	Company *CompanyRecord `json:"company,omitempty"`
}

// CompanyRecord is the shape of the owning company embedded in a job detail
// response. The jobs package queries the companies table directly rather
// than importing the companies domain.
type CompanyRecord struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}
