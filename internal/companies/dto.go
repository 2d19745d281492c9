package companies

// CreateCompanyRequest is the company creation payload.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle" validate:"required,min=1,max=25"`
	Name         string  `json:"name" validate:"required,min=1,max=60"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees,omitempty" validate:"omitempty,gte=0"`
	LogoURL      *string `json:"logoUrl,omitempty" validate:"omitempty,url"`
}

// UpdateCompanyRequest is the sparse company-update payload. Nil fields are
// left untouched; the handle is immutable.
type UpdateCompanyRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=60"`
	Description  *string `json:"description,omitempty"`
	NumEmployees *int    `json:"numEmployees,omitempty" validate:"omitempty,gte=0"`
	LogoURL      *string `json:"logoUrl,omitempty" validate:"omitempty,url"`
}
