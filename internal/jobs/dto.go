package jobs

// CreateJobRequest is the job creation payload.
type CreateJobRequest struct {
	Title         string  `json:"title" validate:"required,min=1"`
	Salary        *int    `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Equity        *string `json:"equity,omitempty" validate:"omitempty,equity"`
	CompanyHandle string  `json:"companyHandle" validate:"required,min=1,max=25"`
}

// UpdateJobRequest is the sparse job-update payload. Nil fields are left
// untouched; the id and owning company are immutable.
type UpdateJobRequest struct {
	Title  *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Salary *int    `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Equity *string `json:"equity,omitempty" validate:"omitempty,equity"`
}
