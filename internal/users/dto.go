package users

// CreateUserRequest is the admin user-creation payload. Unlike
// self-registration it may grant the admin flag.
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,min=1,max=30"`
	Password  string `json:"password" validate:"required,min=5,max=20"`
	FirstName string `json:"firstName" validate:"required,max=30"`
	LastName  string `json:"lastName" validate:"required,max=30"`
	Email     string `json:"email" validate:"required,email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UpdateUserRequest is the sparse user-update payload. Nil fields are left
// untouched. Username and admin flag are immutable through this route.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=30"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=30"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=5,max=20"`
}

// updateParams is the repository-level shape of a sparse update, with the
// password already hashed.
type updateParams struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
}
