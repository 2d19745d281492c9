package users

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jobdeck/jobdeck/internal/auth"
	"github.com/jobdeck/jobdeck/internal/platform/httpx"
)

// RepositoryPort defines data access methods for user accounts.
type RepositoryPort interface {
	Insert(ctx context.Context, user User, passwordHash string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, username string) (*User, error)
	Credentials(ctx context.Context, username string) (*User, string, error)
	Update(ctx context.Context, username string, params updateParams) (*User, error)
	Delete(ctx context.Context, username string) error
}

// Service handles account business logic: password hashing and credential
// checks live here, persistence in the repository.
type Service struct {
	repo       RepositoryPort
	bcryptCost int
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, bcryptCost: bcryptCost}
}

// Authenticate validates username/password credentials. The error is uniform
// for unknown users and wrong passwords.
func (s *Service) Authenticate(ctx context.Context, username, password string) (auth.Principal, error) {
	user, hash, err := s.repo.Credentials(ctx, username)
	if err != nil {
		return auth.Principal{}, httpx.Unauthorized("Invalid username/password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return auth.Principal{}, httpx.Unauthorized("Invalid username/password")
	}
	return auth.Principal{Username: user.Username, IsAdmin: user.IsAdmin}, nil
}

// SignUp registers a new non-admin account.
func (s *Service) SignUp(ctx context.Context, in auth.SignUpInput) (auth.Principal, error) {
	user, err := s.create(ctx, CreateUserRequest{
		Username:  in.Username,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		IsAdmin:   false,
	})
	if err != nil {
		return auth.Principal{}, err
	}
	return auth.Principal{Username: user.Username, IsAdmin: user.IsAdmin}, nil
}

// Create stores a new account on behalf of an admin; the admin flag is taken
// from the request.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	return s.create(ctx, req)
}

func (s *Service) create(ctx context.Context, req CreateUserRequest) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Insert(ctx, User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	}, string(hash))
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Get returns one user by username.
func (s *Service) Get(ctx context.Context, username string) (*User, error) {
	return s.repo.Get(ctx, username)
}

// Update applies a sparse update, hashing a new password when one is given.
func (s *Service) Update(ctx context.Context, username string, req UpdateUserRequest) (*User, error) {
	params := updateParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		params.PasswordHash = &hashed
	}
	return s.repo.Update(ctx, username, params)
}

// Delete removes a user account.
func (s *Service) Delete(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, username)
}
