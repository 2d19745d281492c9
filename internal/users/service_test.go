package users

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobdeck/jobdeck/internal/auth"
	"github.com/jobdeck/jobdeck/internal/platform/httpx"
)

// memoryUserRepo mirrors the PostgreSQL repository semantics, including its
// error kinds, for service and handler tests.
type memoryUserRepo struct {
	users  map[string]*User
	hashes map[string]string
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		users:  make(map[string]*User),
		hashes: make(map[string]string),
	}
}

func (r *memoryUserRepo) Insert(ctx context.Context, user User, passwordHash string) (*User, error) {
	if _, ok := r.users[user.Username]; ok {
		return nil, httpx.BadRequestf("Duplicate username: %s", user.Username)
	}
	u := user
	r.users[u.Username] = &u
	r.hashes[u.Username] = passwordHash
	out := u
	return &out, nil
}

func (r *memoryUserRepo) List(ctx context.Context) ([]User, error) {
	var out []User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memoryUserRepo) Get(ctx context.Context, username string) (*User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, httpx.NotFoundf("No user: %s", username)
	}
	out := *u
	return &out, nil
}

func (r *memoryUserRepo) Credentials(ctx context.Context, username string) (*User, string, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, "", httpx.NotFoundf("No user: %s", username)
	}
	out := *u
	return &out, r.hashes[username], nil
}

func (r *memoryUserRepo) Update(ctx context.Context, username string, params updateParams) (*User, error) {
	if params.FirstName == nil && params.LastName == nil && params.Email == nil && params.PasswordHash == nil {
		return nil, httpx.BadRequest("no data supplied")
	}
	u, ok := r.users[username]
	if !ok {
		return nil, httpx.NotFoundf("No user: %s", username)
	}
	if params.FirstName != nil {
		u.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		u.LastName = *params.LastName
	}
	if params.Email != nil {
		u.Email = *params.Email
	}
	if params.PasswordHash != nil {
		r.hashes[username] = *params.PasswordHash
	}
	out := *u
	return &out, nil
}

func (r *memoryUserRepo) Delete(ctx context.Context, username string) error {
	if _, ok := r.users[username]; !ok {
		return httpx.NotFoundf("No user: %s", username)
	}
	delete(r.users, username)
	delete(r.hashes, username)
	return nil
}

var _ RepositoryPort = (*memoryUserRepo)(nil)

func TestSignUpNeverGrantsAdmin(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo, bcrypt.MinCost)

	p, err := svc.SignUp(context.Background(), auth.SignUpInput{
		Username:  "u1",
		Password:  "password",
		FirstName: "U",
		LastName:  "One",
		Email:     "u1@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "u1", p.Username)
	require.False(t, p.IsAdmin)
	require.False(t, repo.users["u1"].IsAdmin)
}

func TestAuthenticate(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo, bcrypt.MinCost)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserRequest{
		Username:  "u1",
		Password:  "password",
		FirstName: "U",
		LastName:  "One",
		Email:     "u1@example.com",
		IsAdmin:   true,
	})
	require.NoError(t, err)

	p, err := svc.Authenticate(ctx, "u1", "password")
	require.NoError(t, err)
	require.True(t, p.IsAdmin)

	_, err = svc.Authenticate(ctx, "u1", "wrong")
	require.Error(t, err)
	apiErr, ok := httpx.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)

	// unknown user yields the same error shape
	_, err2 := svc.Authenticate(ctx, "ghost", "password")
	require.Error(t, err2)
	apiErr2, ok := httpx.AsAPIError(err2)
	require.True(t, ok)
	require.Equal(t, apiErr.Messages, apiErr2.Messages)
}

func TestCreateDuplicateUsername(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo, bcrypt.MinCost)
	ctx := context.Background()

	req := CreateUserRequest{Username: "u1", Password: "password", FirstName: "U", LastName: "One", Email: "u1@example.com"}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	require.Error(t, err)
	apiErr, ok := httpx.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestUpdateRehashesPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo, bcrypt.MinCost)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserRequest{Username: "u1", Password: "password", FirstName: "U", LastName: "One", Email: "u1@example.com"})
	require.NoError(t, err)

	newPassword := "different"
	_, err = svc.Update(ctx, "u1", UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "u1", "different")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "u1", "password")
	require.Error(t, err)
}
