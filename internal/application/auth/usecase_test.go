package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cooltechhq/hvac-ops-api/internal/application/auth"
	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	pkgjwt "github.com/cooltechhq/hvac-ops-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "unit-test-secret",
		ExpMinutes: 60,
		Issuer:     "hvac-ops-test",
	})
}

func TestRegisterUser_DefaultsToTechnician(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "mike@cooltech.example",
		Password: "super-secret-1",
		Name:     "Mike Rivera",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleTechnician, out.Role)
	assert.Equal(t, "active", out.Status)

	stored := repo.byEmail["mike@cooltech.example"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "super-secret-1", stored.PasswordHash,
		"password must be stored hashed")
}

func TestRegisterUser_DuplicateEmailRejected(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.c", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@b.c", Password: "password456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_UnknownRoleRejected(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "a@b.c",
		Password: "password123",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_ReturnsTokenWithRole(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "dana@cooltech.example",
		Password: "password123",
		Role:     entity.RoleOffice,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "dana@cooltech.example", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse("unit-test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleOffice, role)
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.c", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.c", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "nobody@b.c", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_SuspendedAccountForbidden(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.c", Password: "password123"})
	require.NoError(t, err)
	repo.byEmail["a@b.c"].Status = "suspended"

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.c", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
