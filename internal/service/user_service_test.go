package service

import (
	"context"
	"errors"
	"testing"

	"academicworld/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn         func(context.Context, uint) (*models.User, error)
	getByIdentifierFn func(context.Context, string) (*models.User, error)
	createFn          func(context.Context, *models.User) error
	deleteFn          func(context.Context, uint) error
	listFn            func(context.Context) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	return s.getByIdentifierFn(ctx, identifier)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:         func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByIdentifierFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:          func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:          func(_ context.Context, _ uint) error { return nil },
		listFn:            func(_ context.Context) ([]models.User, error) { return nil, nil },
	}
}

// assertCode asserts that err is an AppError with the given code.
func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:            "Alice Smith",
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "longenoughpw",
		ConfirmPassword: "longenoughpw",
	}
}

func TestUserService_Register_Validation(t *testing.T) {
	t.Parallel()
	svc := NewUserService(noopUserRepo())
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		in := validRegisterInput()
		in.Email = ""
		_, err := svc.Register(ctx, in)
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("bad email", func(t *testing.T) {
		in := validRegisterInput()
		in.Email = "not-an-email"
		_, err := svc.Register(ctx, in)
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("bad username", func(t *testing.T) {
		in := validRegisterInput()
		in.Username = "a"
		_, err := svc.Register(ctx, in)
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("short password", func(t *testing.T) {
		in := validRegisterInput()
		in.Password = "short"
		in.ConfirmPassword = "short"
		_, err := svc.Register(ctx, in)
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("password mismatch", func(t *testing.T) {
		in := validRegisterInput()
		in.ConfirmPassword = "somethingelse"
		_, err := svc.Register(ctx, in)
		assertCode(t, err, models.CodeValidation)
	})
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	t.Parallel()
	repo := noopUserRepo()
	var created *models.User
	repo.createFn = func(_ context.Context, user *models.User) error {
		created = user
		return nil
	}
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created, user)
	assert.NotEqual(t, "longenoughpw", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("longenoughpw")))
	assert.False(t, created.IsAdmin)
}

func TestUserService_Register_DuplicatePropagates(t *testing.T) {
	t.Parallel()
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, _ *models.User) error {
		return models.NewDuplicateKeyError("user")
	}
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), validRegisterInput())
	assertCode(t, err, models.CodeDuplicateKey)
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := noopUserRepo()
	repo.getByIdentifierFn = func(_ context.Context, identifier string) (*models.User, error) {
		if identifier == "alice" || identifier == "alice@example.com" {
			return &models.User{ID: 7, Username: "alice", Password: string(hashed)}, nil
		}
		return nil, nil
	}
	svc := NewUserService(repo)
	ctx := context.Background()

	t.Run("by username", func(t *testing.T) {
		user, err := svc.Login(ctx, "alice", "correct-horse")
		require.NoError(t, err)
		assert.EqualValues(t, 7, user.ID)
	})

	t.Run("by email", func(t *testing.T) {
		user, err := svc.Login(ctx, "alice@example.com", "correct-horse")
		require.NoError(t, err)
		assert.EqualValues(t, 7, user.ID)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "correct-horse")
		assertCode(t, err, models.CodeNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "wrong")
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "")
		assertCode(t, err, models.CodeValidation)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Parallel()
	var deletedID uint
	repo := noopUserRepo()
	repo.getByIdentifierFn = func(_ context.Context, identifier string) (*models.User, error) {
		if identifier == "victim" {
			return &models.User{ID: 3, Username: "victim"}, nil
		}
		return nil, nil
	}
	repo.deleteFn = func(_ context.Context, id uint) error {
		deletedID = id
		return nil
	}
	svc := NewUserService(repo)
	ctx := context.Background()

	t.Run("non-admin forbidden", func(t *testing.T) {
		err := svc.DeleteUser(ctx, DeleteUserInput{Identifier: "victim", CallerIsAdmin: false})
		assertCode(t, err, models.CodeForbidden)
		assert.Zero(t, deletedID)
	})

	t.Run("admin deletes by identifier", func(t *testing.T) {
		err := svc.DeleteUser(ctx, DeleteUserInput{Identifier: "victim", CallerIsAdmin: true})
		require.NoError(t, err)
		assert.EqualValues(t, 3, deletedID)
	})

	t.Run("unknown target", func(t *testing.T) {
		err := svc.DeleteUser(ctx, DeleteUserInput{Identifier: "ghost", CallerIsAdmin: true})
		assertCode(t, err, models.CodeNotFound)
	})
}
