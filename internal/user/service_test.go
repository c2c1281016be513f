package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/gisuarez/expenso/internal/user"
)

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().GetUserByUsername(gomock.Any(), "giuls").Return(nil, user.ErrNotFound)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *user.User) error {
			u.ID = uuid.New()
			u.CreatedAt = time.Now()
			return nil
		})

	svc := user.NewService(repo)

	u, err := svc.Register(context.Background(), user.RegisterParams{
		FirstName: "Giulliano",
		LastName:  "Suarez",
		Username:  " giuls ",
		Email:     "giuls@example.com",
		Password:  "donut-have-an-account",
	})
	require.NoError(t, err)
	assert.Equal(t, "giuls", u.Username)
	assert.NotEmpty(t, u.ID)

	// The stored credential is a bcrypt hash, not the password itself.
	assert.NotEqual(t, "donut-have-an-account", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(u.PasswordHash), []byte("donut-have-an-account")))
}

func TestService_Register_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUserByUsername(gomock.Any(), "giuls").
		Return(&user.User{ID: uuid.New(), Username: "Giuls"}, nil)

	svc := user.NewService(repo)

	_, err := svc.Register(context.Background(), user.RegisterParams{
		Username: "giuls",
		Password: "pw",
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := user.NewService(user.NewMockRepository(ctrl))

	_, err := svc.Register(context.Background(), user.RegisterParams{Password: "pw"})
	assert.ErrorIs(t, err, user.ErrMissingField)

	_, err = svc.Register(context.Background(), user.RegisterParams{Username: "giuls"})
	assert.ErrorIs(t, err, user.ErrMissingField)
}

func TestService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &user.User{ID: uuid.New(), Username: "giuls", PasswordHash: string(hash)}

	type testCase struct {
		name      string
		username  string
		password  string
		setupMock func(m *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			username: "giuls",
			password: "secret",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByUsername(gomock.Any(), "giuls").Return(stored, nil)
			},
		},
		{
			name:     "CaseInsensitiveUsername",
			username: "GIULS",
			password: "secret",
			setupMock: func(m *user.MockRepository) {
				// The store matches case-insensitively; the service passes
				// the username through untouched.
				m.EXPECT().GetUserByUsername(gomock.Any(), "GIULS").Return(stored, nil)
			},
		},
		{
			name:     "WrongPassword",
			username: "giuls",
			password: "nope",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByUsername(gomock.Any(), "giuls").Return(stored, nil)
			},
			wantErr: user.ErrInvalidCredentials,
		},
		{
			name:     "UnknownUser",
			username: "ghost",
			password: "secret",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := user.NewService(repo)
			got, err := svc.Authenticate(context.Background(), tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, stored.ID, got.ID)
		})
	}
}

func TestService_Resolve(t *testing.T) {
	byName := &user.User{ID: uuid.New(), Username: "giuls"}
	byID := &user.User{ID: uuid.New(), Username: "other"}
	first := &user.User{ID: uuid.New(), Username: "oldest"}

	type testCase struct {
		name      string
		username  string
		id        uuid.UUID
		setupMock func(m *user.MockRepository)
		want      *user.User
	}

	tests := []testCase{
		{
			name:     "UsernameMatchWins",
			username: "giuls",
			id:       byID.ID,
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByUsername(gomock.Any(), "giuls").Return(byName, nil)
			},
			want: byName,
		},
		{
			name:     "FallsBackToID",
			username: "ghost",
			id:       byID.ID,
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, user.ErrNotFound)
				m.EXPECT().GetUser(gomock.Any(), byID.ID).Return(byID, nil)
			},
			want: byID,
		},
		{
			name:     "FallsBackToFirstUser",
			username: "ghost",
			id:       uuid.Nil,
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, user.ErrNotFound)
				m.EXPECT().FirstUser(gomock.Any()).Return(first, nil)
			},
			want: first,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := user.NewService(repo)
			got, err := svc.Resolve(context.Background(), tt.username, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want.ID, got.ID)
		})
	}
}
