package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/auth"
	authmocks "github.com/talentproph/talentpro/pkg/auth/mocks"
	"github.com/talentproph/talentpro/pkg/session"
)

func TestAuthService_Register(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (auth.UserRepository, auth.TokenGenerator)
		input    auth.RegisterInput
		wantErr  error
		wantKind apperr.Kind
		wantFail bool
	}{
		{
			name: "employer registered",
			mock: func(ctrl *gomock.Controller) (auth.UserRepository, auth.TokenGenerator) {
				repo := authmocks.NewMockUserRepository(ctrl)
				repo.EXPECT().GetByEmail(gomock.Any(), "hr@acme.ph").Return(auth.User{}, auth.ErrNotFound)
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), "Acme HR").
					DoAndReturn(func(_ context.Context, u auth.User, _ string) error {
						assert.Equal(t, session.RoleEmployer, u.Role)
						assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
						return nil
					})
				tokens := authmocks.NewMockTokenGenerator(ctrl)
				tokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("token", nil)
				return repo, tokens
			},
			input: auth.RegisterInput{Email: " HR@acme.ph ", Password: "s3cret-pass", Role: session.RoleEmployer, FullName: "Acme HR"},
		},
		{
			name: "email taken",
			mock: func(ctrl *gomock.Controller) (auth.UserRepository, auth.TokenGenerator) {
				repo := authmocks.NewMockUserRepository(ctrl)
				repo.EXPECT().GetByEmail(gomock.Any(), "dev@mail.ph").Return(auth.User{ID: uuid.New()}, nil)
				return repo, authmocks.NewMockTokenGenerator(ctrl)
			},
			input:   auth.RegisterInput{Email: "dev@mail.ph", Password: "long-enough", Role: session.RoleSeeker, FullName: "Juan"},
			wantErr: auth.ErrUserAlreadyExists,
		},
		{
			name: "admin cannot self register",
			mock: func(ctrl *gomock.Controller) (auth.UserRepository, auth.TokenGenerator) {
				return authmocks.NewMockUserRepository(ctrl), authmocks.NewMockTokenGenerator(ctrl)
			},
			input:    auth.RegisterInput{Email: "root@mail.ph", Password: "long-enough", Role: session.RoleAdmin, FullName: "Root"},
			wantKind: apperr.KindValidation,
		},
		{
			name: "display name in email",
			mock: func(ctrl *gomock.Controller) (auth.UserRepository, auth.TokenGenerator) {
				return authmocks.NewMockUserRepository(ctrl), authmocks.NewMockTokenGenerator(ctrl)
			},
			input:    auth.RegisterInput{Email: "Bob <bob@mail.ph>", Password: "long-enough", Role: session.RoleSeeker, FullName: "Bob"},
			wantKind: apperr.KindValidation,
		},
		{
			name: "short password",
			mock: func(ctrl *gomock.Controller) (auth.UserRepository, auth.TokenGenerator) {
				return authmocks.NewMockUserRepository(ctrl), authmocks.NewMockTokenGenerator(ctrl)
			},
			input:    auth.RegisterInput{Email: "dev@mail.ph", Password: "short", Role: session.RoleSeeker, FullName: "Juan"},
			wantKind: apperr.KindValidation,
		},
		{
			name: "repository failure",
			mock: func(ctrl *gomock.Controller) (auth.UserRepository, auth.TokenGenerator) {
				repo := authmocks.NewMockUserRepository(ctrl)
				repo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(auth.User{}, errors.New("db down"))
				return repo, authmocks.NewMockTokenGenerator(ctrl)
			},
			input:    auth.RegisterInput{Email: "dev@mail.ph", Password: "long-enough", Role: session.RoleSeeker, FullName: "Juan"},
			wantFail: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo, tokens := tc.mock(ctrl)
			svc := auth.NewAuthService(repo, tokens)
			res, err := svc.Register(context.Background(), tc.input)
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantKind != apperr.KindInternal:
				assert.Equal(t, tc.wantKind, apperr.KindOf(err))
			case tc.wantFail:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, "hr@acme.ph", res.User.Email)
				assert.Equal(t, "token", res.Token)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)
	user := auth.User{ID: uuid.New(), Email: "dev@mail.ph", PasswordHash: string(hash), Role: session.RoleSeeker}

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (auth.UserRepository, auth.TokenGenerator)
		password string
		wantErr  error
	}{
		{
			name: "ok",
			mock: func(ctrl *gomock.Controller) (auth.UserRepository, auth.TokenGenerator) {
				repo := authmocks.NewMockUserRepository(ctrl)
				repo.EXPECT().GetByEmail(gomock.Any(), "dev@mail.ph").Return(user, nil)
				tokens := authmocks.NewMockTokenGenerator(ctrl)
				tokens.EXPECT().Generate(gomock.Any(), user).Return("jwt", nil)
				return repo, tokens
			},
			password: "right-password",
		},
		{
			name: "wrong password",
			mock: func(ctrl *gomock.Controller) (auth.UserRepository, auth.TokenGenerator) {
				repo := authmocks.NewMockUserRepository(ctrl)
				repo.EXPECT().GetByEmail(gomock.Any(), "dev@mail.ph").Return(user, nil)
				return repo, authmocks.NewMockTokenGenerator(ctrl)
			},
			password: "wrong-password",
			wantErr:  auth.ErrInvalidCredentials,
		},
		{
			name: "unknown user",
			mock: func(ctrl *gomock.Controller) (auth.UserRepository, auth.TokenGenerator) {
				repo := authmocks.NewMockUserRepository(ctrl)
				repo.EXPECT().GetByEmail(gomock.Any(), "dev@mail.ph").Return(auth.User{}, auth.ErrNotFound)
				return repo, authmocks.NewMockTokenGenerator(ctrl)
			},
			password: "right-password",
			wantErr:  auth.ErrInvalidCredentials,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo, tokens := tc.mock(ctrl)
			res, err := auth.NewAuthService(repo, tokens).Login(context.Background(), "DEV@mail.ph", tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jwt", res.Token)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	require.NoError(t, err)
	user := auth.User{ID: uuid.New(), PasswordHash: string(hash)}
	actor := session.Actor{UserID: user.ID, Role: session.RoleSeeker}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := authmocks.NewMockUserRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil).Times(2)
	repo.EXPECT().UpdatePassword(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, h string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("new-password")))
			return nil
		})
	svc := auth.NewAuthService(repo, authmocks.NewMockTokenGenerator(ctrl))

	assert.ErrorIs(t, svc.ChangePassword(context.Background(), actor, "bad-guess", "new-password"), auth.ErrInvalidCredentials)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(svc.ChangePassword(context.Background(), actor, "old-password", "short")))
	assert.NoError(t, svc.ChangePassword(context.Background(), actor, "old-password", "new-password"))
}
