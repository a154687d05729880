package support_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/session"
	"github.com/talentproph/talentpro/pkg/support"
	supportmocks "github.com/talentproph/talentpro/pkg/support/mocks"
)

func TestStatus_CanTransition(t *testing.T) {
	testCases := []struct {
		from, to support.Status
		want     bool
	}{
		{support.StatusOpen, support.StatusInProgress, true},
		{support.StatusOpen, support.StatusResolved, true},
		{support.StatusInProgress, support.StatusResolved, true},
		{support.StatusResolved, support.StatusOpen, true},
		{support.StatusInProgress, support.StatusOpen, true},
		{support.StatusOpen, support.StatusOpen, false},
		{support.StatusResolved, support.Status("escalated"), false},
	}
	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransition(tc.to))
		})
	}
}

func TestService_Create(t *testing.T) {
	seeker := session.Actor{UserID: uuid.New(), Role: session.RoleSeeker}

	testCases := []struct {
		name     string
		in       support.CreateInput
		mock     func(ctrl *gomock.Controller) support.Repository
		wantKind apperr.Kind
	}{
		{
			name: "defaults to normal priority",
			in:   support.CreateInput{Subject: " Cannot upload resume ", Body: "The PDF upload keeps failing."},
			mock: func(ctrl *gomock.Controller) support.Repository {
				repo := supportmocks.NewMockRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tk support.Ticket) error {
					assert.Equal(t, "Cannot upload resume", tk.Subject)
					assert.Equal(t, support.PriorityNormal, tk.Priority)
					assert.Equal(t, support.StatusOpen, tk.Status)
					assert.Equal(t, seeker.UserID, tk.UserID)
					return nil
				})
				return repo
			},
		},
		{
			name: "missing body",
			in:   support.CreateInput{Subject: "Help"},
			mock: func(ctrl *gomock.Controller) support.Repository {
				return supportmocks.NewMockRepository(ctrl)
			},
			wantKind: apperr.KindValidation,
		},
		{
			name: "subject too long",
			in:   support.CreateInput{Subject: strings.Repeat("s", 201), Body: "x"},
			mock: func(ctrl *gomock.Controller) support.Repository {
				return supportmocks.NewMockRepository(ctrl)
			},
			wantKind: apperr.KindValidation,
		},
		{
			name: "unknown priority",
			in:   support.CreateInput{Subject: "Help", Body: "x", Priority: "urgent"},
			mock: func(ctrl *gomock.Controller) support.Repository {
				return supportmocks.NewMockRepository(ctrl)
			},
			wantKind: apperr.KindValidation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			_, err := support.NewService(tc.mock(ctrl)).Create(context.Background(), seeker, tc.in)
			if tc.wantKind != apperr.KindInternal {
				assert.Equal(t, tc.wantKind, apperr.KindOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_ListAll(t *testing.T) {
	admin := session.Actor{UserID: uuid.New(), Role: session.RoleAdmin}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := supportmocks.NewMockRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), support.StatusOpen, 50, 0).Return([]support.Ticket{{ID: uuid.New()}}, nil)
	svc := support.NewService(repo)

	items, err := svc.ListAll(context.Background(), admin, support.StatusOpen, 0, -3)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.ListAll(context.Background(), admin, support.Status("closed"), 10, 0)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.ListAll(context.Background(), session.Actor{UserID: uuid.New(), Role: session.RoleEmployer}, "", 10, 0)
	assert.ErrorIs(t, err, support.ErrAdminOnly)
}

func TestService_UpdateStatus(t *testing.T) {
	admin := session.Actor{UserID: uuid.New(), Role: session.RoleAdmin}
	ticket := support.Ticket{ID: uuid.New(), Status: support.StatusResolved}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := supportmocks.NewMockRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), ticket.ID).Return(ticket, nil).Times(2)
	repo.EXPECT().UpdateStatus(gomock.Any(), ticket.ID, support.StatusOpen, gomock.Any()).Return(nil)
	svc := support.NewService(repo)

	got, err := svc.UpdateStatus(context.Background(), admin, ticket.ID, support.StatusOpen)
	require.NoError(t, err)
	assert.Equal(t, support.StatusOpen, got.Status)

	_, err = svc.UpdateStatus(context.Background(), admin, ticket.ID, support.StatusResolved)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestService_OpenCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := supportmocks.NewMockRepository(ctrl)
	repo.EXPECT().CountByStatus(gomock.Any(), support.StatusOpen).Return(4, nil)

	n, err := support.NewService(repo).OpenCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
