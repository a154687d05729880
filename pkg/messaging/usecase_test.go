package messaging_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/messaging"
	messagingmocks "github.com/talentproph/talentpro/pkg/messaging/mocks"
	"github.com/talentproph/talentpro/pkg/profile"
	"github.com/talentproph/talentpro/pkg/realtime"
	"github.com/talentproph/talentpro/pkg/session"
)

type fixture struct {
	employer session.Actor
	seeker   session.Actor
	conv     messaging.Conversation
}

func newFixture() fixture {
	e := session.Actor{UserID: uuid.New(), Role: session.RoleEmployer}
	s := session.Actor{UserID: uuid.New(), Role: session.RoleSeeker}
	return fixture{
		employer: e,
		seeker:   s,
		conv: messaging.Conversation{
			ID:         uuid.New(),
			EmployerID: e.UserID,
			SeekerID:   s.UserID,
			CreatedAt:  time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC),
		},
	}
}

func newService(repo messaging.Repository, profiles messaging.ProfileReader, broker realtime.Broker) messaging.UseCase {
	return messaging.NewService(repo, profiles, broker, nil, nil, 5)
}

func TestService_Directory(t *testing.T) {
	f := newFixture()
	name := "Acme BPO"
	last := f.conv.CreatedAt.Add(time.Hour)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := messagingmocks.NewMockRepository(ctrl)
	repo.EXPECT().ListForUser(gomock.Any(), f.seeker.UserID, messaging.SideSeeker).Return([]messaging.Row{
		{
			Conversation: func() messaging.Conversation {
				c := f.conv
				c.LastMessage = "Are you free tomorrow?"
				c.LastMessageAt = &last
				c.LastSenderID = uuid.NullUUID{UUID: f.employer.UserID, Valid: true}
				return c
			}(),
			CounterpartID:   f.employer.UserID,
			CounterpartName: &name,
			Unread:          1,
		},
	}, nil)
	svc := newService(repo, messagingmocks.NewMockProfileReader(ctrl), realtime.NewMemoryBroker(1, nil, nil))

	d, err := svc.Directory(context.Background(), f.seeker, messaging.TabUnread, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, d.Items, 1)
	assert.Equal(t, "Acme BPO", d.Items[0].CounterpartName)
	assert.Equal(t, "General inquiry", d.Items[0].JobTitle)
	assert.False(t, d.Items[0].LastFromMe)
	assert.Equal(t, 1, d.Counts[messaging.TabUnread])

	_, err = svc.Directory(context.Background(), f.seeker, messaging.Tab("starred"), uuid.Nil)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Directory(context.Background(), session.Actor{UserID: uuid.New(), Role: session.RoleAdmin}, messaging.TabInbox, uuid.Nil)
	assert.ErrorIs(t, err, messaging.ErrNoInbox)
}

func TestService_Start(t *testing.T) {
	f := newFixture()

	testCases := []struct {
		name    string
		actor   session.Actor
		mock    func(ctrl *gomock.Controller) (messaging.Repository, messaging.ProfileReader)
		wantErr error
	}{
		{
			name:  "employer opens a thread with a seeker",
			actor: f.employer,
			mock: func(ctrl *gomock.Controller) (messaging.Repository, messaging.ProfileReader) {
				profiles := messagingmocks.NewMockProfileReader(ctrl)
				profiles.EXPECT().GetByID(gomock.Any(), f.seeker.UserID).
					Return(profile.Profile{ID: f.seeker.UserID, Role: session.RoleSeeker}, nil)
				repo := messagingmocks.NewMockRepository(ctrl)
				repo.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c messaging.Conversation) (messaging.Conversation, error) {
						assert.Equal(t, f.employer.UserID, c.EmployerID)
						assert.Equal(t, f.seeker.UserID, c.SeekerID)
						return f.conv, nil
					})
				return repo, profiles
			},
		},
		{
			name:  "deleted conversation is restored for the seeker",
			actor: f.seeker,
			mock: func(ctrl *gomock.Controller) (messaging.Repository, messaging.ProfileReader) {
				profiles := messagingmocks.NewMockProfileReader(ctrl)
				profiles.EXPECT().GetByID(gomock.Any(), f.employer.UserID).
					Return(profile.Profile{ID: f.employer.UserID, Role: session.RoleEmployer}, nil)
				deleted := f.conv
				deleted.Seeker.Deleted = true
				repo := messagingmocks.NewMockRepository(ctrl)
				repo.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).Return(deleted, nil)
				repo.EXPECT().SetFlag(gomock.Any(), f.conv.ID, messaging.SideSeeker, messaging.FlagDeleted, false).Return(nil)
				return repo, profiles
			},
		},
		{
			name:  "two seekers cannot talk",
			actor: f.seeker,
			mock: func(ctrl *gomock.Controller) (messaging.Repository, messaging.ProfileReader) {
				profiles := messagingmocks.NewMockProfileReader(ctrl)
				profiles.EXPECT().GetByID(gomock.Any(), f.employer.UserID).
					Return(profile.Profile{ID: f.employer.UserID, Role: session.RoleSeeker}, nil)
				return messagingmocks.NewMockRepository(ctrl), profiles
			},
			wantErr: messaging.ErrSameRole,
		},
		{
			name:  "unknown counterpart",
			actor: f.seeker,
			mock: func(ctrl *gomock.Controller) (messaging.Repository, messaging.ProfileReader) {
				profiles := messagingmocks.NewMockProfileReader(ctrl)
				profiles.EXPECT().GetByID(gomock.Any(), f.employer.UserID).Return(profile.Profile{}, profile.ErrNotFound)
				return messagingmocks.NewMockRepository(ctrl), profiles
			},
			wantErr: profile.ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo, profiles := tc.mock(ctrl)
			counterpart := f.seeker.UserID
			if tc.actor.IsSeeker() {
				counterpart = f.employer.UserID
			}
			c, err := newService(repo, profiles, realtime.NewMemoryBroker(1, nil, nil)).
				Start(context.Background(), tc.actor, counterpart, uuid.NullUUID{})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, f.conv.ID, c.ID)
			assert.False(t, c.Seeker.Deleted)
		})
	}
}

func TestService_Open_MarksOnlyCounterpartMessages(t *testing.T) {
	f := newFixture()
	mine := messaging.Message{ID: uuid.New(), ConversationID: f.conv.ID, SenderID: f.seeker.UserID, Content: "Hello po"}
	theirs := messaging.Message{ID: uuid.New(), ConversationID: f.conv.ID, SenderID: f.employer.UserID, Content: "Hi!"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := messagingmocks.NewMockRepository(ctrl)
	repo.EXPECT().GetConversation(gomock.Any(), f.conv.ID).Return(f.conv, nil)
	repo.EXPECT().ListMessages(gomock.Any(), f.conv.ID).Return([]messaging.Message{mine, theirs}, nil)
	repo.EXPECT().MarkRead(gomock.Any(), f.conv.ID, f.seeker.UserID).Return(int64(1), nil)
	svc := newService(repo, messagingmocks.NewMockProfileReader(ctrl), realtime.NewMemoryBroker(1, nil, nil))

	msgs, err := svc.Open(context.Background(), f.seeker, f.conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.False(t, msgs[0].IsRead)
	assert.True(t, msgs[1].IsRead)
}

func TestService_Open_Outsider(t *testing.T) {
	f := newFixture()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := messagingmocks.NewMockRepository(ctrl)
	repo.EXPECT().GetConversation(gomock.Any(), f.conv.ID).Return(f.conv, nil)
	svc := newService(repo, messagingmocks.NewMockProfileReader(ctrl), realtime.NewMemoryBroker(1, nil, nil))

	outsider := session.Actor{UserID: uuid.New(), Role: session.RoleEmployer}
	_, err := svc.Open(context.Background(), outsider, f.conv.ID)
	assert.ErrorIs(t, err, messaging.ErrNotFound)
}

func TestService_Send(t *testing.T) {
	f := newFixture()

	testCases := []struct {
		name     string
		content  string
		clientID string
		mock     func(ctrl *gomock.Controller) messaging.Repository
		wantErr  error
		wantKind apperr.Kind
	}{
		{
			name:     "stored and published",
			content:  "  Salamat po!  ",
			clientID: "c-1",
			mock: func(ctrl *gomock.Controller) messaging.Repository {
				repo := messagingmocks.NewMockRepository(ctrl)
				repo.EXPECT().GetConversation(gomock.Any(), f.conv.ID).Return(f.conv, nil)
				repo.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m messaging.Message) (messaging.Message, bool, error) {
						assert.Equal(t, "Salamat po!", m.Content)
						assert.Equal(t, f.seeker.UserID, m.SenderID)
						return m, true, nil
					})
				return repo
			},
		},
		{
			name:     "resend returns the stored row",
			content:  "Salamat po!",
			clientID: "c-1",
			mock: func(ctrl *gomock.Controller) messaging.Repository {
				repo := messagingmocks.NewMockRepository(ctrl)
				repo.EXPECT().GetConversation(gomock.Any(), f.conv.ID).Return(f.conv, nil)
				repo.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m messaging.Message) (messaging.Message, bool, error) {
						m.ID = uuid.MustParse("6f1c1b7e-8a53-4c2f-9d0e-0a4a3f2b9c11")
						return m, false, nil
					})
				return repo
			},
		},
		{
			name:    "blank message writes nothing",
			content: " \n\t ",
			mock: func(ctrl *gomock.Controller) messaging.Repository {
				return messagingmocks.NewMockRepository(ctrl)
			},
			wantErr: messaging.ErrEmptyMessage,
		},
		{
			name:    "too long",
			content: strings.Repeat("a", 5001),
			mock: func(ctrl *gomock.Controller) messaging.Repository {
				return messagingmocks.NewMockRepository(ctrl)
			},
			wantKind: apperr.KindValidation,
		},
		{
			name:     "client id too long",
			content:  "hi",
			clientID: strings.Repeat("x", 65),
			mock: func(ctrl *gomock.Controller) messaging.Repository {
				return messagingmocks.NewMockRepository(ctrl)
			},
			wantKind: apperr.KindValidation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			broker := realtime.NewMemoryBroker(4, nil, nil)
			defer broker.Close()
			sub, err := broker.Subscribe(context.Background(), messaging.Topic(f.conv.ID))
			require.NoError(t, err)

			svc := newService(tc.mock(ctrl), messagingmocks.NewMockProfileReader(ctrl), broker)
			m, err := svc.Send(context.Background(), f.seeker, f.conv.ID, tc.content, tc.clientID)
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, sub.C())
				return
			case tc.wantKind != apperr.KindInternal:
				assert.Equal(t, tc.wantKind, apperr.KindOf(err))
				assert.Empty(t, sub.C())
				return
			}
			require.NoError(t, err)

			var pushed messaging.Message
			require.NoError(t, json.Unmarshal(<-sub.C(), &pushed))
			assert.Equal(t, m.ID, pushed.ID)
			assert.Equal(t, "c-1", pushed.ClientID)
			assert.Equal(t, f.conv.ID, pushed.ConversationID)
		})
	}
}

func TestService_ToggleFlag(t *testing.T) {
	f := newFixture()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := messagingmocks.NewMockRepository(ctrl)
	repo.EXPECT().GetConversation(gomock.Any(), f.conv.ID).Return(f.conv, nil).Times(2)
	gomock.InOrder(
		repo.EXPECT().ToggleFlag(gomock.Any(), f.conv.ID, messaging.SideEmployer, messaging.FlagPinned).Return(true, nil),
		repo.EXPECT().ToggleFlag(gomock.Any(), f.conv.ID, messaging.SideEmployer, messaging.FlagPinned).Return(false, nil),
	)
	svc := newService(repo, messagingmocks.NewMockProfileReader(ctrl), realtime.NewMemoryBroker(1, nil, nil))

	on, err := svc.ToggleFlag(context.Background(), f.employer, f.conv.ID, messaging.FlagPinned)
	require.NoError(t, err)
	assert.True(t, on)
	on, err = svc.ToggleFlag(context.Background(), f.employer, f.conv.ID, messaging.FlagPinned)
	require.NoError(t, err)
	assert.False(t, on)

	_, err = svc.ToggleFlag(context.Background(), f.employer, f.conv.ID, messaging.FlagDeleted)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestService_Delete(t *testing.T) {
	f := newFixture()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := messagingmocks.NewMockRepository(ctrl)
	repo.EXPECT().GetConversation(gomock.Any(), f.conv.ID).Return(f.conv, nil)
	repo.EXPECT().SetFlag(gomock.Any(), f.conv.ID, messaging.SideSeeker, messaging.FlagDeleted, true).Return(nil)
	svc := newService(repo, messagingmocks.NewMockProfileReader(ctrl), realtime.NewMemoryBroker(1, nil, nil))

	assert.NoError(t, svc.Delete(context.Background(), f.seeker, f.conv.ID))
}

func emptyRepo(ctrl *gomock.Controller) messaging.Repository {
	return messagingmocks.NewMockRepository(ctrl)
}

func TestService_CreateLabel(t *testing.T) {
	f := newFixture()

	testCases := []struct {
		name      string
		actor     session.Actor
		labelName string
		color     string
		mock      func(ctrl *gomock.Controller) messaging.Repository
		wantColor string
		wantErr   error
		wantKind  apperr.Kind
	}{
		{
			name:      "default color",
			actor:     f.employer,
			labelName: " Shortlist ",
			mock: func(ctrl *gomock.Controller) messaging.Repository {
				repo := messagingmocks.NewMockRepository(ctrl)
				repo.EXPECT().CreateLabel(gomock.Any(), gomock.Any()).Return(nil)
				return repo
			},
			wantColor: "#64748b",
		},
		{
			name:      "custom color lowercased",
			actor:     f.employer,
			labelName: "Urgent",
			color:     "#FF0000",
			mock: func(ctrl *gomock.Controller) messaging.Repository {
				repo := messagingmocks.NewMockRepository(ctrl)
				repo.EXPECT().CreateLabel(gomock.Any(), gomock.Any()).Return(nil)
				return repo
			},
			wantColor: "#ff0000",
		},
		{
			name:      "duplicate name",
			actor:     f.employer,
			labelName: "Urgent",
			mock: func(ctrl *gomock.Controller) messaging.Repository {
				repo := messagingmocks.NewMockRepository(ctrl)
				repo.EXPECT().CreateLabel(gomock.Any(), gomock.Any()).Return(messaging.ErrLabelExists)
				return repo
			},
			wantErr: messaging.ErrLabelExists,
		},
		{
			name:      "bad color",
			actor:     f.employer,
			labelName: "Urgent",
			color:     "red",
			mock:      emptyRepo,
			wantKind:  apperr.KindValidation,
		},
		{
			name:      "seekers have no labels",
			actor:     f.seeker,
			labelName: "Urgent",
			mock:      emptyRepo,
			wantErr:   messaging.ErrEmployerOnly,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newService(tc.mock(ctrl), messagingmocks.NewMockProfileReader(ctrl), realtime.NewMemoryBroker(1, nil, nil))
			l, err := svc.CreateLabel(context.Background(), tc.actor, tc.labelName, tc.color)
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantKind != apperr.KindInternal:
				assert.Equal(t, tc.wantKind, apperr.KindOf(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(tc.labelName), l.Name)
				assert.Equal(t, tc.wantColor, l.Color)
				assert.Equal(t, f.employer.UserID, l.EmployerID)
			}
		})
	}
}

func TestService_ToggleLabel(t *testing.T) {
	f := newFixture()
	own := messaging.Label{ID: uuid.New(), EmployerID: f.employer.UserID, Name: "Urgent"}
	foreign := messaging.Label{ID: uuid.New(), EmployerID: uuid.New(), Name: "Other"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := messagingmocks.NewMockRepository(ctrl)
	repo.EXPECT().GetConversation(gomock.Any(), f.conv.ID).Return(f.conv, nil).Times(2)
	repo.EXPECT().GetLabel(gomock.Any(), own.ID).Return(own, nil)
	repo.EXPECT().GetLabel(gomock.Any(), foreign.ID).Return(foreign, nil)
	repo.EXPECT().ToggleLabel(gomock.Any(), f.conv.ID, own.ID).Return(true, nil)
	repo.EXPECT().ConversationLabels(gomock.Any(), f.conv.ID).Return([]messaging.Label{own}, nil)
	svc := newService(repo, messagingmocks.NewMockProfileReader(ctrl), realtime.NewMemoryBroker(1, nil, nil))

	labels, err := svc.ToggleLabel(context.Background(), f.employer, f.conv.ID, own.ID)
	require.NoError(t, err)
	assert.Equal(t, []messaging.Label{own}, labels)

	_, err = svc.ToggleLabel(context.Background(), f.employer, f.conv.ID, foreign.ID)
	assert.ErrorIs(t, err, messaging.ErrLabelNotFound)

	_, err = svc.ToggleLabel(context.Background(), f.seeker, f.conv.ID, own.ID)
	assert.ErrorIs(t, err, messaging.ErrEmployerOnly)
}
