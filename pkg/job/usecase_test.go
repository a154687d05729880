package job_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/job"
	jobmocks "github.com/talentproph/talentpro/pkg/job/mocks"
	"github.com/talentproph/talentpro/pkg/session"
)

func validDraft() job.Draft {
	return job.Draft{
		Title:       " Customer Support Representative ",
		Description: "Night shift, accounts for a US retailer.",
		Category:    "BPO",
		SalaryMin:   22000,
		SalaryMax:   28000,
		Skills:      []string{"Customer Service", "customer service", "Excel"},
	}
}

func TestService_Create(t *testing.T) {
	employer := session.Actor{UserID: uuid.New(), Role: session.RoleEmployer}

	testCases := []struct {
		name     string
		actor    session.Actor
		draft    func() job.Draft
		mock     func(ctrl *gomock.Controller) (job.Repository, job.SlotPolicy)
		wantErr  error
		wantKind apperr.Kind
	}{
		{
			name:  "created active",
			actor: employer,
			draft: validDraft,
			mock: func(ctrl *gomock.Controller) (job.Repository, job.SlotPolicy) {
				policy := jobmocks.NewMockSlotPolicy(ctrl)
				policy.EXPECT().MaxActiveJobs(gomock.Any(), employer.UserID).Return(3, nil)
				repo := jobmocks.NewMockRepository(ctrl)
				repo.EXPECT().CreateWithinLimit(gomock.Any(), gomock.Any(), 3).DoAndReturn(func(_ context.Context, p job.Post, _ int) error {
					assert.Equal(t, "Customer Support Representative", p.Title)
					assert.Equal(t, job.StatusActive, p.Status)
					assert.Equal(t, job.FullTime, p.EmploymentType)
					assert.Equal(t, []string{"customer service", "excel"}, p.Skills)
					assert.Equal(t, employer.UserID, p.EmployerID)
					return nil
				})
				return repo, policy
			},
		},
		{
			name:  "fourth post on pro is refused",
			actor: employer,
			draft: validDraft,
			mock: func(ctrl *gomock.Controller) (job.Repository, job.SlotPolicy) {
				policy := jobmocks.NewMockSlotPolicy(ctrl)
				policy.EXPECT().MaxActiveJobs(gomock.Any(), employer.UserID).Return(3, nil)
				repo := jobmocks.NewMockRepository(ctrl)
				repo.EXPECT().CreateWithinLimit(gomock.Any(), gomock.Any(), 3).Return(job.ErrSlotLimit)
				return repo, policy
			},
			wantErr: job.ErrSlotLimit,
		},
		{
			name:  "missing salary writes nothing",
			actor: employer,
			draft: func() job.Draft {
				d := validDraft()
				d.SalaryMax = 0
				return d
			},
			mock: func(ctrl *gomock.Controller) (job.Repository, job.SlotPolicy) {
				return jobmocks.NewMockRepository(ctrl), jobmocks.NewMockSlotPolicy(ctrl)
			},
			wantKind: apperr.KindValidation,
		},
		{
			name:  "missing title writes nothing",
			actor: employer,
			draft: func() job.Draft {
				d := validDraft()
				d.Title = "  "
				return d
			},
			mock: func(ctrl *gomock.Controller) (job.Repository, job.SlotPolicy) {
				return jobmocks.NewMockRepository(ctrl), jobmocks.NewMockSlotPolicy(ctrl)
			},
			wantKind: apperr.KindValidation,
		},
		{
			name:  "inverted salary range",
			actor: employer,
			draft: func() job.Draft {
				d := validDraft()
				d.SalaryMin = 50000
				return d
			},
			mock: func(ctrl *gomock.Controller) (job.Repository, job.SlotPolicy) {
				return jobmocks.NewMockRepository(ctrl), jobmocks.NewMockSlotPolicy(ctrl)
			},
			wantKind: apperr.KindValidation,
		},
		{
			name:  "seeker cannot post",
			actor: session.Actor{UserID: uuid.New(), Role: session.RoleSeeker},
			draft: validDraft,
			mock: func(ctrl *gomock.Controller) (job.Repository, job.SlotPolicy) {
				return jobmocks.NewMockRepository(ctrl), jobmocks.NewMockSlotPolicy(ctrl)
			},
			wantErr: job.ErrEmployerOnly,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo, policy := tc.mock(ctrl)
			_, err := job.NewService(repo, policy).Create(context.Background(), tc.actor, tc.draft())
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantKind != apperr.KindInternal:
				assert.Equal(t, tc.wantKind, apperr.KindOf(err))
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestService_SetStatus(t *testing.T) {
	employer := session.Actor{UserID: uuid.New(), Role: session.RoleEmployer}
	paused := job.Post{ID: uuid.New(), EmployerID: employer.UserID, Status: job.StatusPaused}

	testCases := []struct {
		name    string
		actor   session.Actor
		status  job.Status
		mock    func(ctrl *gomock.Controller) (job.Repository, job.SlotPolicy)
		wantErr error
	}{
		{
			name:   "reactivation is slot checked",
			actor:  employer,
			status: job.StatusActive,
			mock: func(ctrl *gomock.Controller) (job.Repository, job.SlotPolicy) {
				repo := jobmocks.NewMockRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), paused.ID).Return(paused, nil)
				repo.EXPECT().SetStatus(gomock.Any(), employer.UserID, paused.ID, job.StatusActive, 1).Return(job.ErrSlotLimit)
				policy := jobmocks.NewMockSlotPolicy(ctrl)
				policy.EXPECT().MaxActiveJobs(gomock.Any(), employer.UserID).Return(1, nil)
				return repo, policy
			},
			wantErr: job.ErrSlotLimit,
		},
		{
			name:   "closing skips the policy",
			actor:  employer,
			status: job.StatusClosed,
			mock: func(ctrl *gomock.Controller) (job.Repository, job.SlotPolicy) {
				repo := jobmocks.NewMockRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), paused.ID).Return(paused, nil)
				repo.EXPECT().SetStatus(gomock.Any(), employer.UserID, paused.ID, job.StatusClosed, 0).Return(nil)
				return repo, jobmocks.NewMockSlotPolicy(ctrl)
			},
		},
		{
			name:   "other employer",
			actor:  session.Actor{UserID: uuid.New(), Role: session.RoleEmployer},
			status: job.StatusClosed,
			mock: func(ctrl *gomock.Controller) (job.Repository, job.SlotPolicy) {
				repo := jobmocks.NewMockRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), paused.ID).Return(paused, nil)
				return repo, jobmocks.NewMockSlotPolicy(ctrl)
			},
			wantErr: job.ErrNotOwner,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo, policy := tc.mock(ctrl)
			got, err := job.NewService(repo, policy).SetStatus(context.Background(), tc.actor, paused.ID, tc.status)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.status, got.Status)
		})
	}
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	closed := job.Post{ID: uuid.New(), EmployerID: owner, Status: job.StatusClosed}
	repo := jobmocks.NewMockRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), closed.ID).Return(closed, nil).Times(2)
	svc := job.NewService(repo, jobmocks.NewMockSlotPolicy(ctrl))

	_, err := svc.Get(context.Background(), session.Actor{UserID: uuid.New(), Role: session.RoleSeeker}, closed.ID)
	assert.ErrorIs(t, err, job.ErrNotFound)

	got, err := svc.Get(context.Background(), session.Actor{UserID: owner, Role: session.RoleEmployer}, closed.ID)
	require.NoError(t, err)
	assert.Equal(t, closed.ID, got.ID)
}

func TestService_SearchAndSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	employer := session.Actor{UserID: uuid.New(), Role: session.RoleEmployer}
	repo := jobmocks.NewMockRepository(ctrl)
	repo.EXPECT().Search(gomock.Any(), job.SearchFilter{Query: "react", Skills: []string{"react"}, Limit: 20}).Return(nil, nil)
	repo.EXPECT().CountActive(gomock.Any(), employer.UserID).Return(2, nil)
	policy := jobmocks.NewMockSlotPolicy(ctrl)
	policy.EXPECT().PlanAllowance(gomock.Any(), employer.UserID).Return("pro", 3, nil)
	svc := job.NewService(repo, policy)

	_, err := svc.Search(context.Background(), job.SearchFilter{Query: " react ", Skills: []string{"React"}, Limit: 1000})
	require.NoError(t, err)

	usage, err := svc.SlotUsage(context.Background(), employer)
	require.NoError(t, err)
	assert.Equal(t, job.SlotUsage{Plan: "pro", Used: 2, Max: 3}, usage)
}
