package profile_test

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/profile"
	profilemocks "github.com/talentproph/talentpro/pkg/profile/mocks"
	"github.com/talentproph/talentpro/pkg/session"
)

func ptr[T any](v T) *T { return &v }

func TestService_UpdateMe(t *testing.T) {
	me := uuid.New()
	actor := session.Actor{UserID: me, Role: session.RoleSeeker}
	current := profile.Profile{ID: me, Role: session.RoleSeeker, FullName: "Juan dela Cruz", Skills: []string{"excel"}}

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) profile.Repository
		patch    profile.Patch
		wantKind apperr.Kind
	}{
		{
			name: "partial update",
			mock: func(ctrl *gomock.Controller) profile.Repository {
				repo := profilemocks.NewMockRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), me).Return(current, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p profile.Profile) error {
					assert.Equal(t, "Juan dela Cruz", p.FullName)
					assert.Equal(t, "Cebu City", p.Location)
					assert.Equal(t, []string{"go", "react"}, p.Skills)
					assert.Equal(t, 45000, p.ExpectedSalary)
					return nil
				})
				repo.EXPECT().GetByID(gomock.Any(), me).Return(current, nil)
				return repo
			},
			patch: profile.Patch{
				Location:       ptr(" Cebu City "),
				Skills:         ptr([]string{"Go", "React", "go"}),
				ExpectedSalary: ptr(45000),
			},
		},
		{
			name: "blank name rejected before write",
			mock: func(ctrl *gomock.Controller) profile.Repository {
				repo := profilemocks.NewMockRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), me).Return(current, nil)
				return repo
			},
			patch:    profile.Patch{FullName: ptr("   ")},
			wantKind: apperr.KindValidation,
		},
		{
			name: "relative website rejected",
			mock: func(ctrl *gomock.Controller) profile.Repository {
				repo := profilemocks.NewMockRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), me).Return(current, nil)
				return repo
			},
			patch:    profile.Patch{CompanyWebsite: ptr("acme.ph")},
			wantKind: apperr.KindValidation,
		},
		{
			name: "missing profile",
			mock: func(ctrl *gomock.Controller) profile.Repository {
				repo := profilemocks.NewMockRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), me).Return(profile.Profile{}, profile.ErrNotFound)
				return repo
			},
			patch:    profile.Patch{Bio: ptr("hi")},
			wantKind: apperr.KindNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			_, err := profile.NewService(tc.mock(ctrl)).UpdateMe(context.Background(), actor, tc.patch)
			if tc.wantKind != apperr.KindInternal {
				assert.Equal(t, tc.wantKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_SearchTalents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := profilemocks.NewMockRepository(ctrl)
	repo.EXPECT().SearchSeekers(gomock.Any(), profile.TalentFilter{Query: "va", Skills: []string{"data entry"}, Limit: 100}).
		Return([]profile.Profile{{ID: uuid.New(), Assessment: profile.Assessment{IQ: 100}}}, nil)
	svc := profile.NewService(repo)

	employer := session.Actor{UserID: uuid.New(), Role: session.RoleEmployer}
	got, err := svc.SearchTalents(context.Background(), employer, profile.TalentFilter{Query: " va ", Skills: []string{"Data  Entry"}, Limit: 500, Offset: -3})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 50.0, got[0].Score.IQ)

	seeker := session.Actor{UserID: uuid.New(), Role: session.RoleSeeker}
	_, err = svc.SearchTalents(context.Background(), seeker, profile.TalentFilter{})
	assert.ErrorIs(t, err, profile.ErrEmployerOnly)
}

func TestService_SaveTalent(t *testing.T) {
	employer := session.Actor{UserID: uuid.New(), Role: session.RoleEmployer}
	seekerID := uuid.New()

	testCases := []struct {
		name    string
		actor   session.Actor
		mock    func(ctrl *gomock.Controller) profile.Repository
		wantErr error
	}{
		{
			name:  "saved",
			actor: employer,
			mock: func(ctrl *gomock.Controller) profile.Repository {
				repo := profilemocks.NewMockRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), seekerID).Return(profile.Profile{ID: seekerID, Role: session.RoleSeeker}, nil)
				repo.EXPECT().SaveTalent(gomock.Any(), employer.UserID, seekerID).Return(nil)
				return repo
			},
		},
		{
			name:  "employers cannot be saved",
			actor: employer,
			mock: func(ctrl *gomock.Controller) profile.Repository {
				repo := profilemocks.NewMockRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), seekerID).Return(profile.Profile{ID: seekerID, Role: session.RoleEmployer}, nil)
				return repo
			},
			wantErr: profile.ErrNotSeeker,
		},
		{
			name:  "seekers cannot save",
			actor: session.Actor{UserID: uuid.New(), Role: session.RoleSeeker},
			mock: func(ctrl *gomock.Controller) profile.Repository {
				return profilemocks.NewMockRepository(ctrl)
			},
			wantErr: profile.ErrEmployerOnly,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			err := profile.NewService(tc.mock(ctrl)).SaveTalent(context.Background(), tc.actor, seekerID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_SetAssessment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := profilemocks.NewMockRepository(ctrl)
	repo.EXPECT().UpdateAssessment(gomock.Any(), id, profile.Assessment{IQ: 130, English: 88}).Return(nil)
	repo.EXPECT().GetByID(gomock.Any(), id).Return(profile.Profile{ID: id}, nil)
	svc := profile.NewService(repo)

	admin := session.Actor{UserID: uuid.New(), Role: session.RoleAdmin}
	_, err := svc.SetAssessment(context.Background(), admin, id, profile.Assessment{IQ: 130, English: 88})
	require.NoError(t, err)

	_, err = svc.SetAssessment(context.Background(), admin, id, profile.Assessment{IQ: 201})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.SetAssessment(context.Background(), session.Actor{Role: session.RoleEmployer}, id, profile.Assessment{})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestService_UploadResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	me := uuid.New()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:p>Customer service and Data Entry specialist. Excel.</w:p>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	repo := profilemocks.NewMockRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), me).Return(profile.Profile{ID: me, Role: session.RoleSeeker, Skills: []string{"excel", "canva"}}, nil)
	repo.EXPECT().SaveResume(gomock.Any(), me, gomock.Any(), []string{"excel", "canva", "customer service", "data entry"}).Return(nil)

	p, err := profile.NewService(repo).UploadResume(context.Background(), session.Actor{UserID: me, Role: session.RoleSeeker}, "cv.docx", buf.Bytes())
	require.NoError(t, err)
	assert.Contains(t, p.ResumeText, "Customer service")

	_, err = profile.NewService(repo).UploadResume(context.Background(), session.Actor{UserID: me, Role: session.RoleEmployer}, "cv.docx", buf.Bytes())
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}
