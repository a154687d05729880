package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentproph/talentpro/pkg/messaging"
)

func TestContainsPattern(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{in: "", want: ""},
		{in: "   ", want: ""},
		{in: " virtual assistant ", want: "%virtual assistant%"},
		{in: "100%", want: `%100\%%`},
		{in: "snake_case", want: `%snake\_case%`},
		{in: `C:\path`, want: `%C:\\path%`},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, containsPattern(tc.in))
		})
	}
}

func TestTextArray(t *testing.T) {
	assert.Equal(t, []string{}, textArray(nil))
	assert.Equal(t, []string{"go"}, textArray([]string{"go"}))
}

func TestFlagColumn(t *testing.T) {
	testCases := []struct {
		side    messaging.Side
		flag    messaging.Flag
		want    string
		wantErr bool
	}{
		{side: messaging.SideEmployer, flag: messaging.FlagPinned, want: "is_pinned_employer"},
		{side: messaging.SideSeeker, flag: messaging.FlagArchived, want: "is_archived_seeker"},
		{side: messaging.SideSeeker, flag: messaging.FlagSpam, want: "is_spam_seeker"},
		{side: messaging.SideEmployer, flag: messaging.FlagDeleted, want: "is_deleted_employer"},
		{side: messaging.SideSeeker, flag: messaging.Flag("starred"), wantErr: true},
		{side: messaging.Side("admin; DROP TABLE messages"), flag: messaging.FlagPinned, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(string(tc.side)+"/"+string(tc.flag), func(t *testing.T) {
			got, err := flagColumn(tc.side, tc.flag)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParticipantColumns(t *testing.T) {
	own, other, err := participantColumns(messaging.SideSeeker)
	require.NoError(t, err)
	assert.Equal(t, "seeker_id", own)
	assert.Equal(t, "employer_id", other)

	_, _, err = participantColumns(messaging.Side("moderator"))
	assert.Error(t, err)
}
