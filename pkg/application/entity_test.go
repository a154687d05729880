package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransition(t *testing.T) {
	all := []Status{StatusNew, StatusShortlisted, StatusInterviewed, StatusHired, StatusRejected}
	allowed := map[Status]map[Status]bool{
		StatusNew:         {StatusShortlisted: true, StatusInterviewed: true, StatusHired: true, StatusRejected: true},
		StatusShortlisted: {StatusInterviewed: true, StatusHired: true, StatusRejected: true},
		StatusInterviewed: {StatusHired: true, StatusRejected: true},
	}
	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[from][to], from.CanTransition(to), "%s -> %s", from, to)
		}
	}
	assert.False(t, Status("Ghosted").Valid())
}

func TestStatus_AcceptsInterview(t *testing.T) {
	want := map[Status]bool{
		StatusNew:         true,
		StatusShortlisted: true,
		StatusInterviewed: true,
		StatusHired:       false,
		StatusRejected:    false,
	}
	for s, ok := range want {
		assert.Equal(t, ok, s.AcceptsInterview(), string(s))
	}
}
