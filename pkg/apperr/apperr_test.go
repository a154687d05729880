package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	conflict := New(KindConflict, "already there")
	testCases := []struct {
		name     string
		err      error
		wantKind Kind
		wantMsg  string
	}{
		{name: "plain error", err: errors.New("boom"), wantKind: KindInternal, wantMsg: "fallback"},
		{name: "validation", err: Validation("title is required"), wantKind: KindValidation, wantMsg: "title is required"},
		{name: "wrapped sentinel", err: fmt.Errorf("create: %w", conflict), wantKind: KindConflict, wantMsg: "already there"},
		{name: "not found", err: NotFound("job not found"), wantKind: KindNotFound, wantMsg: "job not found"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantKind, KindOf(tc.err))
			assert.Equal(t, tc.wantMsg, Message(tc.err, "fallback"))
		})
	}
}
