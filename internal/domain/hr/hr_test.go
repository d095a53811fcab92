package hr

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLeave_Decisions(t *testing.T) {
	l := &Leave{}
	l.ApplyDefaults()
	assert.Equal(t, LeavePending, l.Status)

	approver := uuid.New()
	l.Approve(&approver)
	assert.Equal(t, LeaveApproved, l.Status)
	assert.Equal(t, &approver, l.ApprovedByID)

	l.Approve(nil)
	assert.Equal(t, &approver, l.ApprovedByID, "approver kept when none given")

	l.Reject()
	assert.Equal(t, LeaveRejected, l.Status)
}
