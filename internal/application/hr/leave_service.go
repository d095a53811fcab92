package hr

import (
	"context"

	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/hr"
	"github.com/google/uuid"
)

// Decision is the response of a leave approval action.
type Decision struct {
	Status string `json:"status"`
}

// LeaveService approves and rejects leave requests.
type LeaveService struct {
	leaves *resource.Service[hr.Leave]
}

// NewLeaveService creates a LeaveService.
func NewLeaveService(leaves *resource.Service[hr.Leave]) *LeaveService {
	return &LeaveService{leaves: leaves}
}

// Approve approves a leave. body may name the approving employee in
// approved_by, which must exist.
func (s *LeaveService) Approve(ctx context.Context, id uuid.UUID, body []byte) (*Decision, error) {
	in, err := s.leaves.Input(body)
	if err != nil {
		return nil, err
	}
	if _, err := s.leaves.Modify(ctx, id, func(l *hr.Leave) error {
		l.Approve(in.ApprovedByID)
		return nil
	}); err != nil {
		return nil, err
	}
	return &Decision{Status: "leave approved"}, nil
}

// Reject rejects a leave.
func (s *LeaveService) Reject(ctx context.Context, id uuid.UUID) (*Decision, error) {
	if _, err := s.leaves.Modify(ctx, id, func(l *hr.Leave) error {
		l.Reject()
		return nil
	}); err != nil {
		return nil, err
	}
	return &Decision{Status: "leave rejected"}, nil
}
