package models

import "fmt"

// ApprovalStatus is the workflow state of a change request.
type ApprovalStatus string

const (
	ApprovalStatusOpen     ApprovalStatus = "open"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

var approvalStatuses = map[string]ApprovalStatus{
	"open":     ApprovalStatusOpen,
	"approved": ApprovalStatusApproved,
	"rejected": ApprovalStatusRejected,
}

// ParseApprovalStatus maps a wire string onto the closed enumeration.
// Values outside the table are rejected rather than passed through.
func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	if v, ok := approvalStatuses[s]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: approval status %q", ErrInvalidEnum, s)
}

// String returns the wire value.
func (s ApprovalStatus) String() string { return string(s) }
