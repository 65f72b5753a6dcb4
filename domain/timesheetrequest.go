package domain

import "time"

// RequestStatus represents the status of a time sheet correction request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// TimeSheetRequest represents an employee's claim that a recorded interval
// should read differently. Requests leave the pending state exactly once.
type TimeSheetRequest struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Reason    string        `json:"reason"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewTimeSheetRequest creates a pending correction request
func NewTimeSheetRequest(id, userID string, start, end time.Time, reason string) *TimeSheetRequest {
	return &TimeSheetRequest{
		ID:        id,
		UserID:    userID,
		StartTime: start,
		EndTime:   end,
		Reason:    reason,
		Status:    RequestStatusPending,
		CreatedAt: time.Now(),
	}
}

// Accept marks the request accepted
func (r *TimeSheetRequest) Accept() error {
	if r.Status != RequestStatusPending {
		return ErrRequestAlreadyResolved
	}
	r.Status = RequestStatusAccepted
	return nil
}

// Reject marks the request rejected
func (r *TimeSheetRequest) Reject() error {
	if r.Status != RequestStatusPending {
		return ErrRequestAlreadyResolved
	}
	r.Status = RequestStatusRejected
	return nil
}
