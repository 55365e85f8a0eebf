package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeLeaveSubmitted = "leave.submitted"
	EventTypeLeaveApproved  = "leave.approved"
	EventTypeLeaveRejected  = "leave.rejected"
)

type LeaveSubmittedEvent struct {
	BaseEvent
	LeaveID   int64  `json:"leave_id"`
	UserID    int64  `json:"user_id"`
	LeaveType string `json:"leave_type"`
}

func NewLeaveSubmittedEvent(leaveID, userID int64, leaveType string) *LeaveSubmittedEvent {
	return &LeaveSubmittedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeLeaveSubmitted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"leave_id":   leaveID,
				"user_id":    userID,
				"leave_type": leaveType,
			},
		},
		LeaveID:   leaveID,
		UserID:    userID,
		LeaveType: leaveType,
	}
}

type LeaveReviewedEvent struct {
	BaseEvent
	LeaveID    int64 `json:"leave_id"`
	UserID     int64 `json:"user_id"`
	ReviewerID int64 `json:"reviewer_id"`
}

func newLeaveReviewedEvent(eventType string, leaveID, userID, reviewerID int64) *LeaveReviewedEvent {
	return &LeaveReviewedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"leave_id":    leaveID,
				"user_id":     userID,
				"reviewer_id": reviewerID,
			},
		},
		LeaveID:    leaveID,
		UserID:     userID,
		ReviewerID: reviewerID,
	}
}

func NewLeaveApprovedEvent(leaveID, userID, reviewerID int64) *LeaveReviewedEvent {
	return newLeaveReviewedEvent(EventTypeLeaveApproved, leaveID, userID, reviewerID)
}

func NewLeaveRejectedEvent(leaveID, userID, reviewerID int64) *LeaveReviewedEvent {
	return newLeaveReviewedEvent(EventTypeLeaveRejected, leaveID, userID, reviewerID)
}
