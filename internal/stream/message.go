package stream

import (
	"fmt"

	"github.com/courseloop/veritas/internal/models"
)

// StreamMessage is a raw entry read from the Redis stream.
type StreamMessage struct {
	ID     string
	Fields map[string]string
}

// ParseSubmission maps a stream entry onto a submission. The producer is the
// LMS backend; field names follow its payload contract.
func ParseSubmission(msg *StreamMessage) (*models.Submission, error) {
	studentID, ok := msg.Fields["studentId"]
	if !ok || studentID == "" {
		return nil, fmt.Errorf("message %s: missing studentId", msg.ID)
	}

	assignmentID, ok := msg.Fields["assignmentId"]
	if !ok || assignmentID == "" {
		return nil, fmt.Errorf("message %s: missing assignmentId", msg.ID)
	}

	return &models.Submission{
		StudentID:       studentID,
		StudentName:     msg.Fields["studentName"],
		AssignmentID:    assignmentID,
		AssignmentTitle: msg.Fields["assignmentTitle"],
		Text:            msg.Fields["text"],
	}, nil
}
