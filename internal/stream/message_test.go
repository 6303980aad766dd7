package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubmission(t *testing.T) {
	msg := &StreamMessage{
		ID: "1700000000000-0",
		Fields: map[string]string{
			"studentId":       "stu-42",
			"studentName":     "Ada Lovelace",
			"assignmentId":    "hw-7",
			"assignmentTitle": "Essay on rivers",
			"text":            "Rivers carry sediment downstream.",
		},
	}

	sub, err := ParseSubmission(msg)
	require.NoError(t, err)

	assert.Equal(t, "stu-42", sub.StudentID)
	assert.Equal(t, "Ada Lovelace", sub.StudentName)
	assert.Equal(t, "hw-7", sub.AssignmentID)
	assert.Equal(t, "Essay on rivers", sub.AssignmentTitle)
	assert.Equal(t, "Rivers carry sediment downstream.", sub.Text)
}

func TestParseSubmission_MissingStudentID(t *testing.T) {
	msg := &StreamMessage{
		ID:     "1-0",
		Fields: map[string]string{"assignmentId": "hw-7"},
	}

	_, err := ParseSubmission(msg)
	assert.Error(t, err)
}

func TestParseSubmission_MissingAssignmentID(t *testing.T) {
	msg := &StreamMessage{
		ID:     "1-0",
		Fields: map[string]string{"studentId": "stu-42"},
	}

	_, err := ParseSubmission(msg)
	assert.Error(t, err)
}

func TestParseSubmission_EmptyTextAllowed(t *testing.T) {
	// Empty text is not an ingest error; it simply never survives the
	// engine's word-count filter.
	msg := &StreamMessage{
		ID: "1-0",
		Fields: map[string]string{
			"studentId":    "stu-42",
			"assignmentId": "hw-7",
		},
	}

	sub, err := ParseSubmission(msg)
	require.NoError(t, err)
	assert.Empty(t, sub.Text)
}
