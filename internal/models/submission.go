package models

import "time"

// Submission is one student's text answer for an assignment. The engine
// compares submissions only within the same assignment; StudentName is used
// for report labeling, never for comparison.
type Submission struct {
	StudentID       string    `bson:"studentId" json:"studentId"`
	StudentName     string    `bson:"studentName" json:"studentName"`
	AssignmentID    string    `bson:"assignmentId" json:"assignmentId"`
	AssignmentTitle string    `bson:"assignmentTitle" json:"assignmentTitle"`
	Text            string    `bson:"text" json:"text"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
