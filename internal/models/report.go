package models

import "time"

type Step string

const (
	StepIdle      Step = "idle"
	StepInitiated Step = "initiated"
	StepFiltering Step = "filtering"
	StepScoring   Step = "scoring"
	StepCompleted Step = "completed"
	StepFailed    Step = "failed"
)

// Severity is the triage tier derived from a match's similarity percentage.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// SeverityFor maps a similarity percentage to its tier: high >= 85,
// medium >= 70, low otherwise.
func SeverityFor(similarityPercentage float64) Severity {
	switch {
	case similarityPercentage >= 85.0:
		return SeverityHigh
	case similarityPercentage >= 70.0:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Excerpt is a pair of matching snippets, one from each compared text.
// Snippets come from the normalized word sequences, so they are lowercase
// and punctuation-free.
type Excerpt struct {
	ExcerptA string `bson:"excerptA" json:"excerptA"`
	ExcerptB string `bson:"excerptB" json:"excerptB"`
}

// Match is one flagged pair of submissions.
type Match struct {
	ID                   string    `bson:"id" json:"id"`
	StudentIDA           string    `bson:"studentIdA" json:"studentIdA"`
	StudentIDB           string    `bson:"studentIdB" json:"studentIdB"`
	StudentNameA         string    `bson:"studentNameA" json:"studentNameA"`
	StudentNameB         string    `bson:"studentNameB" json:"studentNameB"`
	SimilarityPercentage float64   `bson:"similarityPercentage" json:"similarityPercentage"`
	MatchingExcerpts     []Excerpt `bson:"matchingExcerpts" json:"matchingExcerpts"`
	Severity             Severity  `bson:"severity" json:"severity"`
}

// Report is the outcome of one similarity run over an assignment's
// submissions. Matches are sorted by similarity percentage descending.
type Report struct {
	AssignmentID            string    `bson:"assignmentId" json:"assignmentId"`
	AssignmentTitle         string    `bson:"assignmentTitle" json:"assignmentTitle"`
	TotalSubmissionsChecked int       `bson:"totalSubmissionsChecked" json:"totalSubmissionsChecked"`
	Matches                 []Match   `bson:"matches" json:"matches"`
	RunDate                 time.Time `bson:"runDate" json:"runDate"`
	Status                  string    `bson:"status" json:"status"` // pending, completed, failed
	CreatedAt               time.Time `bson:"createdAt" json:"createdAt"`
}

// FlaggedCount is the number of matches in the report. Derived on demand,
// never stored.
func (r *Report) FlaggedCount() int {
	return len(r.Matches)
}

// HighSeverityCount counts matches in the high tier.
func (r *Report) HighSeverityCount() int {
	return r.countSeverity(SeverityHigh)
}

// MediumSeverityCount counts matches in the medium tier.
func (r *Report) MediumSeverityCount() int {
	return r.countSeverity(SeverityMedium)
}

// LowSeverityCount counts matches in the low tier.
func (r *Report) LowSeverityCount() int {
	return r.countSeverity(SeverityLow)
}

func (r *Report) countSeverity(s Severity) int {
	count := 0
	for _, m := range r.Matches {
		if m.Severity == s {
			count++
		}
	}
	return count
}

// CheckRequest represents a request to run a similarity report
type CheckRequest struct {
	AssignmentID    string `json:"assignmentId" binding:"required"`
	AssignmentTitle string `json:"assignmentTitle"`
}

// CheckResponse represents the response from the report endpoint
type CheckResponse struct {
	Step         Step   `json:"step"`
	AssignmentID string `json:"assignmentId"`
}

// StatusResponse reports the current computation step for an assignment
type StatusResponse struct {
	AssignmentID string `json:"assignmentId"`
	Step         Step   `json:"step"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
