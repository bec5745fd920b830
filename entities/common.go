package entities

import (
	"time"
)

// Timestamps are supplied by the service layer's clock; gorm's own
// time tracking is disabled so saves never overwrite them.
type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp;autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;autoUpdateTime:false" json:"updated_at"`
}

type AnalysisStatus string

const (
	AnalysisStatusPending    AnalysisStatus = "pending"
	AnalysisStatusProcessing AnalysisStatus = "processing"
	AnalysisStatusCompleted  AnalysisStatus = "completed"
	AnalysisStatusFailed     AnalysisStatus = "failed"
)

func (s AnalysisStatus) Valid() bool {
	switch s {
	case AnalysisStatusPending, AnalysisStatusProcessing, AnalysisStatusCompleted, AnalysisStatusFailed:
		return true
	}
	return false
}

type AllergenSeverity string

const (
	SeverityLow    AllergenSeverity = "low"
	SeverityMedium AllergenSeverity = "medium"
	SeverityHigh   AllergenSeverity = "high"
	SeveritySevere AllergenSeverity = "severe"
)

func (s AllergenSeverity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeveritySevere:
		return true
	}
	return false
}
