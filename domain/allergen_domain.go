package domain

import (
	"errors"

	"nutrivision-backend/entities"
)

var (
	ErrAllergenNotFound = errors.New("allergen not found")
	ErrAllergenExists   = errors.New("allergen name already exists")
)

type (
	AllergenCreate struct {
		Name        string `json:"name" validate:"required,max=100"`
		Category    string `json:"category" validate:"omitempty,max=50"`
		Description string `json:"description" validate:"omitempty,max=500"`
		IsCommon    bool   `json:"is_common"`
	}

	AllergenResponse struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Category    string `json:"category,omitempty"`
		Description string `json:"description,omitempty"`
		IsCommon    bool   `json:"is_common"`
	}

	// AnalysisAllergenCreate records one detection made by the analysis
	// worker. Severity defaults to low when omitted; confidence stays absent
	// unless the worker reported one.
	AnalysisAllergenCreate struct {
		AnalysisID uint                      `json:"analysis_id" validate:"required"`
		AllergenID uint                      `json:"allergen_id" validate:"required"`
		Severity   entities.AllergenSeverity `json:"severity" validate:"omitempty,oneof=low medium high severe"`
		Confidence *float64                  `json:"confidence" validate:"omitempty,gte=0,lte=1,decimal4"`
		Notes      string                    `json:"notes" validate:"omitempty,max=500"`
	}

	// UserAllergenCreate is a user's declared sensitivity. Severity defaults
	// to medium when omitted.
	UserAllergenCreate struct {
		UserID     uint                      `json:"user_id" validate:"required"`
		AllergenID uint                      `json:"allergen_id" validate:"required"`
		Severity   entities.AllergenSeverity `json:"severity" validate:"omitempty,oneof=low medium high severe"`
		Notes      string                    `json:"notes" validate:"omitempty,max=500"`
	}

	UserAllergenResponse struct {
		ID         uint                      `json:"id"`
		AllergenID uint                      `json:"allergen_id"`
		Allergen   string                    `json:"allergen"`
		Severity   entities.AllergenSeverity `json:"severity"`
		Notes      string                    `json:"notes,omitempty"`
		CreatedAt  string                    `json:"created_at"`
	}
)
