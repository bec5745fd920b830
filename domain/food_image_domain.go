package domain

import (
	"errors"

	"nutrivision-backend/entities"
)

var ErrFoodImageNotFound = errors.New("food image not found")

type (
	// FoodImageUpload carries the metadata the upload handler supplies after
	// the binary itself has been written to storage.
	FoodImageUpload struct {
		Filename         string `json:"filename" validate:"required,max=255"`
		FilePath         string `json:"file_path" validate:"required,max=500"`
		FileSize         int64  `json:"file_size" validate:"required,gt=0"`
		MimeType         string `json:"mime_type" validate:"required,max=100"`
		OriginalFilename string `json:"original_filename" validate:"omitempty,max=255"`
		Description      string `json:"description" validate:"omitempty,max=1000"`
	}

	FoodImageResponse struct {
		ID               uint                     `json:"id"`
		Filename         string                   `json:"filename"`
		OriginalFilename string                   `json:"original_filename,omitempty"`
		FileSize         int64                    `json:"file_size"`
		Description      string                   `json:"description,omitempty"`
		UploadedAt       string                   `json:"uploaded_at"`
		AnalysisStatus   *entities.AnalysisStatus `json:"analysis_status,omitempty"`
	}
)
