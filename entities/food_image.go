package entities

import (
	"time"
)

type FoodImage struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	Filename         string    `gorm:"size:255;not null" json:"filename"`
	FilePath         string    `gorm:"size:500;not null" json:"file_path"`
	FileSize         int64     `gorm:"not null" json:"file_size"` // bytes, always > 0
	MimeType         string    `gorm:"size:100;not null" json:"mime_type"`
	OriginalFilename string    `gorm:"size:255" json:"original_filename,omitempty"`
	Description      string    `gorm:"size:1000" json:"description,omitempty"`
	UploadedAt       time.Time `gorm:"type:timestamp" json:"uploaded_at"`

	User                *User                `gorm:"foreignKey:UserID" json:"-"`
	NutritionalAnalysis *NutritionalAnalysis `gorm:"foreignKey:FoodImageID" json:"-"`
}

func (FoodImage) TableName() string {
	return "food_images"
}
