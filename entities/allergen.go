package entities

import (
	"time"
)

// Allergen is a catalog entry, e.g. "Peanuts", independent of any user or analysis.
type Allergen struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Category    string    `gorm:"size:50" json:"category,omitempty"` // e.g. "Tree Nuts", "Dairy"
	Description string    `gorm:"size:500" json:"description,omitempty"`
	IsCommon    bool      `gorm:"default:false" json:"is_common"` // top-14 allergen sets
	CreatedAt   time.Time `gorm:"type:timestamp;autoCreateTime:false" json:"created_at"`

	AnalysisAllergens []*AnalysisAllergen `gorm:"foreignKey:AllergenID" json:"-"`
	UserAllergens     []*UserAllergen     `gorm:"foreignKey:AllergenID" json:"-"`
}

func (Allergen) TableName() string {
	return "allergens"
}

// AnalysisAllergen links a detected allergen to one analysis.
type AnalysisAllergen struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	AnalysisID uint             `gorm:"not null;index" json:"analysis_id"`
	AllergenID uint             `gorm:"not null;index" json:"allergen_id"`
	Severity   AllergenSeverity `gorm:"size:20;default:'low'" json:"severity"`
	Confidence *float64         `gorm:"type:decimal(5,4)" json:"confidence,omitempty"` // 0.0000 to 1.0000
	Notes      string           `gorm:"size:500" json:"notes,omitempty"`
	DetectedAt time.Time        `gorm:"type:timestamp" json:"detected_at"`

	Analysis *NutritionalAnalysis `gorm:"foreignKey:AnalysisID" json:"-"`
	Allergen *Allergen            `gorm:"foreignKey:AllergenID" json:"-"`
}

func (AnalysisAllergen) TableName() string {
	return "analysis_allergens"
}

// UserAllergen is a user's declared sensitivity to a catalog allergen.
type UserAllergen struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	UserID     uint             `gorm:"not null;index" json:"user_id"`
	AllergenID uint             `gorm:"not null;index" json:"allergen_id"`
	Severity   AllergenSeverity `gorm:"size:20;default:'medium'" json:"severity"`
	Notes      string           `gorm:"size:500" json:"notes,omitempty"`
	CreatedAt  time.Time        `gorm:"type:timestamp;autoCreateTime:false" json:"created_at"`

	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	Allergen *Allergen `gorm:"foreignKey:AllergenID" json:"-"`
}

func (UserAllergen) TableName() string {
	return "user_allergens"
}
