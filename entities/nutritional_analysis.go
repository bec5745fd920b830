package entities

import (
	"gorm.io/datatypes"
)

// NutritionalAnalysis holds the analysis result for exactly one food image.
// The unique index on FoodImageID enforces the one-to-one relationship.
// Nutrient amounts are per 100g; absent values stay NULL rather than zero.
type NutritionalAnalysis struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	FoodImageID uint           `gorm:"uniqueIndex;not null" json:"food_image_id"`
	Status      AnalysisStatus `gorm:"size:20;default:'pending'" json:"status"`

	// Food identification
	FoodName        string   `gorm:"size:200" json:"food_name,omitempty"`
	FoodCategory    string   `gorm:"size:100" json:"food_category,omitempty"`
	ConfidenceScore *float64 `gorm:"type:decimal(5,4)" json:"confidence_score,omitempty"` // 0.0000 to 1.0000

	// Macronutrients
	Calories      *float64 `gorm:"type:decimal(8,2)" json:"calories,omitempty"` // kcal
	Protein       *float64 `gorm:"type:decimal(8,2)" json:"protein,omitempty"`  // grams
	Carbohydrates *float64 `gorm:"type:decimal(8,2)" json:"carbohydrates,omitempty"`
	TotalFat      *float64 `gorm:"type:decimal(8,2)" json:"total_fat,omitempty"`
	SaturatedFat  *float64 `gorm:"type:decimal(8,2)" json:"saturated_fat,omitempty"`
	Fiber         *float64 `gorm:"type:decimal(8,2)" json:"fiber,omitempty"`
	Sugar         *float64 `gorm:"type:decimal(8,2)" json:"sugar,omitempty"`
	Sodium        *float64 `gorm:"type:decimal(8,2)" json:"sodium,omitempty"` // mg

	// Vitamins, mg or mcg as appropriate
	VitaminA   *float64 `gorm:"type:decimal(8,2)" json:"vitamin_a,omitempty"`
	VitaminC   *float64 `gorm:"type:decimal(8,2)" json:"vitamin_c,omitempty"`
	VitaminD   *float64 `gorm:"type:decimal(8,2)" json:"vitamin_d,omitempty"`
	VitaminE   *float64 `gorm:"type:decimal(8,2)" json:"vitamin_e,omitempty"`
	VitaminK   *float64 `gorm:"type:decimal(8,2)" json:"vitamin_k,omitempty"`
	VitaminB1  *float64 `gorm:"type:decimal(8,2)" json:"vitamin_b1,omitempty"`
	VitaminB2  *float64 `gorm:"type:decimal(8,2)" json:"vitamin_b2,omitempty"`
	VitaminB3  *float64 `gorm:"type:decimal(8,2)" json:"vitamin_b3,omitempty"`
	VitaminB6  *float64 `gorm:"type:decimal(8,2)" json:"vitamin_b6,omitempty"`
	VitaminB12 *float64 `gorm:"type:decimal(8,2)" json:"vitamin_b12,omitempty"`
	Folate     *float64 `gorm:"type:decimal(8,2)" json:"folate,omitempty"`

	// Minerals, mg or mcg as appropriate
	Calcium    *float64 `gorm:"type:decimal(8,2)" json:"calcium,omitempty"`
	Iron       *float64 `gorm:"type:decimal(8,2)" json:"iron,omitempty"`
	Magnesium  *float64 `gorm:"type:decimal(8,2)" json:"magnesium,omitempty"`
	Phosphorus *float64 `gorm:"type:decimal(8,2)" json:"phosphorus,omitempty"`
	Potassium  *float64 `gorm:"type:decimal(8,2)" json:"potassium,omitempty"`
	Zinc       *float64 `gorm:"type:decimal(8,2)" json:"zinc,omitempty"`

	// Estimated portion
	EstimatedWeight *float64 `gorm:"type:decimal(8,2)" json:"estimated_weight,omitempty"` // grams
	ServingSize     string   `gorm:"size:100" json:"serving_size,omitempty"`

	// Analysis metadata
	AnalysisModel   string            `gorm:"size:100" json:"analysis_model,omitempty"`
	AnalysisVersion string            `gorm:"size:50" json:"analysis_version,omitempty"`
	ProcessingTime  *float64          `gorm:"type:decimal(8,3)" json:"processing_time,omitempty"` // seconds
	ErrorMessage    string            `gorm:"size:1000" json:"error_message,omitempty"`
	RawResponse     datatypes.JSONMap `json:"raw_response,omitempty"`

	FoodImage *FoodImage          `gorm:"foreignKey:FoodImageID" json:"-"`
	Allergens []*AnalysisAllergen `gorm:"foreignKey:AnalysisID" json:"-"`
	Timestamp
}

func (NutritionalAnalysis) TableName() string {
	return "nutritional_analyses"
}
