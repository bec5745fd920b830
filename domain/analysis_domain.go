package domain

import (
	"errors"

	"nutrivision-backend/entities"
)

var (
	ErrAnalysisNotFound = errors.New("nutritional analysis not found")
	ErrAnalysisExists   = errors.New("food image already has an analysis")
)

type (
	// NutritionalAnalysisCreate is what the analysis worker submits once the
	// model has produced a result. Everything except the owning image is
	// optional; nutrient amounts are per 100g.
	NutritionalAnalysisCreate struct {
		FoodImageID uint `json:"food_image_id" validate:"required"`

		FoodName        string   `json:"food_name" validate:"omitempty,max=200"`
		FoodCategory    string   `json:"food_category" validate:"omitempty,max=100"`
		ConfidenceScore *float64 `json:"confidence_score" validate:"omitempty,gte=0,lte=1,decimal4"`

		Calories      *float64 `json:"calories" validate:"omitempty,gte=0,decimal2"`
		Protein       *float64 `json:"protein" validate:"omitempty,gte=0,decimal2"`
		Carbohydrates *float64 `json:"carbohydrates" validate:"omitempty,gte=0,decimal2"`
		TotalFat      *float64 `json:"total_fat" validate:"omitempty,gte=0,decimal2"`
		SaturatedFat  *float64 `json:"saturated_fat" validate:"omitempty,gte=0,decimal2"`
		Fiber         *float64 `json:"fiber" validate:"omitempty,gte=0,decimal2"`
		Sugar         *float64 `json:"sugar" validate:"omitempty,gte=0,decimal2"`
		Sodium        *float64 `json:"sodium" validate:"omitempty,gte=0,decimal2"`

		VitaminA   *float64 `json:"vitamin_a" validate:"omitempty,gte=0,decimal2"`
		VitaminC   *float64 `json:"vitamin_c" validate:"omitempty,gte=0,decimal2"`
		VitaminD   *float64 `json:"vitamin_d" validate:"omitempty,gte=0,decimal2"`
		VitaminE   *float64 `json:"vitamin_e" validate:"omitempty,gte=0,decimal2"`
		VitaminK   *float64 `json:"vitamin_k" validate:"omitempty,gte=0,decimal2"`
		VitaminB1  *float64 `json:"vitamin_b1" validate:"omitempty,gte=0,decimal2"`
		VitaminB2  *float64 `json:"vitamin_b2" validate:"omitempty,gte=0,decimal2"`
		VitaminB3  *float64 `json:"vitamin_b3" validate:"omitempty,gte=0,decimal2"`
		VitaminB6  *float64 `json:"vitamin_b6" validate:"omitempty,gte=0,decimal2"`
		VitaminB12 *float64 `json:"vitamin_b12" validate:"omitempty,gte=0,decimal2"`
		Folate     *float64 `json:"folate" validate:"omitempty,gte=0,decimal2"`

		Calcium    *float64 `json:"calcium" validate:"omitempty,gte=0,decimal2"`
		Iron       *float64 `json:"iron" validate:"omitempty,gte=0,decimal2"`
		Magnesium  *float64 `json:"magnesium" validate:"omitempty,gte=0,decimal2"`
		Phosphorus *float64 `json:"phosphorus" validate:"omitempty,gte=0,decimal2"`
		Potassium  *float64 `json:"potassium" validate:"omitempty,gte=0,decimal2"`
		Zinc       *float64 `json:"zinc" validate:"omitempty,gte=0,decimal2"`

		EstimatedWeight *float64 `json:"estimated_weight" validate:"omitempty,gte=0,decimal2"`
		ServingSize     string   `json:"serving_size" validate:"omitempty,max=100"`

		AnalysisModel   string   `json:"analysis_model" validate:"omitempty,max=100"`
		AnalysisVersion string   `json:"analysis_version" validate:"omitempty,max=50"`
		ProcessingTime  *float64 `json:"processing_time" validate:"omitempty,gte=0,decimal3"`
	}

	// NutritionalAnalysisUpdate transitions an analysis between lifecycle
	// states. Absent fields leave the record untouched.
	NutritionalAnalysisUpdate struct {
		Status       *entities.AnalysisStatus `json:"status" validate:"omitempty,oneof=pending processing completed failed"`
		ErrorMessage *string                  `json:"error_message" validate:"omitempty,max=1000"`
		RawResponse  map[string]interface{}   `json:"raw_response"`
	}

	// NutritionalAnalysisResponse is the curated API projection. Raw provider
	// payloads, error internals and model metadata never leave the backend.
	NutritionalAnalysisResponse struct {
		ID          uint                    `json:"id"`
		FoodImageID uint                    `json:"food_image_id"`
		Status      entities.AnalysisStatus `json:"status"`

		FoodName        string   `json:"food_name,omitempty"`
		FoodCategory    string   `json:"food_category,omitempty"`
		ConfidenceScore *float64 `json:"confidence_score,omitempty"`

		Calories      *float64 `json:"calories,omitempty"`
		Protein       *float64 `json:"protein,omitempty"`
		Carbohydrates *float64 `json:"carbohydrates,omitempty"`
		TotalFat      *float64 `json:"total_fat,omitempty"`
		Fiber         *float64 `json:"fiber,omitempty"`
		Sugar         *float64 `json:"sugar,omitempty"`
		Sodium        *float64 `json:"sodium,omitempty"`

		VitaminC *float64 `json:"vitamin_c,omitempty"`
		Calcium  *float64 `json:"calcium,omitempty"`
		Iron     *float64 `json:"iron,omitempty"`

		EstimatedWeight *float64 `json:"estimated_weight,omitempty"`
		ServingSize     string   `json:"serving_size,omitempty"`

		CreatedAt string   `json:"created_at"`
		Allergens []string `json:"allergens"`
	}
)
