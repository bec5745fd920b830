package analysis

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nutrivision-backend/domain"
	"nutrivision-backend/entities"
)

type (
	AnalysisRepository interface {
		CreateAnalysis(ctx context.Context, analysis *entities.NutritionalAnalysis) error
		GetAnalysisByID(ctx context.Context, id uint) (*entities.NutritionalAnalysis, error)
		GetAnalysisByFoodImageID(ctx context.Context, foodImageID uint) (*entities.NutritionalAnalysis, error)
		UpdateAnalysis(ctx context.Context, analysis *entities.NutritionalAnalysis) error
		CreateAnalysisAllergen(ctx context.Context, detection *entities.AnalysisAllergen) error
	}

	analysisRepository struct {
		db *gorm.DB
	}
)

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) CreateAnalysis(ctx context.Context, analysis *entities.NutritionalAnalysis) error {
	if err := r.db.WithContext(ctx).Create(analysis).Error; err != nil {
		// The unique index on food_image_id is what enforces the
		// one-to-one between image and analysis.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAnalysisExists
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return &domain.ReferentialError{Entity: "nutritional_analyses", Field: "food_image_id"}
		}
		return err
	}
	return nil
}

func (r *analysisRepository) GetAnalysisByID(ctx context.Context, id uint) (*entities.NutritionalAnalysis, error) {
	var analysis entities.NutritionalAnalysis
	if err := r.db.WithContext(ctx).
		Preload("Allergens.Allergen").
		Where("id = ?", id).
		First(&analysis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnalysisNotFound
		}
		return nil, err
	}
	return &analysis, nil
}

func (r *analysisRepository) GetAnalysisByFoodImageID(ctx context.Context, foodImageID uint) (*entities.NutritionalAnalysis, error) {
	var analysis entities.NutritionalAnalysis
	if err := r.db.WithContext(ctx).
		Preload("Allergens.Allergen").
		Where("food_image_id = ?", foodImageID).
		First(&analysis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnalysisNotFound
		}
		return nil, err
	}
	return &analysis, nil
}

func (r *analysisRepository) UpdateAnalysis(ctx context.Context, analysis *entities.NutritionalAnalysis) error {
	return r.db.WithContext(ctx).Save(analysis).Error
}

func (r *analysisRepository) CreateAnalysisAllergen(ctx context.Context, detection *entities.AnalysisAllergen) error {
	if err := r.db.WithContext(ctx).Create(detection).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return &domain.ReferentialError{Entity: "analysis_allergens", Field: "allergen_id"}
		}
		return err
	}
	return nil
}
