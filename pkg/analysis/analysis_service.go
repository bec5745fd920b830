package analysis

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"nutrivision-backend/domain"
	"nutrivision-backend/entities"
	"nutrivision-backend/internal/utils"
)

type (
	AnalysisService interface {
		CreateAnalysis(ctx context.Context, req domain.NutritionalAnalysisCreate) (*domain.NutritionalAnalysisResponse, error)
		UpdateAnalysis(ctx context.Context, id uint, req domain.NutritionalAnalysisUpdate) (*domain.NutritionalAnalysisResponse, error)
		GetAnalysis(ctx context.Context, id uint) (*domain.NutritionalAnalysisResponse, error)
		GetAnalysisForImage(ctx context.Context, foodImageID uint) (*domain.NutritionalAnalysisResponse, error)
		AddDetectedAllergen(ctx context.Context, req domain.AnalysisAllergenCreate) error
	}

	analysisService struct {
		analysisRepository AnalysisRepository
		validator          *validator.Validate
		now                func() time.Time
	}
)

func NewAnalysisService(analysisRepository AnalysisRepository, validator *validator.Validate) AnalysisService {
	return &analysisService{
		analysisRepository: analysisRepository,
		validator:          validator,
		now:                time.Now,
	}
}

func (s *analysisService) CreateAnalysis(ctx context.Context, req domain.NutritionalAnalysisCreate) (*domain.NutritionalAnalysisResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, utils.TranslateValidationError(err)
	}

	now := s.now()
	analysis := buildAnalysis(req)
	analysis.Status = entities.AnalysisStatusPending
	analysis.CreatedAt = now
	analysis.UpdatedAt = now

	if err := s.analysisRepository.CreateAnalysis(ctx, analysis); err != nil {
		return nil, err
	}

	return ProjectAnalysis(analysis), nil
}

func (s *analysisService) UpdateAnalysis(ctx context.Context, id uint, req domain.NutritionalAnalysisUpdate) (*domain.NutritionalAnalysisResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, utils.TranslateValidationError(err)
	}

	analysis, err := s.analysisRepository.GetAnalysisByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// An update with every field absent leaves the record untouched,
	// timestamps included.
	if applyAnalysisUpdate(analysis, req) {
		analysis.UpdatedAt = s.now()
		if err := s.analysisRepository.UpdateAnalysis(ctx, analysis); err != nil {
			return nil, err
		}
	}

	return ProjectAnalysis(analysis), nil
}

func (s *analysisService) GetAnalysis(ctx context.Context, id uint) (*domain.NutritionalAnalysisResponse, error) {
	analysis, err := s.analysisRepository.GetAnalysisByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ProjectAnalysis(analysis), nil
}

func (s *analysisService) GetAnalysisForImage(ctx context.Context, foodImageID uint) (*domain.NutritionalAnalysisResponse, error) {
	analysis, err := s.analysisRepository.GetAnalysisByFoodImageID(ctx, foodImageID)
	if err != nil {
		return nil, err
	}
	return ProjectAnalysis(analysis), nil
}

func (s *analysisService) AddDetectedAllergen(ctx context.Context, req domain.AnalysisAllergenCreate) error {
	if err := s.validator.Struct(req); err != nil {
		return utils.TranslateValidationError(err)
	}

	if _, err := s.analysisRepository.GetAnalysisByID(ctx, req.AnalysisID); err != nil {
		return err
	}

	severity := req.Severity
	if severity == "" {
		severity = entities.SeverityLow
	}

	detection := &entities.AnalysisAllergen{
		AnalysisID: req.AnalysisID,
		AllergenID: req.AllergenID,
		Severity:   severity,
		Confidence: req.Confidence,
		Notes:      req.Notes,
		DetectedAt: s.now(),
	}

	return s.analysisRepository.CreateAnalysisAllergen(ctx, detection)
}

func buildAnalysis(req domain.NutritionalAnalysisCreate) *entities.NutritionalAnalysis {
	return &entities.NutritionalAnalysis{
		FoodImageID: req.FoodImageID,

		FoodName:        req.FoodName,
		FoodCategory:    req.FoodCategory,
		ConfidenceScore: req.ConfidenceScore,

		Calories:      req.Calories,
		Protein:       req.Protein,
		Carbohydrates: req.Carbohydrates,
		TotalFat:      req.TotalFat,
		SaturatedFat:  req.SaturatedFat,
		Fiber:         req.Fiber,
		Sugar:         req.Sugar,
		Sodium:        req.Sodium,

		VitaminA:   req.VitaminA,
		VitaminC:   req.VitaminC,
		VitaminD:   req.VitaminD,
		VitaminE:   req.VitaminE,
		VitaminK:   req.VitaminK,
		VitaminB1:  req.VitaminB1,
		VitaminB2:  req.VitaminB2,
		VitaminB3:  req.VitaminB3,
		VitaminB6:  req.VitaminB6,
		VitaminB12: req.VitaminB12,
		Folate:     req.Folate,

		Calcium:    req.Calcium,
		Iron:       req.Iron,
		Magnesium:  req.Magnesium,
		Phosphorus: req.Phosphorus,
		Potassium:  req.Potassium,
		Zinc:       req.Zinc,

		EstimatedWeight: req.EstimatedWeight,
		ServingSize:     req.ServingSize,

		AnalysisModel:   req.AnalysisModel,
		AnalysisVersion: req.AnalysisVersion,
		ProcessingTime:  req.ProcessingTime,
	}
}

func applyAnalysisUpdate(analysis *entities.NutritionalAnalysis, req domain.NutritionalAnalysisUpdate) bool {
	changed := false
	if req.Status != nil {
		analysis.Status = *req.Status
		changed = true
	}
	if req.ErrorMessage != nil {
		analysis.ErrorMessage = *req.ErrorMessage
		changed = true
	}
	if req.RawResponse != nil {
		analysis.RawResponse = datatypes.JSONMap(req.RawResponse)
		changed = true
	}
	return changed
}

// ProjectAnalysis maps an analysis onto its API shape. Allergen rows are
// flattened to catalog names; raw_response, error_message and the model
// metadata are deliberately not surfaced.
func ProjectAnalysis(analysis *entities.NutritionalAnalysis) *domain.NutritionalAnalysisResponse {
	names := make([]string, 0, len(analysis.Allergens))
	for _, detection := range analysis.Allergens {
		if detection.Allergen != nil {
			names = append(names, detection.Allergen.Name)
		}
	}

	return &domain.NutritionalAnalysisResponse{
		ID:          analysis.ID,
		FoodImageID: analysis.FoodImageID,
		Status:      analysis.Status,

		FoodName:        analysis.FoodName,
		FoodCategory:    analysis.FoodCategory,
		ConfidenceScore: analysis.ConfidenceScore,

		Calories:      analysis.Calories,
		Protein:       analysis.Protein,
		Carbohydrates: analysis.Carbohydrates,
		TotalFat:      analysis.TotalFat,
		Fiber:         analysis.Fiber,
		Sugar:         analysis.Sugar,
		Sodium:        analysis.Sodium,

		VitaminC: analysis.VitaminC,
		Calcium:  analysis.Calcium,
		Iron:     analysis.Iron,

		EstimatedWeight: analysis.EstimatedWeight,
		ServingSize:     analysis.ServingSize,

		CreatedAt: analysis.CreatedAt.Format(time.RFC3339),
		Allergens: names,
	}
}
