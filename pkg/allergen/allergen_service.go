package allergen

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"nutrivision-backend/domain"
	"nutrivision-backend/entities"
	"nutrivision-backend/internal/utils"
)

type (
	AllergenService interface {
		CreateAllergen(ctx context.Context, req domain.AllergenCreate) (*domain.AllergenResponse, error)
		GetAllergens(ctx context.Context, onlyCommon bool) ([]*domain.AllergenResponse, error)
		DeclareUserAllergen(ctx context.Context, req domain.UserAllergenCreate) (*domain.UserAllergenResponse, error)
		GetUserAllergens(ctx context.Context, userID uint) ([]*domain.UserAllergenResponse, error)
	}

	allergenService struct {
		allergenRepository AllergenRepository
		validator          *validator.Validate
		now                func() time.Time
	}
)

func NewAllergenService(allergenRepository AllergenRepository, validator *validator.Validate) AllergenService {
	return &allergenService{
		allergenRepository: allergenRepository,
		validator:          validator,
		now:                time.Now,
	}
}

func (s *allergenService) CreateAllergen(ctx context.Context, req domain.AllergenCreate) (*domain.AllergenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, utils.TranslateValidationError(err)
	}

	if _, err := s.allergenRepository.GetAllergenByName(ctx, req.Name); err == nil {
		return nil, domain.ErrAllergenExists
	} else if !errors.Is(err, domain.ErrAllergenNotFound) {
		return nil, err
	}

	allergen := &entities.Allergen{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		IsCommon:    req.IsCommon,
		CreatedAt:   s.now(),
	}

	if err := s.allergenRepository.CreateAllergen(ctx, allergen); err != nil {
		return nil, err
	}

	return ProjectAllergen(allergen), nil
}

func (s *allergenService) GetAllergens(ctx context.Context, onlyCommon bool) ([]*domain.AllergenResponse, error) {
	allergens, err := s.allergenRepository.GetAllergens(ctx, onlyCommon)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.AllergenResponse, 0, len(allergens))
	for _, allergen := range allergens {
		responses = append(responses, ProjectAllergen(allergen))
	}
	return responses, nil
}

func (s *allergenService) DeclareUserAllergen(ctx context.Context, req domain.UserAllergenCreate) (*domain.UserAllergenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, utils.TranslateValidationError(err)
	}

	allergen, err := s.allergenRepository.GetAllergenByID(ctx, req.AllergenID)
	if err != nil {
		return nil, err
	}

	severity := req.Severity
	if severity == "" {
		severity = entities.SeverityMedium
	}

	declaration := &entities.UserAllergen{
		UserID:     req.UserID,
		AllergenID: req.AllergenID,
		Severity:   severity,
		Notes:      req.Notes,
		CreatedAt:  s.now(),
	}

	if err := s.allergenRepository.CreateUserAllergen(ctx, declaration); err != nil {
		return nil, err
	}

	declaration.Allergen = allergen
	return ProjectUserAllergen(declaration), nil
}

func (s *allergenService) GetUserAllergens(ctx context.Context, userID uint) ([]*domain.UserAllergenResponse, error) {
	declarations, err := s.allergenRepository.GetUserAllergens(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.UserAllergenResponse, 0, len(declarations))
	for _, declaration := range declarations {
		responses = append(responses, ProjectUserAllergen(declaration))
	}
	return responses, nil
}

func ProjectAllergen(allergen *entities.Allergen) *domain.AllergenResponse {
	return &domain.AllergenResponse{
		ID:          allergen.ID,
		Name:        allergen.Name,
		Category:    allergen.Category,
		Description: allergen.Description,
		IsCommon:    allergen.IsCommon,
	}
}

func ProjectUserAllergen(declaration *entities.UserAllergen) *domain.UserAllergenResponse {
	res := &domain.UserAllergenResponse{
		ID:         declaration.ID,
		AllergenID: declaration.AllergenID,
		Severity:   declaration.Severity,
		Notes:      declaration.Notes,
		CreatedAt:  declaration.CreatedAt.Format(time.RFC3339),
	}
	if declaration.Allergen != nil {
		res.Allergen = declaration.Allergen.Name
	}
	return res
}
