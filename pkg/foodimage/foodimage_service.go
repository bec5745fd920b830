package foodimage

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"nutrivision-backend/domain"
	"nutrivision-backend/entities"
	"nutrivision-backend/internal/utils"
)

type (
	FoodImageService interface {
		CreateFoodImage(ctx context.Context, req domain.FoodImageUpload, userID uint) (*domain.FoodImageResponse, error)
		GetFoodImage(ctx context.Context, id uint) (*domain.FoodImageResponse, error)
		GetFoodImages(ctx context.Context, userID uint, page, limit int) ([]*domain.FoodImageResponse, int64, error)
	}

	foodImageService struct {
		foodImageRepository FoodImageRepository
		validator           *validator.Validate
		now                 func() time.Time
	}
)

func NewFoodImageService(foodImageRepository FoodImageRepository, validator *validator.Validate) FoodImageService {
	return &foodImageService{
		foodImageRepository: foodImageRepository,
		validator:           validator,
		now:                 time.Now,
	}
}

func (s *foodImageService) CreateFoodImage(ctx context.Context, req domain.FoodImageUpload, userID uint) (*domain.FoodImageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, utils.TranslateValidationError(err)
	}

	image := &entities.FoodImage{
		UserID:           userID,
		Filename:         req.Filename,
		FilePath:         req.FilePath,
		FileSize:         req.FileSize,
		MimeType:         req.MimeType,
		OriginalFilename: req.OriginalFilename,
		Description:      req.Description,
		UploadedAt:       s.now(),
	}

	if err := s.foodImageRepository.CreateFoodImage(ctx, image); err != nil {
		return nil, err
	}

	return ProjectFoodImage(image), nil
}

func (s *foodImageService) GetFoodImage(ctx context.Context, id uint) (*domain.FoodImageResponse, error) {
	image, err := s.foodImageRepository.GetFoodImageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ProjectFoodImage(image), nil
}

func (s *foodImageService) GetFoodImages(ctx context.Context, userID uint, page, limit int) ([]*domain.FoodImageResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	images, count, err := s.foodImageRepository.GetFoodImages(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*domain.FoodImageResponse, 0, len(images))
	for _, image := range images {
		responses = append(responses, ProjectFoodImage(image))
	}
	return responses, count, nil
}

// ProjectFoodImage maps a food image onto its API shape. Storage path and
// MIME type stay internal; the joined analysis contributes its status only.
func ProjectFoodImage(image *entities.FoodImage) *domain.FoodImageResponse {
	res := &domain.FoodImageResponse{
		ID:               image.ID,
		Filename:         image.Filename,
		OriginalFilename: image.OriginalFilename,
		FileSize:         image.FileSize,
		Description:      image.Description,
		UploadedAt:       image.UploadedAt.Format(time.RFC3339),
	}
	if image.NutritionalAnalysis != nil {
		status := image.NutritionalAnalysis.Status
		res.AnalysisStatus = &status
	}
	return res
}
