package foodimage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nutrivision-backend/domain"
	"nutrivision-backend/entities"
)

type (
	FoodImageRepository interface {
		CreateFoodImage(ctx context.Context, image *entities.FoodImage) error
		GetFoodImageByID(ctx context.Context, id uint) (*entities.FoodImage, error)
		GetFoodImages(ctx context.Context, userID uint, page, limit int) ([]*entities.FoodImage, int64, error)
	}

	foodImageRepository struct {
		db *gorm.DB
	}
)

func NewFoodImageRepository(db *gorm.DB) FoodImageRepository {
	return &foodImageRepository{db: db}
}

func (r *foodImageRepository) CreateFoodImage(ctx context.Context, image *entities.FoodImage) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return &domain.ReferentialError{Entity: "food_images", Field: "user_id"}
		}
		return err
	}
	return nil
}

func (r *foodImageRepository) GetFoodImageByID(ctx context.Context, id uint) (*entities.FoodImage, error) {
	var image entities.FoodImage
	if err := r.db.WithContext(ctx).
		Preload("NutritionalAnalysis").
		Where("id = ?", id).
		First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodImageNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *foodImageRepository) GetFoodImages(ctx context.Context, userID uint, page, limit int) ([]*entities.FoodImage, int64, error) {
	var images []*entities.FoodImage
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.FoodImage{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("NutritionalAnalysis").
		Offset(offset).Limit(limit).
		Order("uploaded_at desc").
		Find(&images).Error; err != nil {
		return nil, 0, err
	}

	return images, count, nil
}
