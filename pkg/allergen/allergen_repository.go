package allergen

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nutrivision-backend/domain"
	"nutrivision-backend/entities"
)

type (
	AllergenRepository interface {
		CreateAllergen(ctx context.Context, allergen *entities.Allergen) error
		GetAllergenByID(ctx context.Context, id uint) (*entities.Allergen, error)
		GetAllergenByName(ctx context.Context, name string) (*entities.Allergen, error)
		GetAllergens(ctx context.Context, onlyCommon bool) ([]*entities.Allergen, error)
		CreateUserAllergen(ctx context.Context, declaration *entities.UserAllergen) error
		GetUserAllergens(ctx context.Context, userID uint) ([]*entities.UserAllergen, error)
	}

	allergenRepository struct {
		db *gorm.DB
	}
)

func NewAllergenRepository(db *gorm.DB) AllergenRepository {
	return &allergenRepository{db: db}
}

func (r *allergenRepository) CreateAllergen(ctx context.Context, allergen *entities.Allergen) error {
	if err := r.db.WithContext(ctx).Create(allergen).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAllergenExists
		}
		return err
	}
	return nil
}

func (r *allergenRepository) GetAllergenByID(ctx context.Context, id uint) (*entities.Allergen, error) {
	var allergen entities.Allergen
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&allergen).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAllergenNotFound
		}
		return nil, err
	}
	return &allergen, nil
}

func (r *allergenRepository) GetAllergenByName(ctx context.Context, name string) (*entities.Allergen, error) {
	var allergen entities.Allergen
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&allergen).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAllergenNotFound
		}
		return nil, err
	}
	return &allergen, nil
}

func (r *allergenRepository) GetAllergens(ctx context.Context, onlyCommon bool) ([]*entities.Allergen, error) {
	var allergens []*entities.Allergen

	query := r.db.WithContext(ctx)
	if onlyCommon {
		query = query.Where("is_common = ?", true)
	}

	if err := query.Order("name asc").Find(&allergens).Error; err != nil {
		return nil, err
	}
	return allergens, nil
}

func (r *allergenRepository) CreateUserAllergen(ctx context.Context, declaration *entities.UserAllergen) error {
	if err := r.db.WithContext(ctx).Create(declaration).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return &domain.ReferentialError{Entity: "user_allergens", Field: "user_id"}
		}
		return err
	}
	return nil
}

func (r *allergenRepository) GetUserAllergens(ctx context.Context, userID uint) ([]*entities.UserAllergen, error) {
	var declarations []*entities.UserAllergen
	if err := r.db.WithContext(ctx).
		Preload("Allergen").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&declarations).Error; err != nil {
		return nil, err
	}
	return declarations, nil
}
