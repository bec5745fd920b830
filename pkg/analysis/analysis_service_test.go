package analysis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	migration "nutrivision-backend/cmd/database/migrate"
	"nutrivision-backend/domain"
	"nutrivision-backend/entities"
	"nutrivision-backend/internal/utils"
)

var testClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	utils.InitValidator()
	m.Run()
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))
	return db
}

func newTestService(t *testing.T) (AnalysisService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAnalysisService(NewAnalysisRepository(db), utils.Validate).(*analysisService)
	svc.now = func() time.Time { return testClock }
	return svc, db
}

func seedFoodImage(t *testing.T, db *gorm.DB) *entities.FoodImage {
	t.Helper()
	user := &entities.User{Username: "alice", Email: "alice@example.com", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	image := &entities.FoodImage{
		UserID:   user.ID,
		Filename: "a1b2c3.jpg",
		FilePath: "/uploads/a1b2c3.jpg",
		FileSize: 204800,
		MimeType: "image/jpeg",
	}
	require.NoError(t, db.Create(image).Error)
	return image
}

func f(v float64) *float64 { return &v }

func TestCreateAnalysis_Defaults(t *testing.T) {
	svc, db := newTestService(t)
	image := seedFoodImage(t, db)

	res, err := svc.CreateAnalysis(context.Background(), domain.NutritionalAnalysisCreate{
		FoodImageID: image.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.AnalysisStatusPending, res.Status)
	assert.Equal(t, image.ID, res.FoodImageID)
	assert.Nil(t, res.ConfidenceScore)
	assert.Nil(t, res.Calories)
	assert.Empty(t, res.Allergens)
	assert.Equal(t, testClock.Format(time.RFC3339), res.CreatedAt)
}

func TestCreateAnalysis_NutrientRoundTrip(t *testing.T) {
	svc, db := newTestService(t)
	image := seedFoodImage(t, db)

	res, err := svc.CreateAnalysis(context.Background(), domain.NutritionalAnalysisCreate{
		FoodImageID:     image.ID,
		FoodName:        "Grilled Salmon",
		FoodCategory:    "Seafood",
		ConfidenceScore: f(0.9275),
		Calories:        f(208.5),
		Protein:         f(20.42),
		TotalFat:        f(13.42),
		VitaminC:        f(3.9),
		Calcium:         f(12),
		Iron:            f(0.34),
		EstimatedWeight: f(180),
		ServingSize:     "1 fillet",
	})
	require.NoError(t, err)

	assert.Equal(t, "Grilled Salmon", res.FoodName)
	assert.Equal(t, "Seafood", res.FoodCategory)
	assert.Equal(t, 0.9275, *res.ConfidenceScore)
	assert.Equal(t, 208.5, *res.Calories)
	assert.Equal(t, 20.42, *res.Protein)
	assert.Equal(t, 13.42, *res.TotalFat)
	assert.Equal(t, 3.9, *res.VitaminC)
	assert.Equal(t, 12.0, *res.Calcium)
	assert.Equal(t, 0.34, *res.Iron)
	assert.Equal(t, 180.0, *res.EstimatedWeight)
	assert.Equal(t, "1 fillet", res.ServingSize)
}

func TestCreateAnalysis_ConfidenceBounds(t *testing.T) {
	svc, db := newTestService(t)
	image := seedFoodImage(t, db)

	res, err := svc.CreateAnalysis(context.Background(), domain.NutritionalAnalysisCreate{
		FoodImageID:     image.ID,
		ConfidenceScore: f(1.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, *res.ConfidenceScore)

	_, err = svc.CreateAnalysis(context.Background(), domain.NutritionalAnalysisCreate{
		FoodImageID:     image.ID,
		ConfidenceScore: f(1.0001),
	})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "confidence_score", ve.Field)
}

func TestCreateAnalysis_NutrientPrecision(t *testing.T) {
	svc, db := newTestService(t)
	image := seedFoodImage(t, db)

	_, err := svc.CreateAnalysis(context.Background(), domain.NutritionalAnalysisCreate{
		FoodImageID: image.ID,
		Calories:    f(208.567),
	})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "calories", ve.Field)
	assert.Equal(t, "decimal2", ve.Constraint)

	_, err = svc.CreateAnalysis(context.Background(), domain.NutritionalAnalysisCreate{
		FoodImageID: image.ID,
		Sodium:      f(-1.0),
	})
	require.Error(t, err)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "sodium", ve.Field)

	// A value wider than decimal(8,2) must be rejected here rather than
	// reaching the database as a raw driver error.
	_, err = svc.CreateAnalysis(context.Background(), domain.NutritionalAnalysisCreate{
		FoodImageID: image.ID,
		Calories:    f(1234567.89),
	})
	require.Error(t, err)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "calories", ve.Field)
	assert.Equal(t, "decimal2", ve.Constraint)
}

func TestCreateAnalysis_OnePerImage(t *testing.T) {
	svc, db := newTestService(t)
	image := seedFoodImage(t, db)

	_, err := svc.CreateAnalysis(context.Background(), domain.NutritionalAnalysisCreate{FoodImageID: image.ID})
	require.NoError(t, err)

	// Field-level validation passes; the unique index rejects the second row.
	_, err = svc.CreateAnalysis(context.Background(), domain.NutritionalAnalysisCreate{FoodImageID: image.ID})
	assert.ErrorIs(t, err, domain.ErrAnalysisExists)
}

func TestCreateAnalysis_UnknownImage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateAnalysis(context.Background(), domain.NutritionalAnalysisCreate{FoodImageID: 9999})
	require.Error(t, err)

	var re *domain.ReferentialError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "food_image_id", re.Field)
}

func TestUpdateAnalysis_EmptyUpdateIsNoOp(t *testing.T) {
	svc, db := newTestService(t)
	image := seedFoodImage(t, db)

	created, err := svc.CreateAnalysis(context.Background(), domain.NutritionalAnalysisCreate{FoodImageID: image.ID})
	require.NoError(t, err)

	var before entities.NutritionalAnalysis
	require.NoError(t, db.First(&before, created.ID).Error)

	svc.(*analysisService).now = func() time.Time { return testClock.Add(time.Hour) }
	_, err = svc.UpdateAnalysis(context.Background(), created.ID, domain.NutritionalAnalysisUpdate{})
	require.NoError(t, err)

	var after entities.NutritionalAnalysis
	require.NoError(t, db.First(&after, created.ID).Error)
	assert.Equal(t, before, after)
}

func TestUpdateAnalysis_WorkerTransition(t *testing.T) {
	svc, db := newTestService(t)
	image := seedFoodImage(t, db)
	ctx := context.Background()

	created, err := svc.CreateAnalysis(ctx, domain.NutritionalAnalysisCreate{FoodImageID: image.ID})
	require.NoError(t, err)

	processing := entities.AnalysisStatusProcessing
	res, err := svc.UpdateAnalysis(ctx, created.ID, domain.NutritionalAnalysisUpdate{Status: &processing})
	require.NoError(t, err)
	assert.Equal(t, entities.AnalysisStatusProcessing, res.Status)

	failed := entities.AnalysisStatusFailed
	reason := "model timeout after 30s"
	res, err = svc.UpdateAnalysis(ctx, created.ID, domain.NutritionalAnalysisUpdate{
		Status:       &failed,
		ErrorMessage: &reason,
		RawResponse:  map[string]interface{}{"provider": "vision-v2", "code": "TIMEOUT"},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.AnalysisStatusFailed, res.Status)

	// error_message and raw_response are stored but never projected.
	var stored entities.NutritionalAnalysis
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, "model timeout after 30s", stored.ErrorMessage)
	assert.Equal(t, "vision-v2", stored.RawResponse["provider"])
}

func TestUpdateAnalysis_UpdatedAtFromClock(t *testing.T) {
	svc, db := newTestService(t)
	image := seedFoodImage(t, db)
	ctx := context.Background()

	created, err := svc.CreateAnalysis(ctx, domain.NutritionalAnalysisCreate{FoodImageID: image.ID})
	require.NoError(t, err)

	later := testClock.Add(time.Hour)
	svc.(*analysisService).now = func() time.Time { return later }

	processing := entities.AnalysisStatusProcessing
	_, err = svc.UpdateAnalysis(ctx, created.ID, domain.NutritionalAnalysisUpdate{Status: &processing})
	require.NoError(t, err)

	var stored entities.NutritionalAnalysis
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.True(t, stored.UpdatedAt.Equal(later), "updated_at must come from the injected clock, not the wall clock")
	assert.True(t, stored.CreatedAt.Equal(testClock), "created_at must not move on update")
}

func TestUpdateAnalysis_InvalidStatus(t *testing.T) {
	svc, db := newTestService(t)
	image := seedFoodImage(t, db)

	created, err := svc.CreateAnalysis(context.Background(), domain.NutritionalAnalysisCreate{FoodImageID: image.ID})
	require.NoError(t, err)

	bogus := entities.AnalysisStatus("done")
	_, err = svc.UpdateAnalysis(context.Background(), created.ID, domain.NutritionalAnalysisUpdate{Status: &bogus})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "status", ve.Field)
}

func TestAddDetectedAllergen_DefaultsAndFlattening(t *testing.T) {
	svc, db := newTestService(t)
	image := seedFoodImage(t, db)
	ctx := context.Background()

	require.NoError(t, migration.SeedCommonAllergens(db))

	var peanuts entities.Allergen
	require.NoError(t, db.Where("name = ?", "Peanuts").First(&peanuts).Error)

	created, err := svc.CreateAnalysis(ctx, domain.NutritionalAnalysisCreate{FoodImageID: image.ID})
	require.NoError(t, err)

	// Severity and confidence omitted on purpose.
	require.NoError(t, svc.AddDetectedAllergen(ctx, domain.AnalysisAllergenCreate{
		AnalysisID: created.ID,
		AllergenID: peanuts.ID,
	}))

	var detection entities.AnalysisAllergen
	require.NoError(t, db.Where("analysis_id = ?", created.ID).First(&detection).Error)
	assert.Equal(t, entities.SeverityLow, detection.Severity)
	assert.Nil(t, detection.Confidence, "omitted confidence must stay absent, not zero")
	assert.True(t, detection.DetectedAt.Equal(testClock))

	res, err := svc.GetAnalysis(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Peanuts"}, res.Allergens)
}

func TestAddDetectedAllergen_UnknownAnalysis(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.AddDetectedAllergen(context.Background(), domain.AnalysisAllergenCreate{
		AnalysisID: 9999,
		AllergenID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrAnalysisNotFound)
}

func TestGetAnalysisForImage(t *testing.T) {
	svc, db := newTestService(t)
	image := seedFoodImage(t, db)

	created, err := svc.CreateAnalysis(context.Background(), domain.NutritionalAnalysisCreate{FoodImageID: image.ID})
	require.NoError(t, err)

	res, err := svc.GetAnalysisForImage(context.Background(), image.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, res.ID)

	_, err = svc.GetAnalysisForImage(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrAnalysisNotFound)
}
