// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	"tidewise/internal/domain/repository"
	"tidewise/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// boatRepository implements the repository.BoatRepository interface.
type boatRepository struct {
	db *gorm.DB
}

// NewBoatRepository is the constructor for boatRepository.
func NewBoatRepository(db *gorm.DB) repository.BoatRepository {
	return &boatRepository{
		db: db,
	}
}

// boatUpsertColumns are overwritten on conflict; ordinal keeps the first registration.
var boatUpsertColumns = []string{"lat", "lng", "status", "zone", "updated_at"}

// FindAll returns every boat in registration order.
func (repo *boatRepository) FindAll(ctx context.Context) ([]*entity.Boat, error) {
	var boatModels []*model.BoatModel

	if err := repo.db.WithContext(ctx).
		Order("ordinal ASC").
		Find(&boatModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find boats")
	}

	boats := make([]*entity.Boat, 0, len(boatModels))
	for _, boatM := range boatModels {
		boats = append(boats, toBoatDomain(boatM))
	}

	return boats, nil
}

// FindByID retrieves a boat by its identifier.
func (repo *boatRepository) FindByID(ctx context.Context, id string) (*entity.Boat, error) {
	var boatM model.BoatModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&boatM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBoatNotFound
		}

		return nil, errors.Wrap(err, "failed to find boat by ID")
	}

	return toBoatDomain(&boatM), nil
}

// Upsert inserts the boat or overwrites its state. created is derived from
// whether the row existed before the statement ran.
func (repo *boatRepository) Upsert(ctx context.Context, boat *entity.Boat) (bool, error) {
	var existing int64
	if err := repo.db.WithContext(ctx).
		Model(&model.BoatModel{}).
		Where("id = ?", boat.ID).
		Count(&existing).Error; err != nil {
		return false, errors.Wrap(err, "failed to check boat")
	}

	if err := repo.SaveAll(ctx, []*entity.Boat{boat}); err != nil {
		return false, err
	}

	return existing == 0, nil
}

// SaveAll upserts every listed boat in one statement.
func (repo *boatRepository) SaveAll(ctx context.Context, boats []*entity.Boat) error {
	if len(boats) == 0 {
		return nil
	}

	boatModels := make([]*model.BoatModel, 0, len(boats))
	for _, b := range boats {
		boatModels = append(boatModels, fromBoatDomain(b))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(boatUpsertColumns),
		}).
		Omit("ordinal").
		Create(&boatModels).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid boat state")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save boats")
	}

	return nil
}

// Count returns the number of registered boats.
func (repo *boatRepository) Count(ctx context.Context) (int, error) {
	var n int64
	if err := repo.db.WithContext(ctx).Model(&model.BoatModel{}).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count boats")
	}

	return int(n), nil
}

// --- Mapper Functions ---

func toBoatDomain(data *model.BoatModel) *entity.Boat {
	if data == nil {
		return nil
	}

	return &entity.Boat{
		ID:        data.ID,
		Lat:       data.Lat,
		Lng:       data.Lng,
		Status:    entity.BoatStatus(data.Status),
		Zone:      data.Zone,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromBoatDomain(data *entity.Boat) *model.BoatModel {
	if data == nil {
		return nil
	}

	return &model.BoatModel{
		ID:        data.ID,
		Lat:       data.Lat,
		Lng:       data.Lng,
		Status:    string(data.Status),
		Zone:      data.Zone,
		UpdatedAt: data.UpdatedAt,
	}
}
