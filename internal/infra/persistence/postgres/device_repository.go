package postgres

import (
	"context"

	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	"tidewise/internal/domain/repository"
	"tidewise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Register persists the device, moving an existing device_id onto the new boat and token.
func (repo *deviceRepository) Register(ctx context.Context, device *entity.BoatDevice) error {
	if device.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate device ID")
		}
		device.ID = id
	}
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"boat_id", "fcm_token", "platform", "updated_at"}),
		}).
		Create(deviceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to register device")
	}

	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindByBoatIDs retrieves the devices aboard any of the given boats.
func (repo *deviceRepository) FindByBoatIDs(ctx context.Context, boatIDs []string) ([]*entity.BoatDevice, error) {
	if len(boatIDs) == 0 {
		return nil, nil
	}

	var deviceModels []*model.BoatDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("boat_id IN ?", boatIDs).
		Order("created_at ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by boat")
	}

	devices := make([]*entity.BoatDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// DeleteByTokens removes devices whose FCM tokens were rejected.
func (repo *deviceRepository) DeleteByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("fcm_token IN ?", tokens).
		Delete(&model.BoatDeviceModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete devices")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM BoatDeviceModel to a domain BoatDevice entity.
func toDeviceDomain(data *model.BoatDeviceModel) *entity.BoatDevice {
	if data == nil {
		return nil
	}

	return &entity.BoatDevice{
		ID:        data.ID,
		BoatID:    data.BoatID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain BoatDevice entity to a GORM BoatDeviceModel.
func fromDeviceDomain(data *entity.BoatDevice) *model.BoatDeviceModel {
	if data == nil {
		return nil
	}

	return &model.BoatDeviceModel{
		ID:        data.ID,
		BoatID:    data.BoatID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
