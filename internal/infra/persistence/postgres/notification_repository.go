package postgres

import (
	"context"

	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	"tidewise/internal/domain/repository"
	"tidewise/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// PrependBatch inserts notifications in creation order; the serial seq
// makes each one newer than the previous.
func (repo *notificationRepository) PrependBatch(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		notificationModels = append(notificationModels, fromNotificationDomain(n))
	}

	if err := repo.db.WithContext(ctx).Create(&notificationModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store notifications")
	}

	for i, n := range notifications {
		n.Seq = notificationModels[i].Seq
	}

	return nil
}

// FindAll returns pending notifications newest first.
func (repo *notificationRepository) FindAll(ctx context.Context) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Order("seq DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// Clear removes every pending notification.
func (repo *notificationRepository) Clear(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.NotificationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear notifications")
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:      data.ID,
		Type:    entity.NotificationType(data.Type),
		BoatID:  data.BoatID,
		Lat:     data.Lat,
		Lng:     data.Lng,
		Time:    data.Time,
		Message: data.Message,
		Seq:     data.Seq,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:      data.ID,
		Type:    string(data.Type),
		BoatID:  data.BoatID,
		Lat:     data.Lat,
		Lng:     data.Lng,
		Time:    data.Time,
		Message: data.Message,
	}
}
