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
)

// sosRepository implements the repository.SOSRepository interface.
// Newest-first ordering comes from the serial seq column.
type sosRepository struct {
	db *gorm.DB
}

// NewSOSRepository is the constructor for sosRepository.
func NewSOSRepository(db *gorm.DB) repository.SOSRepository {
	return &sosRepository{
		db: db,
	}
}

// Prepend stores the event as the newest entry.
func (repo *sosRepository) Prepend(ctx context.Context, event *entity.SOSEvent) error {
	return repo.PrependBatch(ctx, []*entity.SOSEvent{event})
}

// PrependBatch inserts events given newest-first. Rows are written oldest
// first so the serial seq grows towards the head of the list.
func (repo *sosRepository) PrependBatch(ctx context.Context, events []*entity.SOSEvent) error {
	if len(events) == 0 {
		return nil
	}

	sosModels := make([]*model.SOSEventModel, len(events))
	for i, e := range events {
		sosModels[len(events)-1-i] = fromSOSDomain(e)
	}

	if err := repo.db.WithContext(ctx).Create(&sosModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("duplicate sos event id")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to store sos events")
	}

	for i, e := range events {
		e.Seq = sosModels[len(events)-1-i].Seq
	}

	return nil
}

// FindAll returns every live event, newest first.
func (repo *sosRepository) FindAll(ctx context.Context) ([]*entity.SOSEvent, error) {
	var sosModels []*model.SOSEventModel

	if err := repo.db.WithContext(ctx).
		Order("seq DESC").
		Find(&sosModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sos events")
	}

	events := make([]*entity.SOSEvent, 0, len(sosModels))
	for _, sosM := range sosModels {
		events = append(events, toSOSDomain(sosM))
	}

	return events, nil
}

// FindByID retrieves an event by its unique ID.
func (repo *sosRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SOSEvent, error) {
	var sosM model.SOSEventModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sosM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSOSNotFound
		}

		return nil, errors.Wrap(err, "failed to find sos event by ID")
	}

	return toSOSDomain(&sosM), nil
}

// --- Mapper Functions ---

func toSOSDomain(data *model.SOSEventModel) *entity.SOSEvent {
	if data == nil {
		return nil
	}

	return &entity.SOSEvent{
		ID:     data.ID,
		BoatID: data.BoatID,
		Time:   data.Time,
		Lat:    data.Lat,
		Lng:    data.Lng,
		Seq:    data.Seq,
	}
}

func fromSOSDomain(data *entity.SOSEvent) *model.SOSEventModel {
	if data == nil {
		return nil
	}

	return &model.SOSEventModel{
		ID:     data.ID,
		BoatID: data.BoatID,
		Time:   data.Time,
		Lat:    data.Lat,
		Lng:    data.Lng,
	}
}
