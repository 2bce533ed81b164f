package implementation

import (
	"context"
	"errors"

	"ai-devicechat-be/internal/entity"
	"ai-devicechat-be/internal/repository/contract"
	"ai-devicechat-be/internal/repository/specification"

	"gorm.io/gorm"
)

type deviceActivityRepository struct {
	db *gorm.DB
}

func NewDeviceActivityRepository(db *gorm.DB) contract.DeviceActivityRepository {
	return &deviceActivityRepository{db: db}
}

func (r *deviceActivityRepository) FindLatestByDeviceId(ctx context.Context, deviceId string) (*entity.DeviceActivityLog, error) {
	var row entity.DeviceActivityLog

	db := r.db.WithContext(ctx)
	for _, spec := range []specification.Specification{
		specification.ColumnEquals{Column: "device_id", Value: deviceId},
		specification.OrderBy{Field: "timestamp", Desc: true},
	} {
		db = spec.Apply(db)
	}

	err := db.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *deviceActivityRepository) FindRecentByModel(ctx context.Context, modelQuery string, limit int) ([]*entity.DeviceActivityLog, error) {
	return r.FindAll(ctx,
		specification.ColumnContains{Column: "device_model", Value: modelQuery},
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Limit{Count: limit},
	)
}

func (r *deviceActivityRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DeviceActivityLog, error) {
	var rows []*entity.DeviceActivityLog

	db := r.db.WithContext(ctx)
	for _, spec := range specs {
		db = spec.Apply(db)
	}

	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
