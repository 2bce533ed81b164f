package contract

import (
	"context"

	"ai-devicechat-be/internal/entity"
	"ai-devicechat-be/internal/repository/specification"
)

// DeviceActivityRepository is the read-only view over the device
// activity source. Implementations must return an empty result (nil, or
// an empty slice) when nothing matches; errors mean the source itself
// is unavailable.
type DeviceActivityRepository interface {
	// FindLatestByDeviceId returns the newest row for an exact device id,
	// or nil when the id is unknown.
	FindLatestByDeviceId(ctx context.Context, deviceId string) (*entity.DeviceActivityLog, error)

	// FindRecentByModel returns up to limit rows whose model contains
	// modelQuery, newest first.
	FindRecentByModel(ctx context.Context, modelQuery string, limit int) ([]*entity.DeviceActivityLog, error)

	// FindAll runs an arbitrary specification-composed read.
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DeviceActivityLog, error)
}
