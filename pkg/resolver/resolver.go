package resolver

import (
	"context"
	"fmt"
	"strings"

	"ai-devicechat-be/internal/entity"
	"ai-devicechat-be/internal/pkg/logger"
	"ai-devicechat-be/internal/repository/contract"
	"ai-devicechat-be/pkg/extractor"
)

const modelLookupLimit = 5

// Resolver turns an intent plus extracted entities into the context
// block injected into the prompt. Store failures never escape this
// layer: they are logged and degrade to the corresponding "no data"
// message, so the user only ever sees natural language.
type Resolver struct {
	devices contract.DeviceActivityRepository
	log     logger.ILogger
}

func NewResolver(devices contract.DeviceActivityRepository, log logger.ILogger) *Resolver {
	return &Resolver{
		devices: devices,
		log:     log,
	}
}

// Resolve evaluates the four context cases in precedence order:
// unsupported intent, exact device id, model-only search, no entities.
func (r *Resolver) Resolve(ctx context.Context, intent extractor.Intent, entities extractor.EntitySet) string {
	if intent != extractor.IntentDeviceStatusCheck {
		return "Context: This question is not related to the device data I have. I can only provide information about device status."
	}

	switch {
	case entities.DeviceId != "":
		return r.resolveByDeviceId(ctx, entities.DeviceId, entities.DeviceModelQuery)
	case entities.DeviceModelQuery != "":
		return r.resolveByModel(ctx, entities.DeviceModelQuery)
	default:
		return "Context: The user wants to know device status in general. Explain that you need a specific device id or a device model (for example, OLT Huawei, Cisco router) for more detail, or ask which device id they want checked."
	}
}

func (r *Resolver) resolveByDeviceId(ctx context.Context, deviceId, modelQuery string) string {
	row, err := r.devices.FindLatestByDeviceId(ctx, deviceId)
	if err != nil {
		r.log.Warn("ContextResolver", "Device id lookup failed, degrading to miss", map[string]interface{}{
			"device_id": deviceId,
			"error":     err.Error(),
		})
		row = nil
	}

	if row != nil {
		return fmt.Sprintf("Context: Status of device %s (%s): currently %s at %s. Last recorded at %s.",
			row.DeviceId, modelOrUnknown(row), row.Status, locationOrUnknown(row), timestampOrUnknown(row))
	}

	if modelQuery == "" {
		return fmt.Sprintf("Context: Sorry, no status data for device '%s' was found in the activity logs.", deviceId)
	}

	// Exact id unknown; fall back to devices of a similar model.
	rows := r.findByModel(ctx, modelQuery)
	if len(rows) == 0 {
		return fmt.Sprintf("Context: Sorry, no status data for device '%s' or model '%s' was found in the activity logs.", deviceId, modelQuery)
	}

	header := fmt.Sprintf("Context: Device with id '%s' was not found exactly, but here are some devices with a similar model (%s) or related ones:", deviceId, modelQuery)
	return renderList(header, rows)
}

func (r *Resolver) resolveByModel(ctx context.Context, modelQuery string) string {
	rows := r.findByModel(ctx, modelQuery)
	if len(rows) == 0 {
		return fmt.Sprintf("Context: No activity log information was found for devices with model '%s'.", modelQuery)
	}

	header := fmt.Sprintf("Context: Here are some recent statuses for devices with model '%s':", modelQuery)
	return renderList(header, rows)
}

func (r *Resolver) findByModel(ctx context.Context, modelQuery string) []*entity.DeviceActivityLog {
	rows, err := r.devices.FindRecentByModel(ctx, modelQuery, modelLookupLimit)
	if err != nil {
		r.log.Warn("ContextResolver", "Model lookup failed, degrading to miss", map[string]interface{}{
			"model_query": modelQuery,
			"error":       err.Error(),
		})
		return nil
	}
	return rows
}

// renderList renders rows as a bulleted list, keeping only the first
// occurrence per device id. Rows arrive newest first, so the kept row
// is always the most recent one for that device.
func renderList(header string, rows []*entity.DeviceActivityLog) string {
	parts := []string{header}
	seen := make(map[string]bool)

	for _, row := range rows {
		if seen[row.DeviceId] {
			continue
		}
		seen[row.DeviceId] = true
		parts = append(parts, fmt.Sprintf("- %s (%s): %s at %s. Last recorded at %s.",
			row.DeviceId, modelOrUnknown(row), row.Status, locationOrUnknown(row), timestampOrUnknown(row)))
	}

	return strings.Join(parts, "\n")
}

func modelOrUnknown(row *entity.DeviceActivityLog) string {
	if row.DeviceModel == nil || *row.DeviceModel == "" {
		return "Unknown Model"
	}
	return *row.DeviceModel
}

func locationOrUnknown(row *entity.DeviceActivityLog) string {
	if row.Location == nil || *row.Location == "" {
		return "Unknown Location"
	}
	return *row.Location
}

func timestampOrUnknown(row *entity.DeviceActivityLog) string {
	if row.Timestamp == nil {
		return "Unknown Time"
	}
	return row.Timestamp.Format("2006-01-02 15:04:05")
}
