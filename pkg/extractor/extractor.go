package extractor

import (
	"regexp"
	"strings"
)

// Intent classifies what the user is asking for.
type Intent string

const (
	IntentDeviceStatusCheck Intent = "check_device_status"
	IntentUnknown           Intent = "unknown"
)

// EntitySet holds the entities found in a query. Empty string means the
// entity was not present.
type EntitySet struct {
	// DeviceId is upper-cased to match the canonical storage key.
	DeviceId string
	// DeviceModelQuery is free text, lowercase since matching runs on
	// the lowercased query.
	DeviceModelQuery string
}

var (
	// Trigger words that mark a device status question. "cek" and
	// "perangkat" are the Indonesian domain terms the service grew up with.
	triggerWords = []string{"status", "cek", "perangkat", "device"}

	// Device ids look like RTR01 / OLT-JKT-001.
	deviceIdPattern = regexp.MustCompile(`[a-z]{2,5}\d{2,5}|[a-z]{3,5}-\w{3}-\d{3}`)

	// Known device categories and vendors, plus the generic
	// "model <token>" / "dev <number>" forms.
	deviceModelPattern = regexp.MustCompile(`olt|router|server|switch|huawei|cisco|zte|samsung|dev \d+|model \w+`)
)

// Extract classifies the query and pulls out device entities. It is a
// pure function and never fails; unknown queries yield IntentUnknown
// and an empty EntitySet.
//
// Only the first device-id and first model mention are extracted;
// queries naming several devices are a known limitation of the
// pattern-based approach.
func Extract(query string) (Intent, EntitySet) {
	lower := strings.ToLower(query)

	var entities EntitySet
	if !containsTrigger(lower) {
		return IntentUnknown, entities
	}

	if m := deviceIdPattern.FindString(lower); m != "" {
		entities.DeviceId = strings.ToUpper(m)
	}
	if m := deviceModelPattern.FindString(lower); m != "" {
		entities.DeviceModelQuery = m
	}

	return IntentDeviceStatusCheck, entities
}

func containsTrigger(lowerQuery string) bool {
	for _, word := range triggerWords {
		if strings.Contains(lowerQuery, word) {
			return true
		}
	}
	return false
}
