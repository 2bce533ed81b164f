package extractor

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantIntent Intent
		wantId     string
		wantModel  string
	}{
		{
			name:       "status check with short device id",
			query:      "cek status dev01",
			wantIntent: IntentDeviceStatusCheck,
			wantId:     "DEV01",
		},
		{
			name:       "device id is canonicalized to uppercase",
			query:      "STATUS dev123",
			wantIntent: IntentDeviceStatusCheck,
			wantId:     "DEV123",
		},
		{
			name:       "hyphenated device id",
			query:      "status olt-jkt-001 please",
			wantIntent: IntentDeviceStatusCheck,
			wantId:     "OLT-JKT-001",
			wantModel:  "olt",
		},
		{
			name:       "model vocabulary only, first match wins",
			query:      "status of the huawei routers",
			wantIntent: IntentDeviceStatusCheck,
			wantModel:  "huawei",
		},
		{
			name:       "generic model token form",
			query:      "status model alpha",
			wantIntent: IntentDeviceStatusCheck,
			wantModel:  "model alpha",
		},
		{
			name:       "trigger without entities",
			query:      "how do I check a device status?",
			wantIntent: IntentDeviceStatusCheck,
		},
		{
			name:       "no trigger word",
			query:      "what's the weather like in Bandung?",
			wantIntent: IntentUnknown,
		},
		{
			name:       "entities ignored without trigger",
			query:      "tell me about rtr22",
			wantIntent: IntentUnknown,
		},
		{
			name:       "empty query",
			query:      "",
			wantIntent: IntentUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, entities := Extract(tt.query)

			if intent != tt.wantIntent {
				t.Errorf("intent = %q, want %q", intent, tt.wantIntent)
			}
			if entities.DeviceId != tt.wantId {
				t.Errorf("DeviceId = %q, want %q", entities.DeviceId, tt.wantId)
			}
			if entities.DeviceModelQuery != tt.wantModel {
				t.Errorf("DeviceModelQuery = %q, want %q", entities.DeviceModelQuery, tt.wantModel)
			}
		})
	}
}

// Case differences in the raw query must not change the canonical id.
func TestExtractIdempotentCanonicalization(t *testing.T) {
	_, lower := Extract("status dev123")
	_, upper := Extract("STATUS DEV123")

	if lower.DeviceId != upper.DeviceId {
		t.Errorf("canonical ids differ: %q vs %q", lower.DeviceId, upper.DeviceId)
	}
	if lower.DeviceId != "DEV123" {
		t.Errorf("DeviceId = %q, want DEV123", lower.DeviceId)
	}
}
