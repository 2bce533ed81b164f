package entity

import (
	"time"

	"ai-devicechat-be/internal/constant"
)

// DeviceActivityLog is a read-only projection of the device activity
// source. Model, location and timestamp may be absent in the source data.
type DeviceActivityLog struct {
	Id          uint   `gorm:"primaryKey;autoIncrement"`
	DeviceId    string `gorm:"type:varchar(50);index"`
	DeviceModel *string
	Status      string
	Location    *string
	Timestamp   *time.Time `gorm:"index"`
}

func (DeviceActivityLog) TableName() string {
	return constant.DeviceActivityTable
}
