package entity

import "time"

// AppSetting is an admin-maintained key/value pair.
type AppSetting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
