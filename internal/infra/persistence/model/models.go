// Package model holds the GORM table mappings.
package model

// All lists every table model in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&UserDeviceModel{},
		&DeletionRequestModel{},
		&WebhookLogModel{},
		&PushNotificationLogModel{},
		&AppSettingModel{},
		&IDSequenceModel{},
	}
}
