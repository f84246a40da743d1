package db

import "time"

// Preference is one persisted viewer setting, for example the preferred
// target language.
type Preference struct {
	Key       string    `gorm:"column:key;type:text;primaryKey"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}

func (Preference) TableName() string { return "preferences" }

func autoMigrateModels() []any {
	return []any{
		&Preference{},
	}
}
