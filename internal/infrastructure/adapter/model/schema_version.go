package model

import "time"

// SchemaVersionTable holds one row per applied schema version
const SchemaVersionTable = "schema_versions"

// SchemaVersion records a schema version reached by the migrator
type SchemaVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;index"`
	AppliedAt time.Time `gorm:"not null"`
	Details   string    `gorm:"type:text"`
}

// TableName overrides the GORM default
func (SchemaVersion) TableName() string {
	return SchemaVersionTable
}
