package models

// Setting is a single key/value row used for app bookkeeping such as the
// first-run flag.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `gorm:"not null" json:"value"`
}

// TableName specifies the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
