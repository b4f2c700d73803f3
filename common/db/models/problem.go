package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type TestCase struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type TestCases []TestCase

func (t TestCases) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *TestCases) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed while scanning TestCases")
	}
	return json.Unmarshal(bytes, t)
}

func (t TestCases) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql", "sqlite":
		return "JSON"
	case "postgres":
		return "JSONB"
	}
	return ""
}

// ReferenceSolutions maps a platform language name to the author's solution
// source, used to derive expected outputs for custom inputs.
type ReferenceSolutions map[string]string

func (r ReferenceSolutions) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *ReferenceSolutions) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed while scanning ReferenceSolutions")
	}
	return json.Unmarshal(bytes, r)
}

func (r ReferenceSolutions) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql", "sqlite":
		return "JSON"
	case "postgres":
		return "JSONB"
	}
	return ""
}

type Problem struct {
	gorm.Model
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`

	TestCases          TestCases          `gorm:"type:jsonb" json:"testcases"`
	ReferenceSolutions ReferenceSolutions `gorm:"type:jsonb" json:"referenceSolutions"`
}
