package template

import (
	"time"

	"gorm.io/datatypes"
)

// Template is a named preset of default amounts for new payslips.
type Template struct {
	ID      string `gorm:"type:varchar(64);primaryKey"`
	OwnerID string `gorm:"type:varchar(64);not null;index"`

	Name        string `gorm:"type:varchar(255);not null"`
	CompanyName string `gorm:"type:varchar(255)"`

	IncludedFields datatypes.JSONType[map[string]bool]  `gorm:"not null"`
	DefaultValues  datatypes.JSONType[map[string]int64] `gorm:"not null"`

	SelectedFormat int `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (Template) TableName() string {
	return "templates"
}

// Includes reports whether the template presets the named field.
func (t Template) Includes(name FieldName) bool {
	return t.IncludedFields.Data()[string(name)]
}

func (t Template) DefaultValue(name FieldName) int64 {
	return t.DefaultValues.Data()[string(name)]
}

// IncludedFieldNames lists the preset fields in display order.
func (t Template) IncludedFieldNames() []FieldName {
	var names []FieldName
	for _, f := range Fields {
		if t.Includes(f.Name) {
			names = append(names, f.Name)
		}
	}
	return names
}

func New(name, companyName string, included map[string]bool, defaults map[string]int64, format int) Template {
	return Template{
		Name:           name,
		CompanyName:    companyName,
		IncludedFields: datatypes.NewJSONType(included),
		DefaultValues:  datatypes.NewJSONType(defaults),
		SelectedFormat: format,
	}
}
