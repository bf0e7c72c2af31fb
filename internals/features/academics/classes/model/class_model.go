// internals/features/academics/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ClassModel merepresentasikan tabel `classes`
type ClassModel struct {
	ClassID        uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassSubjectID uuid.UUID `gorm:"column:class_subject_id;type:uuid;not null;index" json:"class_subject_id"` // FK -> subjects(subject_id)

	ClassName string `gorm:"column:class_name;type:varchar(120);not null" json:"class_name"`

	// Hari pertemuan (SUNDAY..SATURDAY) untuk filter cepat jadwal harian
	ClassDays pq.StringArray `gorm:"column:class_days;type:text[]" json:"class_days"`

	// Detail pertemuan per hari: [{day,start,end,room}]
	ClassSchedule datatypes.JSON `gorm:"column:class_schedule" json:"class_schedule,omitempty"`

	ClassCreatedAt time.Time `gorm:"column:class_created_at;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time `gorm:"column:class_updated_at;not null;autoUpdateTime" json:"class_updated_at"`
}

func (ClassModel) TableName() string { return "classes" }
