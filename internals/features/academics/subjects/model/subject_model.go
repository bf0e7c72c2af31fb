// internals/features/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SubjectModel merepresentasikan tabel `subjects`
type SubjectModel struct {
	SubjectID   uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`
	SubjectCode string    `gorm:"column:subject_code;type:varchar(40);unique;not null" json:"subject_code"`
	SubjectName string    `gorm:"column:subject_name;type:varchar(120);not null" json:"subject_name"`

	SubjectCreatedAt time.Time `gorm:"column:subject_created_at;not null;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time `gorm:"column:subject_updated_at;not null;autoUpdateTime" json:"subject_updated_at"`
}

func (SubjectModel) TableName() string { return "subjects" }
