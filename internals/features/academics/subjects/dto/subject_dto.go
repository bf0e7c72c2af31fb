package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kampusku_backend/internals/features/academics/subjects/model"
)

/* ===================== REQUESTS ===================== */

type CreateSubjectRequest struct {
	Code string `json:"subject_code" validate:"required,min=1,max=40"`
	Name string `json:"subject_name" validate:"required,min=1,max=120"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateSubjectRequest) ToModel() *m.SubjectModel {
	return &m.SubjectModel{
		SubjectCode: r.Code,
		SubjectName: r.Name,
	}
}

type UpdateSubjectRequest struct {
	Code *string `json:"subject_code" validate:"omitempty,min=1,max=40"`
	Name *string `json:"subject_name" validate:"omitempty,min=1,max=120"`
}

func (r *UpdateSubjectRequest) ApplyToModel(s *m.SubjectModel) {
	if r.Code != nil {
		s.SubjectCode = strings.ToUpper(strings.TrimSpace(*r.Code))
	}
	if r.Name != nil {
		s.SubjectName = strings.TrimSpace(*r.Name)
	}
}

/* ===================== RESPONSES ===================== */

type SubjectResponse struct {
	ID        uuid.UUID `json:"subject_id"`
	Code      string    `json:"subject_code"`
	Name      string    `json:"subject_name"`
	CreatedAt time.Time `json:"subject_created_at"`
}

func FromSubjectModel(s m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		ID:        s.SubjectID,
		Code:      s.SubjectCode,
		Name:      s.SubjectName,
		CreatedAt: s.SubjectCreatedAt,
	}
}

func FromSubjectModels(ss []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSubjectModel(s))
	}
	return out
}
