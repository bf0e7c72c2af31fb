package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	m "kampusku_backend/internals/features/academics/classes/model"
	userModel "kampusku_backend/internals/features/users/user/model"
)

/* ===================== SCHEDULE ===================== */

// ScheduleItem: satu pertemuan dalam class_schedule (kolom JSON).
type ScheduleItem struct {
	Day   string `json:"day" validate:"required,oneof=SUNDAY MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY"`
	Start string `json:"start" validate:"required"` // HH:MM
	End   string `json:"end" validate:"required"`   // HH:MM
	Room  string `json:"room"`
}

func MarshalSchedule(items []ScheduleItem) (datatypes.JSON, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func UnmarshalSchedule(raw datatypes.JSON) ([]ScheduleItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []ScheduleItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

/* ===================== REQUESTS ===================== */

type CreateClassRequest struct {
	SubjectID uuid.UUID      `json:"class_subject_id" validate:"required"`
	Name      string         `json:"class_name" validate:"required,min=1,max=120"`
	Schedule  []ScheduleItem `json:"class_schedule" validate:"omitempty,dive"`
}

func (r *CreateClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	for i := range r.Schedule {
		r.Schedule[i].Day = strings.ToUpper(strings.TrimSpace(r.Schedule[i].Day))
	}
}

func (r *CreateClassRequest) ToModel() (*m.ClassModel, error) {
	sched, err := MarshalSchedule(r.Schedule)
	if err != nil {
		return nil, err
	}
	return &m.ClassModel{
		ClassSubjectID: r.SubjectID,
		ClassName:      r.Name,
		ClassDays:      daysOf(r.Schedule),
		ClassSchedule:  sched,
	}, nil
}

type UpdateClassRequest struct {
	SubjectID *uuid.UUID      `json:"class_subject_id" validate:"omitempty"`
	Name      *string         `json:"class_name" validate:"omitempty,min=1,max=120"`
	Schedule  *[]ScheduleItem `json:"class_schedule" validate:"omitempty,dive"`
}

func (r *UpdateClassRequest) ApplyToModel(cls *m.ClassModel) error {
	if r.SubjectID != nil {
		cls.ClassSubjectID = *r.SubjectID
	}
	if r.Name != nil {
		cls.ClassName = strings.TrimSpace(*r.Name)
	}
	if r.Schedule != nil {
		for i := range *r.Schedule {
			(*r.Schedule)[i].Day = strings.ToUpper(strings.TrimSpace((*r.Schedule)[i].Day))
		}
		sched, err := MarshalSchedule(*r.Schedule)
		if err != nil {
			return err
		}
		cls.ClassSchedule = sched
		cls.ClassDays = daysOf(*r.Schedule)
	}
	return nil
}

// daysOf: kumpulan hari unik dari schedule, urutan kemunculan.
func daysOf(items []ScheduleItem) pq.StringArray {
	seen := map[string]struct{}{}
	out := pq.StringArray{}
	for _, it := range items {
		d := strings.ToUpper(strings.TrimSpace(it.Day))
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

type AssignLecturersRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" validate:"required,min=1"`
}

/* ===================== RESPONSES ===================== */

type ClassResponse struct {
	ID        uuid.UUID      `json:"class_id"`
	SubjectID uuid.UUID      `json:"class_subject_id"`
	Name      string         `json:"class_name"`
	Days      []string       `json:"class_days"`
	Schedule  []ScheduleItem `json:"class_schedule,omitempty"`
	CreatedAt time.Time      `json:"class_created_at"`
}

func FromClassModel(cls m.ClassModel) ClassResponse {
	items, _ := UnmarshalSchedule(cls.ClassSchedule)
	return ClassResponse{
		ID:        cls.ClassID,
		SubjectID: cls.ClassSubjectID,
		Name:      cls.ClassName,
		Days:      cls.ClassDays,
		Schedule:  items,
		CreatedAt: cls.ClassCreatedAt,
	}
}

func FromClassModels(cs []m.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClassModel(c))
	}
	return out
}

// ClassMemberResponse: baris roster + info user ter-join.
type ClassMemberResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"username"`
	FullName string    `json:"fullname"`
	Role     string    `json:"role"`
}

func FromClassMember(u userModel.UserModel) ClassMemberResponse {
	return ClassMemberResponse{
		UserID:   u.ID,
		UserName: u.UserName,
		FullName: u.FullName,
		Role:     u.Role.String(),
	}
}

// DayScheduleResponse: jadwal satu kelas pada hari tertentu.
type DayScheduleResponse struct {
	ClassID   uuid.UUID      `json:"class_id"`
	ClassName string         `json:"class_name"`
	Meetings  []ScheduleItem `json:"meetings"`
}
