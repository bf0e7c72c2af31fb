package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kampusku_backend/internals/apperr"
	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/waitinglist/model"
	userModel "kampusku_backend/internals/features/users/user/model"
)

// fakeStore: implementasi Store in-memory untuk menguji state machine tanpa DB.
type fakeStore struct {
	users   map[uuid.UUID]*userModel.UserModel
	entries map[uuid.UUID]*model.StudentWaitingListModel
	order   []uuid.UUID
	roster  map[uuid.UUID][]uuid.UUID // classID -> userIDs

	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   map[uuid.UUID]*userModel.UserModel{},
		entries: map[uuid.UUID]*model.StudentWaitingListModel{},
		roster:  map[uuid.UUID][]uuid.UUID{},
	}
}

func (f *fakeStore) addUser(role constants.Role, userName, fullName string) uuid.UUID {
	id := uuid.New()
	f.users[id] = &userModel.UserModel{ID: id, UserName: userName, FullName: fullName, Role: role, IsActive: true}
	return id
}

func (f *fakeStore) addEntry(userID, classID uuid.UUID, status model.AcceptanceStatus) uuid.UUID {
	id := uuid.New()
	f.entries[id] = &model.StudentWaitingListModel{
		WaitingListID:        id,
		WaitingListUserID:    userID,
		WaitingListClassID:   classID,
		WaitingListStatus:    status,
		WaitingListCreatedAt: time.Now().Add(time.Duration(len(f.order)) * time.Second),
	}
	f.order = append(f.order, id)
	return id
}

func (f *fakeStore) assign(classID, userID uuid.UUID) {
	f.roster[classID] = append(f.roster[classID], userID)
}

func (f *fakeStore) FindUserByID(id uuid.UUID) (*userModel.UserModel, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.users[id], nil
}

func (f *fakeStore) FindEntryByUserAndClass(userID, classID uuid.UUID) (*model.StudentWaitingListModel, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, id := range f.order {
		e := f.entries[id]
		if e != nil && e.WaitingListUserID == userID && e.WaitingListClassID == classID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindEntryByID(entryID uuid.UUID) (*model.StudentWaitingListModel, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	e := f.entries[entryID]
	if e != nil {
		e.User = f.users[e.WaitingListUserID]
	}
	return e, nil
}

func (f *fakeStore) CreateEntry(entry *model.StudentWaitingListModel) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, id := range f.order {
		e := f.entries[id]
		if e != nil && e.WaitingListUserID == entry.WaitingListUserID && e.WaitingListClassID == entry.WaitingListClassID {
			return errors.New(`duplicate key value violates unique constraint "uq_waiting_list_user_class"`)
		}
	}
	f.entries[entry.WaitingListID] = entry
	f.order = append(f.order, entry.WaitingListID)
	return nil
}

func (f *fakeStore) DeleteEntry(entryID uuid.UUID) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.entries, entryID)
	return nil
}

func (f *fakeStore) IsClassMember(classID, userID uuid.UUID) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	for _, id := range f.roster[classID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) ApplyDecision(entry *model.StudentWaitingListModel, status model.AcceptanceStatus, enroll bool) error {
	if f.failWith != nil {
		return f.failWith
	}
	stored := f.entries[entry.WaitingListID]
	if stored == nil || stored.WaitingListStatus != model.StatusPending {
		return errors.New("record not found")
	}
	stored.WaitingListStatus = status
	entry.WaitingListStatus = status
	if enroll {
		f.assign(entry.WaitingListClassID, entry.WaitingListUserID)
	}
	return nil
}

func (f *fakeStore) ListEntriesByClass(classID uuid.UUID, status string) ([]model.StudentWaitingListModel, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []model.StudentWaitingListModel
	for _, id := range f.order {
		e := f.entries[id]
		if e == nil || e.WaitingListClassID != classID {
			continue
		}
		if status != "" && string(e.WaitingListStatus) != status {
			continue
		}
		cp := *e
		cp.User = f.users[e.WaitingListUserID]
		out = append(out, cp)
	}
	return out, nil
}

func expectAppErr(t *testing.T, aerr *apperr.Error, status int, code, message string) {
	t.Helper()
	if aerr == nil {
		t.Fatalf("expected error %d %s, got nil", status, code)
	}
	if aerr.Status != status || aerr.Code != code {
		t.Fatalf("expected %d %s, got %d %s (%q)", status, code, aerr.Status, aerr.Code, aerr.Message)
	}
	if message != "" && aerr.Message != message {
		t.Fatalf("expected message %q, got %q", message, aerr.Message)
	}
}

func TestRegisterCreatesPendingEntry(t *testing.T) {
	store := newFakeStore()
	student := store.addUser(constants.RoleStudent, "2110001", "Budi Santoso")
	classID := uuid.New()
	svc := NewWaitingListService(store)

	entry, aerr := svc.RegisterOrCancel(student, classID, false)
	if aerr != nil {
		t.Fatalf("unexpected error: %v", aerr)
	}
	if entry == nil || entry.WaitingListStatus != model.StatusPending {
		t.Fatalf("expected new PENDING entry, got %+v", entry)
	}
	if entry.WaitingListUserID != student || entry.WaitingListClassID != classID {
		t.Fatalf("entry not linked to caller/class: %+v", entry)
	}
	if entry.WaitingListID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
}

func TestRegisterUnknownUser(t *testing.T) {
	store := newFakeStore()
	svc := NewWaitingListService(store)

	_, aerr := svc.RegisterOrCancel(uuid.New(), uuid.New(), false)
	expectAppErr(t, aerr, fiber.StatusNotFound, apperr.CodeUserNotFound, "user's not found")
}

func TestRegisterRejectsNonStudent(t *testing.T) {
	store := newFakeStore()
	lecturer := store.addUser(constants.RoleLecturer, "d001", "Dr. Sari")
	svc := NewWaitingListService(store)

	_, aerr := svc.RegisterOrCancel(lecturer, uuid.New(), false)
	expectAppErr(t, aerr, fiber.StatusBadRequest, apperr.CodeBadRequest, "user's not student")
}

func TestRegisterDuplicateForSamePair(t *testing.T) {
	store := newFakeStore()
	student := store.addUser(constants.RoleStudent, "2110001", "Budi Santoso")
	classID := uuid.New()
	store.addEntry(student, classID, model.StatusPending)
	svc := NewWaitingListService(store)

	_, aerr := svc.RegisterOrCancel(student, classID, false)
	expectAppErr(t, aerr, fiber.StatusBadRequest, apperr.CodeUniqueConstraint, "")
}

// racyStore: pre-check tidak melihat entry yang sudah ada, meniru request
// paralel yang menang duluan. Index unik store yang harus menangkapnya.
type racyStore struct{ *fakeStore }

func (r racyStore) FindEntryByUserAndClass(userID, classID uuid.UUID) (*model.StudentWaitingListModel, error) {
	return nil, nil
}

func TestRegisterDuplicateAfterRaceOnCreate(t *testing.T) {
	store := newFakeStore()
	student := store.addUser(constants.RoleStudent, "2110001", "Budi Santoso")
	classID := uuid.New()
	store.addEntry(student, classID, model.StatusPending)
	svc := NewWaitingListService(racyStore{store})

	_, aerr := svc.RegisterOrCancel(student, classID, false)
	expectAppErr(t, aerr, fiber.StatusBadRequest, apperr.CodeUniqueConstraint, "")
}

func TestCancelDeletesPendingEntry(t *testing.T) {
	store := newFakeStore()
	student := store.addUser(constants.RoleStudent, "2110001", "Budi Santoso")
	classID := uuid.New()
	entryID := store.addEntry(student, classID, model.StatusPending)
	svc := NewWaitingListService(store)

	_, aerr := svc.RegisterOrCancel(student, classID, true)
	if aerr != nil {
		t.Fatalf("unexpected error: %v", aerr)
	}
	if store.entries[entryID] != nil {
		t.Fatalf("expected hard delete, entry still present")
	}

	// Batal kedua kali: entry sudah hilang.
	_, aerr = svc.RegisterOrCancel(student, classID, true)
	expectAppErr(t, aerr, fiber.StatusNotFound, apperr.CodeCommonNotFound, "you don't request to this class")
}

func TestCancelWithoutRequest(t *testing.T) {
	store := newFakeStore()
	student := store.addUser(constants.RoleStudent, "2110001", "Budi Santoso")
	svc := NewWaitingListService(store)

	_, aerr := svc.RegisterOrCancel(student, uuid.New(), true)
	expectAppErr(t, aerr, fiber.StatusNotFound, apperr.CodeCommonNotFound, "you don't request to this class")
}

func TestCancelAcceptedRequest(t *testing.T) {
	store := newFakeStore()
	student := store.addUser(constants.RoleStudent, "2110001", "Budi Santoso")
	classID := uuid.New()
	entryID := store.addEntry(student, classID, model.StatusAccepted)
	svc := NewWaitingListService(store)

	_, aerr := svc.RegisterOrCancel(student, classID, true)
	expectAppErr(t, aerr, fiber.StatusBadRequest, apperr.CodeBadRequest, "request has been accepted cannot cancel")
	if store.entries[entryID] == nil {
		t.Fatalf("accepted entry must survive cancel attempt")
	}
}

func TestDecideAcceptEnrollsStudent(t *testing.T) {
	store := newFakeStore()
	student := store.addUser(constants.RoleStudent, "2110001", "Budi Santoso")
	lecturer := store.addUser(constants.RoleLecturer, "d001", "Dr. Sari")
	classID := uuid.New()
	store.assign(classID, lecturer)
	entryID := store.addEntry(student, classID, model.StatusPending)
	svc := NewWaitingListService(store)

	entry, aerr := svc.Decide(lecturer, entryID, true)
	if aerr != nil {
		t.Fatalf("unexpected error: %v", aerr)
	}
	if entry.WaitingListStatus != model.StatusAccepted {
		t.Fatalf("expected ACCEPTED, got %s", entry.WaitingListStatus)
	}
	enrolled, _ := store.IsClassMember(classID, student)
	if !enrolled {
		t.Fatalf("accepted student must be on the class roster")
	}
}

func TestDecideRejectDoesNotEnroll(t *testing.T) {
	store := newFakeStore()
	student := store.addUser(constants.RoleStudent, "2110001", "Budi Santoso")
	lecturer := store.addUser(constants.RoleLecturer, "d001", "Dr. Sari")
	classID := uuid.New()
	store.assign(classID, lecturer)
	entryID := store.addEntry(student, classID, model.StatusPending)
	svc := NewWaitingListService(store)

	entry, aerr := svc.Decide(lecturer, entryID, false)
	if aerr != nil {
		t.Fatalf("unexpected error: %v", aerr)
	}
	if entry.WaitingListStatus != model.StatusRejected {
		t.Fatalf("expected REJECTED, got %s", entry.WaitingListStatus)
	}
	enrolled, _ := store.IsClassMember(classID, student)
	if enrolled {
		t.Fatalf("rejected student must not be enrolled")
	}
}

func TestDecideRequiresAssignedLecturer(t *testing.T) {
	store := newFakeStore()
	student := store.addUser(constants.RoleStudent, "2110001", "Budi Santoso")
	lecturer := store.addUser(constants.RoleLecturer, "d001", "Dr. Sari")
	classID := uuid.New()
	entryID := store.addEntry(student, classID, model.StatusPending)
	svc := NewWaitingListService(store)

	_, aerr := svc.Decide(lecturer, entryID, true)
	expectAppErr(t, aerr, fiber.StatusBadRequest, apperr.CodeBadRequest, "this class's not for you")
}

func TestDecideMissingEntry(t *testing.T) {
	store := newFakeStore()
	lecturer := store.addUser(constants.RoleLecturer, "d001", "Dr. Sari")
	svc := NewWaitingListService(store)

	_, aerr := svc.Decide(lecturer, uuid.New(), true)
	expectAppErr(t, aerr, fiber.StatusNotFound, apperr.CodeCommonNotFound, "")
}

func TestDecideTerminalEntryIsFinal(t *testing.T) {
	store := newFakeStore()
	student := store.addUser(constants.RoleStudent, "2110001", "Budi Santoso")
	lecturer := store.addUser(constants.RoleLecturer, "d001", "Dr. Sari")
	classID := uuid.New()
	store.assign(classID, lecturer)
	entryID := store.addEntry(student, classID, model.StatusRejected)
	svc := NewWaitingListService(store)

	_, aerr := svc.Decide(lecturer, entryID, true)
	expectAppErr(t, aerr, fiber.StatusBadRequest, apperr.CodeBadRequest, "")
	if store.entries[entryID].WaitingListStatus != model.StatusRejected {
		t.Fatalf("terminal status must not transition")
	}
}

func TestListForLecturerProjection(t *testing.T) {
	store := newFakeStore()
	first := store.addUser(constants.RoleStudent, "2110001", "Budi Santoso")
	second := store.addUser(constants.RoleStudent, "2110002", "Siti Rahma")
	lecturer := store.addUser(constants.RoleLecturer, "d001", "Dr. Sari")
	classID := uuid.New()
	store.assign(classID, lecturer)
	store.addEntry(first, classID, model.StatusPending)
	store.addEntry(second, classID, model.StatusAccepted)
	store.addEntry(first, uuid.New(), model.StatusPending) // kelas lain, tidak ikut
	svc := NewWaitingListService(store)

	items, aerr := svc.ListForLecturer(lecturer, classID, "")
	if aerr != nil {
		t.Fatalf("unexpected error: %v", aerr)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].StudentID != "2110001" || items[1].StudentID != "2110002" {
		t.Fatalf("expected insertion order, got %q then %q", items[0].StudentID, items[1].StudentID)
	}
	if items[0].Fullname != "Budi Santoso" || items[0].UserID != first {
		t.Fatalf("projection mismatch: %+v", items[0])
	}
	if items[1].Status != model.StatusAccepted {
		t.Fatalf("status not projected: %+v", items[1])
	}
}

func TestListForLecturerStatusFilter(t *testing.T) {
	store := newFakeStore()
	first := store.addUser(constants.RoleStudent, "2110001", "Budi Santoso")
	second := store.addUser(constants.RoleStudent, "2110002", "Siti Rahma")
	lecturer := store.addUser(constants.RoleLecturer, "d001", "Dr. Sari")
	classID := uuid.New()
	store.assign(classID, lecturer)
	store.addEntry(first, classID, model.StatusPending)
	store.addEntry(second, classID, model.StatusAccepted)
	svc := NewWaitingListService(store)

	items, aerr := svc.ListForLecturer(lecturer, classID, "PENDING")
	if aerr != nil {
		t.Fatalf("unexpected error: %v", aerr)
	}
	if len(items) != 1 || items[0].Status != model.StatusPending {
		t.Fatalf("expected only the PENDING entry, got %+v", items)
	}

	// Nilai filter tak dikenal match kosong, bukan error.
	items, aerr = svc.ListForLecturer(lecturer, classID, "WAITING")
	if aerr != nil {
		t.Fatalf("unexpected error: %v", aerr)
	}
	if len(items) != 0 {
		t.Fatalf("unknown status must match nothing, got %d items", len(items))
	}
}

func TestListForLecturerNotAssigned(t *testing.T) {
	store := newFakeStore()
	lecturer := store.addUser(constants.RoleLecturer, "d001", "Dr. Sari")
	svc := NewWaitingListService(store)

	_, aerr := svc.ListForLecturer(lecturer, uuid.New(), "")
	expectAppErr(t, aerr, fiber.StatusBadRequest, apperr.CodeBadRequest, "this class's not for you")
}

func TestListForLecturerMissingJoinedUser(t *testing.T) {
	store := newFakeStore()
	lecturer := store.addUser(constants.RoleLecturer, "d001", "Dr. Sari")
	classID := uuid.New()
	store.assign(classID, lecturer)
	store.addEntry(uuid.New(), classID, model.StatusPending) // user tidak pernah ada
	svc := NewWaitingListService(store)

	_, aerr := svc.ListForLecturer(lecturer, classID, "")
	expectAppErr(t, aerr, fiber.StatusInternalServerError, apperr.CodeInternal, "")
}

func TestStoreFailureSurfacesAsInternal(t *testing.T) {
	store := newFakeStore()
	store.addUser(constants.RoleStudent, "2110001", "Budi Santoso")
	store.failWith = errors.New("connection refused")
	svc := NewWaitingListService(store)

	_, aerr := svc.RegisterOrCancel(uuid.New(), uuid.New(), false)
	expectAppErr(t, aerr, fiber.StatusInternalServerError, apperr.CodeInternal, "")
}
