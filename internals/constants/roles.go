package constants

// Role adalah tipe tertutup untuk peran user.
type Role string

const (
	RoleStudent  Role = "STUDENT"
	RoleLecturer Role = "LECTURER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleLecturer, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []Role{
		RoleStudent,
		RoleLecturer,
		RoleAdmin,
	}

	LecturerAndAbove = []Role{
		RoleLecturer,
		RoleAdmin,
	}

	AdminOnly = []Role{
		RoleAdmin,
	}
)

// Template pesan error role
const (
	ErrOnlyLecturersCanAccess = "Hanya lecturer atau admin yang boleh mengakses fitur ini."
	ErrOnlyAdminsCanAccess    = "Hanya admin yang boleh mengakses fitur ini."
)
