package constants

// Role pengguna aplikasi
const (
	RoleAdminTU       = "ADMIN_TU"
	RoleKepalaSekolah = "KEPALA_SEKOLAH"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdminTU,
		RoleKepalaSekolah,
	}

	AdminOnly = []string{
		RoleAdminTU,
	}
)

const ErrOnlyAdminTU = "Akses ditolak, hanya untuk Admin TU"
