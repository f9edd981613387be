package auth

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type Capability string

const (
	CapBookAppointments     Capability = "appointments:book"
	CapManageAnyAppointment Capability = "appointments:manage_any"
	CapCompleteAppointments Capability = "appointments:complete"
	CapManageAccounts       Capability = "accounts:manage"
	CapReadAudit            Capability = "audit:read"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleUser: {
		CapBookAppointments: true,
	},
	RoleAdmin: {
		CapBookAppointments:     true,
		CapManageAnyAppointment: true,
		CapCompleteAppointments: true,
		CapManageAccounts:       true,
		CapReadAudit:            true,
	},
}

// Principal is the authenticated caller.
type Principal struct {
	ID   string
	Role Role
}

func (p Principal) Can(c Capability) bool {
	return roleCapabilities[p.Role][c]
}

// CanActOn reports whether p may manage a resource owned by ownerID.
func (p Principal) CanActOn(ownerID string) bool {
	return p.ID == ownerID || p.Can(CapManageAnyAppointment)
}
