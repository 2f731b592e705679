package entity

// Actor is the authenticated caller as seen by handlers and services.
// The zero Actor is an anonymous request: every predicate returns false.
type Actor struct {
	ID    uint
	Roles []Role
}

func (a Actor) Authenticated() bool { return a.ID != 0 }

func (a Actor) IsManager() bool { return a.hasRole(RoleManager) }

func (a Actor) IsCrew() bool { return a.hasRole(RoleDeliveryCrew) }

// IsCustomer is membership by exclusion: authenticated, but no staff role.
func (a Actor) IsCustomer() bool {
	return a.Authenticated() && !a.IsManager() && !a.IsCrew()
}

func (a Actor) hasRole(role Role) bool {
	if !a.Authenticated() {
		return false
	}
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}
