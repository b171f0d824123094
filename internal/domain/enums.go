package domain

// MaterialUnit is the unit a raw material is stocked in.
type MaterialUnit string

const (
	MaterialUnitGrams  MaterialUnit = "grams"
	MaterialUnitML     MaterialUnit = "ml"
	MaterialUnitPieces MaterialUnit = "pieces"
)

func (u MaterialUnit) String() string { return string(u) }

func (u MaterialUnit) IsValid() bool {
	switch u {
	case MaterialUnitGrams, MaterialUnitML, MaterialUnitPieces:
		return true
	}
	return false
}

// Kind returns the measurement dimension of the unit: mass, volume or count.
func (u MaterialUnit) Kind() string {
	switch u {
	case MaterialUnitGrams:
		return "mass"
	case MaterialUnitML:
		return "volume"
	case MaterialUnitPieces:
		return "count"
	}
	return ""
}

// UserRole represents the authorization level of an account.
type UserRole string

const (
	UserRoleStaff UserRole = "staff"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStaff, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// MovementKind identifies the kind of inventory movement recorded in the event log.
type MovementKind string

const (
	MovementKindProduction MovementKind = "PRODUCTION"
	MovementKindRestock    MovementKind = "RESTOCK"
)

func (k MovementKind) String() string { return string(k) }

func (k MovementKind) IsValid() bool {
	switch k {
	case MovementKindProduction, MovementKindRestock:
		return true
	}
	return false
}
