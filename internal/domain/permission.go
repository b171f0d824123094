package domain

// Action is an operation subject to the role permission matrix.
type Action string

const (
	ActionProduce         Action = "produce"
	ActionReadInventory   Action = "read_inventory"
	ActionReadCatalog     Action = "read_catalog"
	ActionReadHistory     Action = "read_history"
	ActionManageMaterials Action = "manage_materials"
	ActionRestock         Action = "restock"
	ActionManageCatalog   Action = "manage_catalog"
	ActionManageRecipes   Action = "manage_recipes"
	ActionManageAccounts  Action = "manage_accounts"
)

// staffActions are the actions granted to staff. Admins may do everything.
var staffActions = map[Action]bool{
	ActionProduce:       true,
	ActionReadInventory: true,
	ActionReadCatalog:   true,
	ActionReadHistory:   true,
}

// Allows reports whether role may perform action. Unknown roles and
// unknown actions are denied.
func (r UserRole) Allows(a Action) bool {
	switch r {
	case UserRoleAdmin:
		return a.IsValid()
	case UserRoleStaff:
		return staffActions[a]
	}
	return false
}

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool {
	switch a {
	case ActionProduce, ActionReadInventory, ActionReadCatalog, ActionReadHistory,
		ActionManageMaterials, ActionRestock, ActionManageCatalog, ActionManageRecipes,
		ActionManageAccounts:
		return true
	}
	return false
}
