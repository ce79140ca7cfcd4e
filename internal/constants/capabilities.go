package constants

const (
	RoleAdmin    = "ADMIN"
	RoleOffice   = "OFFICE"
	RoleFloor    = "FLOOR"
	RoleDispatch = "DISPATCH"
)

const (
	ActionOrdersWrite    = "orders.write"
	ActionOrdersImport   = "orders.import"
	ActionOrdersDelete   = "orders.delete"
	ActionOrdersDispatch = "orders.dispatch"
	ActionPlanAllocate   = "plan.allocate"
	ActionProgressUpdate = "assignments.progress"
	ActionWorkersWrite   = "workers.write"
	ActionCatalogWrite   = "catalog.write"
	ActionTimesheetWrite = "timesheet.write"
)

// RoleActions lists what each non-admin role may do; ADMIN is allowed
// everything and is not listed here.
var RoleActions = map[string][]string{
	RoleOffice: {
		ActionOrdersWrite,
		ActionOrdersImport,
		ActionPlanAllocate,
		ActionWorkersWrite,
	},
	RoleFloor: {
		ActionProgressUpdate,
		ActionTimesheetWrite,
	},
	RoleDispatch: {
		ActionOrdersDispatch,
	},
}
