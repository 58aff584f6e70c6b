package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Roles understood by the system. HR inherits everything an Employee may
// do, Admin inherits everything HR may do.
const (
	RoleEmployee = "Employee"
	RoleHR       = "HR"
	RoleAdmin    = "Admin"
)

// Resources and actions referenced by route registrations.
const (
	ResourceEmployee   = "employee"
	ResourceAttendance = "attendance"
	ResourceLeave      = "leave"
	ResourcePayroll    = "payroll"

	ActionRead    = "read"
	ActionList    = "list"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionCheckIn = "checkin"
	ActionReview  = "review"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// policies is the static allow-list per role. Ownership rules (an employee
// may only touch their own records) stay in the services; this table only
// answers "may this role hit this endpoint at all".
var policies = [][]string{
	// Every authenticated role
	{RoleEmployee, ResourceEmployee, ActionRead},
	{RoleEmployee, ResourceEmployee, ActionUpdate},
	{RoleEmployee, ResourceAttendance, ActionRead},
	{RoleEmployee, ResourceAttendance, ActionCheckIn},
	{RoleEmployee, ResourceLeave, ActionRead},
	{RoleEmployee, ResourceLeave, ActionCreate},
	{RoleEmployee, ResourceLeave, ActionDelete},
	{RoleEmployee, ResourcePayroll, ActionRead},

	// HR and above
	{RoleHR, ResourceEmployee, ActionList},
	{RoleHR, ResourceAttendance, ActionCreate},
	{RoleHR, ResourceAttendance, ActionUpdate},
	{RoleHR, ResourceLeave, ActionReview},
	{RoleHR, ResourcePayroll, ActionCreate},
	{RoleHR, ResourcePayroll, ActionUpdate},

	// Admin only
	{RoleAdmin, ResourceEmployee, ActionDelete},
	{RoleAdmin, ResourceAttendance, ActionDelete},
	{RoleAdmin, ResourcePayroll, ActionDelete},
}

// NewEnforcer builds an in-memory casbin enforcer carrying the static role
// policy. There is no runtime policy administration; the role set is a
// closed enum.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := e.AddGroupingPolicy(RoleHR, RoleEmployee); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicy(RoleAdmin, RoleHR); err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// IsPrivileged reports whether the role may act on records owned by other
// employees.
func IsPrivileged(role string) bool {
	return role == RoleHR || role == RoleAdmin
}
