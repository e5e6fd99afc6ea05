package rbac

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleOwner   = "owner"
	RolePlanner = "planner"
	RoleViewer  = "viewer"
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

// Each role inherits everything granted to the role below it.
var (
	rolePolicies = [][]string{
		{RoleViewer, "tenant", "read"},
		{RoleViewer, "profile", "read"},
		{RoleViewer, "guest", "read"},

		{RolePlanner, "profile", "create"},
		{RolePlanner, "profile", "update"},
		{RolePlanner, "guest", "create"},
		{RolePlanner, "guest", "update"},
		{RolePlanner, "guest", "delete"},

		{RoleOwner, "tenant", "update"},
		{RoleOwner, "profile", "delete"},
		{RoleOwner, "profile", "publish"},
	}

	roleHierarchy = [][]string{
		{RoleOwner, RolePlanner},
		{RolePlanner, RoleViewer},
	}
)

// Enforcer answers role/resource/action questions from a fixed policy set.
// It is safe for concurrent use.
type Enforcer struct {
	e *casbin.SyncedEnforcer
}

func NewEnforcer() (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("rbac: parse model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("rbac: new enforcer: %w", err)
	}

	if _, err := e.AddPolicies(rolePolicies); err != nil {
		return nil, fmt.Errorf("rbac: load policies: %w", err)
	}
	if _, err := e.AddGroupingPolicies(roleHierarchy); err != nil {
		return nil, fmt.Errorf("rbac: load role hierarchy: %w", err)
	}

	return &Enforcer{e: e}, nil
}

func (en *Enforcer) Enforce(role, resource, action string) (bool, error) {
	return en.e.Enforce(role, resource, action)
}

// Permissions lists "resource:action" pairs granted to role, inherited ones
// included.
func (en *Enforcer) Permissions(role string) ([]string, error) {
	rules, err := en.e.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, err
	}

	perms := make([]string, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		perms = append(perms, rule[1]+":"+rule[2])
	}
	return perms, nil
}

func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RolePlanner, RoleViewer:
		return true
	}
	return false
}
