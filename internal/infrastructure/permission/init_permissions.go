package permission

import (
	"fmt"

	"campus/internal/domain/permission"
	"campus/internal/shared/authorization"
	"campus/internal/shared/logger"
)

// DefaultPolicies grants staff read and write on every record module plus
// read on the dashboard and history. Admins inherit all of it and alone
// manage user accounts. Regular users hold no admin permissions.
func DefaultPolicies() []permission.Policy {
	staff := authorization.RoleStaff.String()
	admin := authorization.RoleAdmin.String()

	policies := make([]permission.Policy, 0, 2*len(permission.RecordResources())+4)
	for _, resource := range permission.RecordResources() {
		policies = append(policies,
			permission.Policy{Role: staff, Resource: resource, Action: permission.ActionRead},
			permission.Policy{Role: staff, Resource: resource, Action: permission.ActionWrite},
		)
	}
	return append(policies,
		permission.Policy{Role: staff, Resource: permission.ResourceDashboard, Action: permission.ActionRead},
		permission.Policy{Role: staff, Resource: permission.ResourceHistory, Action: permission.ActionRead},
		permission.Policy{Role: admin, Resource: permission.ResourceUsers, Action: permission.ActionRead},
		permission.Policy{Role: admin, Resource: permission.ResourceUsers, Action: permission.ActionWrite},
	)
}

// InitPermissions seeds the default policies. Existing rules are left as
// they are, so it is safe to run on every start.
func InitPermissions(e *Enforcer, log logger.Interface) error {
	for _, policy := range DefaultPolicies() {
		if err := e.AddPolicy(policy); err != nil {
			log.Errorw("failed to add permission policy", "policy", policy.String(), "error", err)
			return fmt.Errorf("failed to add policy %s: %w", policy, err)
		}
	}

	if err := e.AddRoleInheritance(authorization.RoleAdmin.String(), authorization.RoleStaff.String()); err != nil {
		return err
	}

	log.Infow("permissions initialized successfully", "policies", len(DefaultPolicies()))
	return nil
}
