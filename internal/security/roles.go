package security

// Role is a canonical authorization role.
type Role string

// Canonical roles.
const (
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleService Role = "service"
)

// intentRolePolicy is the static baseline mapping of intent names to the
// role required to execute them. Intents absent from the table require no
// authorization unless their adapter declares its own auth baseline.
var intentRolePolicy = map[string]Role{
	"unlock_door": RoleOwner,
}

// RequiredRoleForIntent returns the baseline role required for an intent,
// or "" when the intent carries no baseline requirement.
func RequiredRoleForIntent(intent string) Role {
	return intentRolePolicy[intent]
}
