package constants

import (
	"os"
	"strings"
)

// Roles carried in the session token
const (
	RoleAdmin  = "admin"
	RoleClient = "client"

	// Special role matching any authenticated user
	RoleAny = "any"
)

// AdminEmails returns the configured admin allowlist (ADMIN_EMAILS,
// comma-separated). Membership is resolved at login and carried as the
// token's role claim, so changing the list never requires a redeploy of
// anything but the env.
func AdminEmails() []string {
	raw := os.Getenv("ADMIN_EMAILS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		if e := strings.ToLower(strings.TrimSpace(p)); e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}

// IsAdminEmail reports whether email is on the admin allowlist.
func IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range AdminEmails() {
		if e == email {
			return true
		}
	}
	return false
}

// RoleForEmail resolves the role claim for a signing-in identity.
func RoleForEmail(email string) string {
	if IsAdminEmail(email) {
		return RoleAdmin
	}
	return RoleClient
}
