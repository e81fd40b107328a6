package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleForEmail(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "adwheyofficial@gmail.com, Ops@Example.com")

	assert.Equal(t, RoleAdmin, RoleForEmail("adwheyofficial@gmail.com"))
	assert.Equal(t, RoleAdmin, RoleForEmail("OPS@example.COM"), "allowlist match is case-insensitive")
	assert.Equal(t, RoleClient, RoleForEmail("client@example.com"))
}

func TestAdminEmailsEmptyEnv(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "")

	assert.Empty(t, AdminEmails())
	assert.Equal(t, RoleClient, RoleForEmail("anyone@example.com"))
}

func TestAdminEmailsTrimsEntries(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " a@b.com ,, c@d.com ")

	assert.Equal(t, []string{"a@b.com", "c@d.com"}, AdminEmails())
}
