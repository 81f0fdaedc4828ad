package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, Role("SUPPORT_AGENT").IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.False(t, Role("ADMIN;DROP").IsValid())
}

func TestAccount_HasRole(t *testing.T) {
	account := &Account{ID: 1, Roles: Roles{RoleAdmin}}
	assert.True(t, account.HasRole(RoleAdmin))
	assert.False(t, (&Account{ID: 2}).HasRole(RoleAdmin))
	assert.Equal(t, []string{"ADMIN"}, account.Roles.ToStrings())
}
