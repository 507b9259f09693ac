package domain_test

import (
	"testing"

	"hr-module/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_HasAnyRole(t *testing.T) {
	tests := []struct {
		name    string
		roles   []string
		allowed []string
		want    bool
	}{
		{
			name:    "single matching role",
			roles:   []string{domain.RoleEmployee},
			allowed: []string{domain.RoleEmployee},
			want:    true,
		},
		{
			name:    "overlap on one of several",
			roles:   []string{domain.RoleEmployee, domain.RoleHRAdmin},
			allowed: []string{domain.RoleHRAdmin, domain.RoleSuperAdmin},
			want:    true,
		},
		{
			name:    "no overlap",
			roles:   []string{domain.RoleEmployee},
			allowed: []string{domain.RoleHRAdmin, domain.RoleSuperAdmin},
			want:    false,
		},
		{
			name:    "super admin is not implied",
			roles:   []string{domain.RoleSuperAdmin},
			allowed: []string{domain.RoleHRAdmin},
			want:    false,
		},
		{
			name:    "empty role set",
			roles:   nil,
			allowed: []string{domain.RoleEmployee},
			want:    false,
		},
		{
			name:    "empty allowed set",
			roles:   []string{domain.RoleEmployee},
			allowed: nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := domain.Identity{UserID: "u1", Roles: tt.roles}
			assert.Equal(t, tt.want, id.HasAnyRole(tt.allowed...))
		})
	}
}

func TestIdentity_IsAdmin(t *testing.T) {
	assert.True(t, domain.Identity{Roles: []string{domain.RoleHRAdmin}}.IsAdmin())
	assert.True(t, domain.Identity{Roles: []string{domain.RoleSuperAdmin}}.IsAdmin())
	assert.False(t, domain.Identity{Roles: []string{domain.RoleEmployee}}.IsAdmin())
}
