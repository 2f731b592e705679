package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActorPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		actor      Actor
		isManager  bool
		isCrew     bool
		isCustomer bool
	}{
		{name: "anonymous", actor: Actor{}},
		{name: "customer", actor: Actor{ID: 1}, isCustomer: true},
		{name: "manager", actor: Actor{ID: 2, Roles: []Role{RoleManager}}, isManager: true},
		{name: "crew", actor: Actor{ID: 3, Roles: []Role{RoleDeliveryCrew}}, isCrew: true},
		{
			name:      "manager and crew",
			actor:     Actor{ID: 4, Roles: []Role{RoleManager, RoleDeliveryCrew}},
			isManager: true,
			isCrew:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isManager, tt.actor.IsManager())
			assert.Equal(t, tt.isCrew, tt.actor.IsCrew())
			assert.Equal(t, tt.isCustomer, tt.actor.IsCustomer())
		})
	}
}

// Roles granted to an unauthenticated actor must not leak permissions.
func TestActorPredicatesRequireAuthentication(t *testing.T) {
	t.Parallel()

	a := Actor{Roles: []Role{RoleManager, RoleDeliveryCrew}}
	assert.False(t, a.Authenticated())
	assert.False(t, a.IsManager())
	assert.False(t, a.IsCrew())
	assert.False(t, a.IsCustomer())
}
