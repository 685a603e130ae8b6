package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnsProvider(t *testing.T) {
	p := Context{UserID: "u1", Role: RoleProvider, ProviderID: "prov-1"}

	assert.True(t, p.OwnsProvider("prov-1"))
	assert.False(t, p.OwnsProvider("prov-2"))
	assert.False(t, Context{Role: RoleConsumer, ProviderID: "prov-1"}.OwnsProvider("prov-1"))
	assert.False(t, Context{Role: RoleProvider}.OwnsProvider(""))
}

func TestActsForDelegatedConsumers(t *testing.T) {
	parent := Context{UserID: "parent", Role: RoleParent, ConsumerIDs: []string{"kid-1", "kid-2"}}

	assert.True(t, parent.ActsFor("kid-2"))
	assert.False(t, parent.ActsFor("kid-3"))
	assert.False(t, parent.ActsFor(""))
}
