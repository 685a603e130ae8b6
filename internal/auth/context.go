// Package auth holds the resolved identity of whoever is acting on a
// request. Use cases receive it explicitly; nothing reads it ambiently.
package auth

type Role string

const (
	RoleProvider Role = "provider"
	RoleConsumer Role = "consumer"
	RoleParent   Role = "parent"
)

type Context struct {
	UserID      string   `json:"user_id"`
	Role        Role     `json:"role"`
	ProviderID  string   `json:"provider_id,omitempty"`
	ConsumerIDs []string `json:"consumer_ids"`
}

// OwnsProvider reports whether the actor is the provider identified by id.
func (a Context) OwnsProvider(providerID string) bool {
	return a.Role == RoleProvider && a.ProviderID != "" && a.ProviderID == providerID
}

// ActsFor reports whether the actor may act as the given consumer, either
// as that consumer or through a delegated consumer id.
func (a Context) ActsFor(consumerID string) bool {
	if consumerID == "" {
		return false
	}
	for _, id := range a.ConsumerIDs {
		if id == consumerID {
			return true
		}
	}
	return false
}
