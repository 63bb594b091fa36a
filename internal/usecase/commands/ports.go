package commands

import (
	"context"
)

// NotificationTypeDogReceived tags the write-once in-app notification emitted
// when ownership of an animal lands on an account.
const NotificationTypeDogReceived = "dog_received"

// ClaimInvite is the payload handed to the Notifier for a deferred transfer.
type ClaimInvite struct {
	AnimalName     string
	AnimalPhotoURL *string
	ClaimToken     string
	ExpiresInDays  int
}

// Mailer is the outbound notifier. Delivery is best-effort: callers never
// block on it and never roll back on its failure, since the claim token can
// always be reconstructed and resent out-of-band.
type Mailer interface {
	SendClaimInvite(ctx context.Context, recipientEmail string, invite ClaimInvite) error
}
