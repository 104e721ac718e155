package domain

import "context"

// SessionProvider mints and remembers opaque anonymous session
// identifiers. It is the pseudo-identity behind likes and bookmarks,
// distinct from any authenticated user identity.
type SessionProvider interface {
	// Ensure returns id unchanged when it is already known. When id is
	// empty or unknown it mints a new identifier, records it, and
	// returns it. Minting never fails: if the backing store is
	// unavailable the fresh identifier is still returned and only kept
	// in memory for the lifetime of the process.
	Ensure(ctx context.Context, id string) (string, error)

	// Known reports whether the identifier has been seen before.
	Known(ctx context.Context, id string) (bool, error)
}
