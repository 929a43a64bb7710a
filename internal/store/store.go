package store

import "context"

// Persisted state layout. Every value is a JSON blob except the currency
// preference, which is a bare currency code.
const (
	UsersKey       = "users"
	CurrentUserKey = "current_user"
)

// PasswordKey returns the key holding a user's credential hash.
func PasswordKey(userID string) string {
	return "password_" + userID
}

// DataKey returns the key holding a user's financial aggregate.
func DataKey(userID string) string {
	return "data_" + userID
}

// CurrencyKey returns the key holding a user's currency preference.
func CurrencyKey(userID string) string {
	return "currency_" + userID
}

// Store is a key-value repository for per-user blobs. Implementations must
// make Set atomic at the granularity of one call; the services layer handles
// read-modify-write serialization above it.
type Store interface {
	// Get returns the value for key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Keys lists all stored keys with the given prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
