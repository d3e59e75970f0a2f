package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes and verifies account passwords.
// Hashes are self-describing bcrypt strings, so the cost can be raised
// later without invalidating stored hashes.
type PasswordHasher interface {
	// Hash returns the bcrypt hash of password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// [ErrPasswordMismatch] otherwise.
	Compare(hash, password string) error

	// GeneratePassword returns a random password of length characters
	// drawn from an unambiguous alphabet.
	GeneratePassword(length int) (string, error)
}
