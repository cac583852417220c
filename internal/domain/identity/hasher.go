package identity

// PasswordHasher abstracts the hashing scheme so the domain never depends on
// a concrete crypto implementation.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
