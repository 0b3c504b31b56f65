package service

// SecretHasher hashes api secrets.
type SecretHasher interface {
	Hash(secret string) (string, error)
	Check(secret, hash string) bool
}
