package usecases

// TokenIssuer signs access tokens for authenticated users. It returns the
// signed token together with its lifetime in seconds.
type TokenIssuer interface {
	Generate(userID uint, email string, roles []string) (string, int64, error)
}
