package auth

import "context"

// TokenGenerator abstracts token creation (e.g. JWT) so the use case stays
// framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}
