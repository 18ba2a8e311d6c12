package auth

import "context"

// JWTService defines operations for managing bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token carrying identity as its only claim.
	GenerateToken(ctx context.Context, identity string) (string, error)

	// ValidateToken verifies the signature of tokenString and extracts its claims.
	// Every failure is reported as ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of a token.
type Claims struct {
	// Identity is the decimal user ID the token was issued for.
	Identity string
}
