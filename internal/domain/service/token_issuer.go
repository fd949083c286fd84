package service

import "storefront/internal/domain/entity"

// TokenIssuer defines the interface for minting and decoding the bearer
// tokens handed out at login. Tokens are stateless: the signed claims are
// the only record of the identity they carry.
type TokenIssuer interface {
	// Issue serializes the identity into a signed token.
	Issue(identity *entity.Identity) (string, error)

	// Decode validates a token string and recovers the identity it was
	// issued for. Used only by the request guard layer; everything
	// downstream re-reads the identity the guard attached to the context.
	Decode(token string) (*entity.Identity, error)
}
