package auth

import (
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuerConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTIssuer_MissingSecret(t *testing.T) {
	issuer, err := NewJWTIssuer(issuerConfig(""))
	assert.Error(t, err)
	assert.Nil(t, issuer)
}

func TestJWTIssuer_IssueAndDecode(t *testing.T) {
	issuer, err := NewJWTIssuer(issuerConfig("test-secret"))
	require.NoError(t, err)

	identity := &entity.Identity{
		ID:    uuid.New(),
		Email: "alice@example.com",
	}

	token, err := issuer.Issue(identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := issuer.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, decoded.ID)
	assert.Equal(t, identity.Email, decoded.Email)
}

func TestJWTIssuer_ClaimsShape(t *testing.T) {
	issuer, err := NewJWTIssuer(issuerConfig("test-secret"))
	require.NoError(t, err)

	identity := &entity.Identity{ID: uuid.New(), Email: "bob@example.com"}

	tokenString, err := issuer.Issue(identity)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, identity.ID.String(), claims["sub"])
	assert.Equal(t, "bob@example.com", claims["email"])
	assert.Contains(t, claims, "iat")
	assert.Contains(t, claims, "exp")

	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)
	assert.Equal(t, accessTTL.Seconds(), exp-iat)
}

func TestJWTIssuer_DecodeRejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTIssuer(issuerConfig("secret-one"))
	require.NoError(t, err)
	otherIssuer, err := NewJWTIssuer(issuerConfig("secret-two"))
	require.NoError(t, err)

	token, err := issuer.Issue(&entity.Identity{ID: uuid.New()})
	require.NoError(t, err)

	decoded, err := otherIssuer.Decode(token)
	assert.Error(t, err)
	assert.Nil(t, decoded)
}

func TestJWTIssuer_DecodeRejectsGarbage(t *testing.T) {
	issuer, err := NewJWTIssuer(issuerConfig("test-secret"))
	require.NoError(t, err)

	decoded, err := issuer.Decode("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, decoded)
}

func TestJWTIssuer_DecodeRejectsUnsignedToken(t *testing.T) {
	issuer, err := NewJWTIssuer(issuerConfig("test-secret"))
	require.NoError(t, err)

	// alg=none must never pass the HMAC method check.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	decoded, err := issuer.Decode(tokenString)
	assert.Error(t, err)
	assert.Nil(t, decoded)
}
