package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runGuard(t *testing.T, guard echo.MiddlewareFunc, decorate func(*http.Request)) (*httptest.ResponseRecorder, *entity.Identity) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.Identity
	next := func(c echo.Context) error {
		seen = deliverycontext.GetIdentity(c.Request().Context())

		return c.NoContent(http.StatusOK)
	}

	err := guard(next)(c)
	require.NoError(t, err)

	return rec, seen
}

func TestTokenIdentity_ValidToken(t *testing.T) {
	mockIssuer := mockSvc.NewMockTokenIssuer(t)
	m := NewAuthMiddleware(mockIssuer)

	identity := &entity.Identity{ID: uuid.New(), Email: "alice@example.com"}
	mockIssuer.EXPECT().
		Decode("signed.jwt.token").
		Return(identity, nil)

	rec, seen := runGuard(t, m.TokenIdentity, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer signed.jwt.token")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, identity.ID, seen.ID)
	assert.Equal(t, identity.Email, seen.Email)
}

func TestTokenIdentity_MissingHeader(t *testing.T) {
	mockIssuer := mockSvc.NewMockTokenIssuer(t)
	m := NewAuthMiddleware(mockIssuer)

	rec, seen := runGuard(t, m.TokenIdentity, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Caller identity is missing")
	assert.Nil(t, seen)
}

func TestTokenIdentity_NotBearer(t *testing.T) {
	mockIssuer := mockSvc.NewMockTokenIssuer(t)
	m := NewAuthMiddleware(mockIssuer)

	rec, seen := runGuard(t, m.TokenIdentity, func(req *http.Request) {
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestTokenIdentity_InvalidToken(t *testing.T) {
	mockIssuer := mockSvc.NewMockTokenIssuer(t)
	m := NewAuthMiddleware(mockIssuer)

	mockIssuer.EXPECT().
		Decode("tampered.token").
		Return(nil, errors.New("signature is invalid"))

	rec, seen := runGuard(t, m.TokenIdentity, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer tampered.token")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestHeaderIdentity_ValidHeader(t *testing.T) {
	mockIssuer := mockSvc.NewMockTokenIssuer(t)
	m := NewAuthMiddleware(mockIssuer)

	userID := uuid.New()
	rec, seen := runGuard(t, m.HeaderIdentity, func(req *http.Request) {
		req.Header.Set("X-User-Id", userID.String())
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, userID, seen.ID)
	assert.Empty(t, seen.Email, "header identity carries no email claim")
}

func TestHeaderIdentity_MissingHeader(t *testing.T) {
	mockIssuer := mockSvc.NewMockTokenIssuer(t)
	m := NewAuthMiddleware(mockIssuer)

	rec, seen := runGuard(t, m.HeaderIdentity, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Caller identity is missing")
	assert.Nil(t, seen)
}

func TestHeaderIdentity_MalformedHeader(t *testing.T) {
	mockIssuer := mockSvc.NewMockTokenIssuer(t)
	m := NewAuthMiddleware(mockIssuer)

	rec, seen := runGuard(t, m.HeaderIdentity, func(req *http.Request) {
		req.Header.Set("X-User-Id", "not-a-uuid")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}
