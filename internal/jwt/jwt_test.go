package jwt

import (
	"encoding/base64"
	"strconv"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const week = 7 * 24 * time.Hour

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func newService(t *testing.T, secret string) (*JWTService, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc, err := NewJWTService(secret, week, WithClock(clock.Now))
	require.NoError(t, err)
	return svc, clock
}

func TestGenerateAndValidate_Success(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, "super-secret")

	tok, err := svc.GenerateToken(42)
	require.NoError(t, err)

	userID, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestGenerateToken_ExpiresAfterSevenDays(t *testing.T) {
	t.Parallel()
	svc, clock := newService(t, "super-secret")

	tok, err := svc.GenerateToken(7)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = gojwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)

	assert.Equal(t, clock.t, claims.IssuedAt.Time.UTC())
	assert.Equal(t, clock.t.Add(week), claims.ExpiresAt.Time.UTC())
}

func TestValidateToken_Expiry(t *testing.T) {
	t.Parallel()
	svc, clock := newService(t, "secret")

	tok, err := svc.GenerateToken(1)
	require.NoError(t, err)
	issued := clock.t

	clock.t = issued.Add(week - time.Second)
	_, err = svc.ValidateToken(tok)
	require.NoError(t, err)

	clock.t = issued.Add(week + time.Second)
	_, err = svc.ValidateToken(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()
	issuer, _ := newService(t, "right-secret")
	verifier, _ := newService(t, "wrong-secret")

	tok, err := issuer.GenerateToken(2)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(tok)
	require.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestValidateToken_TamperedPayload(t *testing.T) {
	t.Parallel()
	svc, clock := newService(t, "secret")

	tok, err := svc.GenerateToken(3)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	forged := `{"userId":1,"exp":` + strconv.FormatInt(clock.t.Add(week).Unix(), 10) + `}`
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(forged))

	userID, err := svc.ValidateToken(strings.Join(parts, "."))
	require.ErrorIs(t, err, ErrTokenSignatureInvalid)
	assert.Zero(t, userID)
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, "secret")

	tok, err := svc.GenerateToken(3)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	parts[2] = base64.RawURLEncoding.EncodeToString([]byte("not-the-signature"))

	_, err = svc.ValidateToken(strings.Join(parts, "."))
	require.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, "k")

	for _, tok := range []string{"", "abc", "not.a.jwt", "a.b"} {
		_, err := svc.ValidateToken(tok)
		require.ErrorIs(t, err, ErrTokenMalformed, "token %q", tok)
	}
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()
	svc, clock := newService(t, "secret")

	claims := Claims{
		UserID: 5,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(clock.t.Add(time.Hour)),
		},
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(tok)
	require.Error(t, err)
}

func TestValidateToken_MissingSubject(t *testing.T) {
	t.Parallel()
	svc, clock := newService(t, "secret")

	claims := Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(clock.t.Add(time.Hour)),
		},
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(tok)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_MissingExpiry(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, "secret")

	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{UserID: 9}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(tok)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService("", week)
	require.ErrorIs(t, err, ErrMissingSecret)
}
