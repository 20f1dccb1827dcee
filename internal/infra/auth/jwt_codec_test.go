package auth

import (
	"strings"
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningSecret = "test_signing_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestCodec(clock *fakeClock) *jwtCodec {
	return newJWTCodec([]byte(testSigningSecret), clock.Now)
}

func TestJWTCodec_IssueAndValidate(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(clock)

	claims := map[string]string{
		"UserId":      "7",
		"OldPassword": "A",
		"NewPassword": "B",
	}

	token, expiresAt, err := codec.Issue(claims, 30*time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, clock.now.Add(30*time.Minute).Equal(expiresAt))

	got, err := codec.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, claims, got.Values)
	assert.NotEmpty(t, got.ID)
	assert.True(t, clock.now.Equal(got.IssuedAt), "issued at %s", got.IssuedAt)
	assert.True(t, expiresAt.Equal(got.ExpiresAt), "expires at %s", got.ExpiresAt)
}

func TestJWTCodec_IssueIsNotDeterministic(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(clock)

	claims := map[string]string{"UserId": "7"}

	first, _, err := codec.Issue(claims, time.Minute)
	require.NoError(t, err)
	second, _, err := codec.Issue(claims, time.Minute)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTCodec_IssueRejectsInvalidInput(t *testing.T) {
	codec := newTestCodec(&fakeClock{now: time.Now()})

	_, _, err := codec.Issue(map[string]string{"UserId": "7"}, 0)
	assert.Error(t, err)

	_, _, err = codec.Issue(map[string]string{"exp": "never"}, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")
}

func TestJWTCodec_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 700*int(time.Millisecond), time.UTC)
	clock := &fakeClock{now: issuedAt}
	codec := newTestCodec(clock)

	token, expiresAt, err := codec.Issue(map[string]string{"UserId": "7"}, 30*time.Minute)
	require.NoError(t, err)
	require.True(t, issuedAt.Add(30*time.Minute).Equal(expiresAt), "expires at %s", expiresAt)

	deadline := expiresAt.Add(ClockSkewTolerance)

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{name: "before expiry", now: expiresAt.Add(-time.Second)},
		{name: "inside tolerance", now: expiresAt.Add(time.Minute)},
		{name: "one millisecond before deadline", now: deadline.Add(-time.Millisecond)},
		{name: "at deadline", now: deadline},
		{name: "one millisecond past deadline", now: deadline.Add(time.Millisecond), expired: true},
		{name: "long past deadline", now: deadline.Add(time.Hour), expired: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.now = tt.now

			claims, err := codec.Validate(token)
			if tt.expired {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))

				return
			}
			require.NoError(t, err)
			assert.True(t, expiresAt.Equal(claims.ExpiresAt))
		})
	}
}

func TestJWTCodec_SubMillisecondIssueTime(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	clock := &fakeClock{now: issuedAt}
	codec := newTestCodec(clock)

	token, expiresAt, err := codec.Issue(map[string]string{"UserId": "7"}, time.Minute)
	require.NoError(t, err)
	assert.True(t, time.Date(2026, 3, 1, 12, 1, 0, 123000000, time.UTC).Equal(expiresAt), "expires at %s", expiresAt)

	clock.now = expiresAt.Add(ClockSkewTolerance)
	claims, err := codec.Validate(token)
	require.NoError(t, err)
	assert.True(t, expiresAt.Equal(claims.ExpiresAt))
}

func TestJWTCodec_AcceptsWholeSecondDates(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	codec := newTestCodec(&fakeClock{now: now})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"UserId": "7",
		"jti":    "id",
		"iat":    now.Unix(),
		"exp":    now.Add(time.Minute).Unix(),
	}).SignedString([]byte(testSigningSecret))
	require.NoError(t, err)

	claims, err := codec.Validate(token)
	require.NoError(t, err)
	assert.True(t, now.Add(time.Minute).Equal(claims.ExpiresAt))
	assert.Equal(t, map[string]string{"UserId": "7"}, claims.Values)
}

func TestJWTCodec_MissingExpiry(t *testing.T) {
	codec := newTestCodec(&fakeClock{now: time.Now()})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"UserId": "7",
		"jti":    "id",
		"iat":    time.Now().Unix(),
	}).SignedString([]byte(testSigningSecret))
	require.NoError(t, err)

	_, err = codec.Validate(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestJWTCodec_TamperedSignature(t *testing.T) {
	codec := newTestCodec(&fakeClock{now: time.Now()})

	token, _, err := codec.Issue(map[string]string{"UserId": "7"}, time.Minute)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	signature := []byte(parts[2])
	if signature[0] == 'A' {
		signature[0] = 'B'
	} else {
		signature[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(signature)

	_, err = codec.Validate(tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenSignatureInvalid) || errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestJWTCodec_WrongSecret(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	issuer := newJWTCodec([]byte("another_secret_key_that_is_long_enough"), clock.Now)
	codec := newTestCodec(clock)

	token, _, err := issuer.Issue(map[string]string{"UserId": "7"}, time.Minute)
	require.NoError(t, err)

	_, err = codec.Validate(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenSignatureInvalid))
}

func TestJWTCodec_Malformed(t *testing.T) {
	codec := newTestCodec(&fakeClock{now: time.Now()})

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c", "...."} {
		_, err := codec.Validate(token)
		require.Error(t, err, token)
		assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed), token)
	}
}

func TestJWTCodec_RejectsOtherAlgorithms(t *testing.T) {
	codec := newTestCodec(&fakeClock{now: time.Now()})

	claims := jwt.MapClaims{
		"UserId": "7",
		"jti":    "id",
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Minute).Unix(),
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSigningSecret))
	require.NoError(t, err)
	_, err = codec.Validate(hs512)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenSignatureInvalid))

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = codec.Validate(none)
	assert.Error(t, err)
}

func TestJWTCodec_RejectsNonStringClaims(t *testing.T) {
	codec := newTestCodec(&fakeClock{now: time.Now()})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"UserId": 7,
		"jti":    "id",
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte(testSigningSecret))
	require.NoError(t, err)

	_, err = codec.Validate(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestNewJWTCodec_EmptySecret(t *testing.T) {
	codec, err := NewJWTCodec(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, codec)
	assert.Contains(t, err.Error(), "jwt signing secret must be provided")
}
