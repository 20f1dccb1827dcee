package auth

import (
	"math"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ClockSkewTolerance is how long past its expiry a token is still accepted.
const ClockSkewTolerance = 5 * time.Minute

const (
	claimID        = "jti"
	claimIssuedAt  = "iat"
	claimExpiresAt = "exp"
	claimNotBefore = "nbf"
)

var reservedClaims = map[string]struct{}{
	claimID:        {},
	claimIssuedAt:  {},
	claimExpiresAt: {},
	claimNotBefore: {},
}

// jwtCodec is a concrete implementation of the TokenCodec interface using HS256 JWTs.
type jwtCodec struct {
	secret []byte
	now    func() time.Time
}

// NewJWTCodec is the constructor for jwtCodec. Identity and intent tokens share the signing secret.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.SecretKey.Signing == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return newJWTCodec([]byte(cfg.SecretKey.Signing), time.Now), nil
}

func newJWTCodec(secret []byte, now func() time.Time) *jwtCodec {
	return &jwtCodec{
		secret: secret,
		now:    now,
	}
}

// Issue signs the claims together with a fresh token ID, the issue time and the expiry.
// The returned expiry is the one encoded in the token.
func (c *jwtCodec) Issue(claims map[string]string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		return "", time.Time{}, errors.Errorf("token ttl must be positive, got %s", ttl)
	}

	issuedAt := c.now().Truncate(time.Millisecond)
	expiresAt := issuedAt.Add(ttl).Truncate(time.Millisecond)

	mapClaims := make(jwt.MapClaims, len(claims)+3)
	for name, value := range claims {
		if _, reserved := reservedClaims[name]; reserved {
			return "", time.Time{}, errors.Errorf("claim %q is reserved", name)
		}
		mapClaims[name] = value
	}
	mapClaims[claimID] = uuid.NewString()
	mapClaims[claimIssuedAt] = toNumericDate(issuedAt)
	mapClaims[claimExpiresAt] = toNumericDate(expiresAt)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// Validate verifies signature and freshness and returns the issued claims unchanged.
// A token is expired only once now is strictly after exp plus ClockSkewTolerance.
func (c *jwtCodec) Validate(tokenString string) (*service.TokenClaims, error) {
	mapClaims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, mapClaims, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, classifyParseError(err)
	}

	claims, err := toTokenClaims(mapClaims)
	if err != nil {
		return nil, err
	}

	if c.now().After(claims.ExpiresAt.Add(ClockSkewTolerance)) {
		return nil, domainerrors.ErrTokenExpired.WrapMessage("token expired at " + claims.ExpiresAt.UTC().Format(time.RFC3339Nano))
	}

	return claims, nil
}

func (c *jwtCodec) keyFunc(token *jwt.Token) (any, error) {
	// Ensure the signing method is what we expect.
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return c.secret, nil
}

// classifyParseError maps jwt failures onto the token error taxonomy.
// Claims are not validated by the parser, so expiry never surfaces here.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domainerrors.ErrTokenMalformed.WrapMessage(err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domainerrors.ErrTokenSignatureInvalid.WrapMessage(err.Error())
	default:
		return domainerrors.ErrTokenMalformed.WrapMessage(err.Error())
	}
}

// toNumericDate encodes t as fractional seconds with millisecond precision.
func toNumericDate(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1e3
}

// fromNumericDate reads a numeric date at millisecond precision.
// jwt's own NumericDate parsing truncates to whole seconds.
func fromNumericDate(raw any) (time.Time, bool) {
	seconds, ok := raw.(float64)
	if !ok || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return time.Time{}, false
	}

	return time.UnixMilli(int64(math.Round(seconds * 1e3))), true
}

func toTokenClaims(mapClaims jwt.MapClaims) (*service.TokenClaims, error) {
	issuedAt, ok := fromNumericDate(mapClaims[claimIssuedAt])
	if !ok {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("missing or invalid iat")
	}

	expiresAt, ok := fromNumericDate(mapClaims[claimExpiresAt])
	if !ok {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("missing or invalid exp")
	}

	tokenID, ok := mapClaims[claimID].(string)
	if !ok || tokenID == "" {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("missing or invalid jti")
	}

	values := make(map[string]string, len(mapClaims))
	for name, raw := range mapClaims {
		if _, reserved := reservedClaims[name]; reserved {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			return nil, domainerrors.ErrTokenMalformed.WrapMessage("claim " + name + " is not a string")
		}
		values[name] = value
	}

	return &service.TokenClaims{
		Values:    values,
		ID:        tokenID,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}
