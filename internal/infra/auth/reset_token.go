package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const resetDateLayout = "2006-01-02"

// hmacResetDeriver derives reset tokens from (subject id, email, UTC date) with its own secret.
// Nothing is stored: a token stays valid until the UTC date changes.
type hmacResetDeriver struct {
	secret []byte
	now    func() time.Time
}

// NewResetTokenDeriver is the constructor for hmacResetDeriver.
func NewResetTokenDeriver(cfg *config.Config) (service.ResetTokenDeriver, error) {
	if cfg.SecretKey.Reset == "" {
		return nil, errors.New("reset secret must be provided")
	}

	return newResetDeriver([]byte(cfg.SecretKey.Reset), time.Now), nil
}

func newResetDeriver(secret []byte, now func() time.Time) *hmacResetDeriver {
	return &hmacResetDeriver{
		secret: secret,
		now:    now,
	}
}

// Derive returns base64(HMAC-SHA256(secret, "id:email:date")) for today's UTC date.
func (d *hmacResetDeriver) Derive(subjectID int64, email string) string {
	return base64.StdEncoding.EncodeToString(d.mac(subjectID, email, d.now()))
}

// Matches compares the presented token with today's value in constant time.
func (d *hmacResetDeriver) Matches(subjectID int64, email, presented string) bool {
	expected := d.Derive(subjectID, email)

	return hmac.Equal([]byte(expected), []byte(presented))
}

// ValidUntil returns the next UTC midnight, when tokens derived now stop matching.
func (d *hmacResetDeriver) ValidUntil() time.Time {
	return endOfUTCDay(d.now())
}

func endOfUTCDay(t time.Time) time.Time {
	day := t.UTC()

	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}

func (d *hmacResetDeriver) mac(subjectID int64, email string, at time.Time) []byte {
	data := strconv.FormatInt(subjectID, 10) + ":" + email + ":" + at.UTC().Format(resetDateLayout)

	mac := hmac.New(sha256.New, d.secret)
	mac.Write([]byte(data))

	return mac.Sum(nil)
}
