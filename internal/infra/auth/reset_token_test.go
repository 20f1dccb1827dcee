package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetDeriver_DeterministicWithinDay(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 0, 0, 1, 0, time.UTC)}
	deriver := newResetDeriver([]byte("reset-secret"), clock.Now)

	morning := deriver.Derive(1, "a@x.com")

	clock.now = time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)
	evening := deriver.Derive(1, "a@x.com")

	assert.Equal(t, morning, evening)
	assert.True(t, deriver.Matches(1, "a@x.com", morning))
}

func TestResetDeriver_ChangesWhenDateRollsOver(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)}
	deriver := newResetDeriver([]byte("reset-secret"), clock.Now)

	today := deriver.Derive(1, "a@x.com")

	clock.now = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	tomorrow := deriver.Derive(1, "a@x.com")

	assert.NotEqual(t, today, tomorrow)
	assert.False(t, deriver.Matches(1, "a@x.com", today))
}

func TestResetDeriver_UsesUTCDate(t *testing.T) {
	// 2026-03-01 23:30 in UTC-5 is already 2026-03-02 in UTC.
	local := time.FixedZone("UTC-5", -5*60*60)
	clock := &fakeClock{now: time.Date(2026, 3, 1, 23, 30, 0, 0, local)}
	deriver := newResetDeriver([]byte("reset-secret"), clock.Now)

	fromLocal := deriver.Derive(1, "a@x.com")

	clock.now = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, fromLocal, deriver.Derive(1, "a@x.com"))
}

func TestResetDeriver_BoundToInputsAndSecret(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	deriver := newResetDeriver([]byte("reset-secret"), clock.Now)
	other := newResetDeriver([]byte("other-secret"), clock.Now)

	token := deriver.Derive(1, "a@x.com")

	assert.False(t, deriver.Matches(2, "a@x.com", token))
	assert.False(t, deriver.Matches(1, "b@x.com", token))
	assert.False(t, deriver.Matches(1, "a@x.com", ""))
	assert.NotEqual(t, token, other.Derive(1, "a@x.com"))
}

func TestValidUntil(t *testing.T) {
	at := time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)
	deriver := newResetDeriver([]byte("reset-secret"), func() time.Time { return at })
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), deriver.ValidUntil())

	// 23:30 at UTC-2 is already the next UTC day.
	late := time.Date(2026, 3, 1, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*60*60))
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), endOfUTCDay(late))
}

func TestNewResetTokenDeriver_RequiresSecret(t *testing.T) {
	_, err := NewResetTokenDeriver(&config.Config{})
	require.Error(t, err)

	cfg := &config.Config{}
	cfg.SecretKey.Reset = "reset-secret"
	deriver, err := NewResetTokenDeriver(cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, deriver.Derive(1, "a@x.com"))
}
