package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thedrumepic/med/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})
}

func TestGuardVerify(t *testing.T) {
	salt := "test-salt"
	guard := NewGuard(Config{
		Username:     "keeper",
		PasswordHash: HashPassword(salt, "hive-pass"),
		Salt:         salt,
	}, testLogger())

	require.NoError(t, guard.Verify("keeper", "hive-pass"))

	assert.ErrorIs(t, guard.Verify("keeper", "wrong"), ErrUnauthorized)
	assert.ErrorIs(t, guard.Verify("wrong", "hive-pass"), ErrUnauthorized)
	assert.ErrorIs(t, guard.Verify("", ""), ErrUnauthorized)
}

func TestGuardFromPassword(t *testing.T) {
	guard := NewGuardFromPassword("keeper", "hive-pass", "s", testLogger())

	assert.NoError(t, guard.Verify("keeper", "hive-pass"))
	assert.ErrorIs(t, guard.Verify("keeper", "hive-pass2"), ErrUnauthorized)
}

func TestUnconfiguredGuardDeniesEverything(t *testing.T) {
	cases := []Config{
		{},
		{Username: "keeper"},
		{Username: "keeper", PasswordHash: "not-hex"},
		{Username: "keeper", PasswordHash: "abcd"}, // too short for SHA-256
	}

	for _, cfg := range cases {
		guard := NewGuard(cfg, testLogger())
		assert.ErrorIs(t, guard.Verify("keeper", "anything"), ErrUnauthorized)
		assert.ErrorIs(t, guard.Verify("", ""), ErrUnauthorized)
	}
}

func TestHashPasswordIsSaltSensitive(t *testing.T) {
	assert.NotEqual(t, HashPassword("a", "pass"), HashPassword("b", "pass"))
	assert.Len(t, HashPassword("a", "pass"), 64)
}
