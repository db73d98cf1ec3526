// Package auth implements the admin credential check gating every
// mutating and administrative endpoint. Credentials are supplied from
// the environment, never embedded in source, and every comparison runs
// in constant time.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"github.com/thedrumepic/med/pkg/logger"
)

// ErrUnauthorized is returned for any failed credential check. It
// deliberately carries no detail beyond "incorrect credentials".
var ErrUnauthorized = errors.New("incorrect credentials")

// Config carries the credential material for the guard. PasswordHash is
// the hex-encoded SHA-256 of salt+password.
type Config struct {
	Username     string
	PasswordHash string
	Salt         string
}

// Guard verifies admin credentials. A zero or misconfigured Guard denies
// every request.
type Guard struct {
	username     []byte
	passwordHash []byte
	salt         string
	configured   bool
	logger       *logger.Logger
}

// NewGuard builds a guard from precomputed credential material.
func NewGuard(cfg Config, log *logger.Logger) *Guard {
	g := &Guard{
		logger: log.WithComponent("auth_guard"),
	}

	hash, err := hex.DecodeString(cfg.PasswordHash)
	if cfg.Username == "" || cfg.PasswordHash == "" || err != nil || len(hash) != sha256.Size {
		g.logger.Error("Admin credentials are missing or malformed; all admin requests will be rejected")
		return g
	}

	g.username = []byte(cfg.Username)
	g.passwordHash = hash
	g.salt = cfg.Salt
	g.configured = true
	return g
}

// NewGuardFromPassword derives the stored hash from a plain password.
// Intended for development setups where only ADMIN_PASSWORD is set.
func NewGuardFromPassword(username, password, salt string, log *logger.Logger) *Guard {
	return NewGuard(Config{
		Username:     username,
		PasswordHash: HashPassword(salt, password),
		Salt:         salt,
	}, log)
}

// HashPassword returns the hex-encoded SHA-256 of salt+password, the
// format expected in ADMIN_PASSWORD_HASH.
func HashPassword(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

// Verify checks the supplied credentials against the configured admin
// identity. Both comparisons always run so timing does not reveal which
// part failed.
func (g *Guard) Verify(username, password string) error {
	candidate := sha256.Sum256([]byte(g.salt + password))

	userOK := subtle.ConstantTimeCompare([]byte(username), g.username)
	passOK := subtle.ConstantTimeCompare(candidate[:], g.passwordHash)

	if !g.configured || userOK&passOK != 1 {
		return ErrUnauthorized
	}
	return nil
}
