package bot

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Built-in command keywords. These are reserved at registry load time so a
// slot cannot shadow them.
const (
	// CommandAuth authorizes the sender as an admin ("auth <password>",
	// direct messages only)
	CommandAuth = "auth"

	// CommandQuit shuts the bot down (authorized senders only)
	CommandQuit = "quit"
)

// ReservedCommands returns the command keywords slots may not use.
func ReservedCommands() []string {
	return []string{CommandAuth, CommandQuit}
}

// Authorization errors
var (
	// ErrAuthDisabled is returned when no admin password hash is configured.
	ErrAuthDisabled = errors.New("bot: admin authorization is disabled")

	// ErrAlreadyAuthorized is returned when the sender is already an admin.
	ErrAlreadyAuthorized = errors.New("bot: sender is already authorized")

	// ErrBadPassword is returned when the supplied password does not match.
	ErrBadPassword = errors.New("bot: password does not match")
)

// Authorizer verifies admin passwords against a bcrypt hash and remembers
// which senders have authorized. Safe for concurrent use.
type Authorizer struct {
	mu   sync.RWMutex
	hash string
	ids  map[string]struct{}
}

// NewAuthorizer creates an Authorizer from a bcrypt password hash.
// An empty hash disables admin authorization entirely.
func NewAuthorizer(passwordHash string) *Authorizer {
	return &Authorizer{
		hash: passwordHash,
		ids:  make(map[string]struct{}),
	}
}

// Enabled reports whether admin authorization is configured.
func (a *Authorizer) Enabled() bool {
	return a.hash != ""
}

// IsAuthorized reports whether the sender has previously authorized.
func (a *Authorizer) IsAuthorized(senderID string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.ids[senderID]
	return ok
}

// Authorize verifies the password and records the sender as an admin.
// Comparison is constant-time via bcrypt.
func (a *Authorizer) Authorize(senderID, password string) error {
	if !a.Enabled() {
		return ErrAuthDisabled
	}
	if a.IsAuthorized(senderID) {
		return ErrAlreadyAuthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.hash), []byte(password)); err != nil {
		return ErrBadPassword
	}

	a.mu.Lock()
	a.ids[senderID] = struct{}{}
	a.mu.Unlock()
	return nil
}

// AuthorizedCount returns the number of authorized senders.
func (a *Authorizer) AuthorizedCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.ids)
}
