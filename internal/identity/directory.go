// Package identity resolves bearer credentials to user identities.
//
// The token scheme is deliberately plain: a token is the username itself,
// looked up verbatim in a fixed directory seeded at startup. There is no
// expiry, revocation, or signature verification. This is a documented
// simplification of the system, not a security model.
package identity

import (
	"strings"

	"ripple/internal/models"
)

// User is a resolved identity.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Provider resolves tokens and verifies credentials against a user directory.
type Provider interface {
	// Resolve maps a bearer token to an identity.
	Resolve(token string) (*User, error)
	// Verify checks a username/password pair and returns the identity on match.
	Verify(username, password string) (*User, error)
}

type directoryEntry struct {
	user     User
	password string
}

// Directory is a fixed in-memory Provider. Entries are immutable for the
// process lifetime; there is no signup.
type Directory struct {
	byUsername map[string]directoryEntry
}

// NewDirectory builds a Directory from a comma-separated config string of
// id:username:password triples.
// Example: "1:user1:password1,2:user2:password2"
// Malformed entries are skipped.
func NewDirectory(raw string) *Directory {
	byUsername := make(map[string]directoryEntry)

	for _, triple := range strings.Split(raw, ",") {
		triple = strings.TrimSpace(triple)
		if triple == "" {
			continue
		}
		parts := strings.SplitN(triple, ":", 3)
		if len(parts) != 3 {
			continue
		}
		id := strings.TrimSpace(parts[0])
		username := strings.TrimSpace(parts[1])
		password := parts[2]
		if id == "" || username == "" {
			continue
		}
		byUsername[username] = directoryEntry{
			user:     User{ID: id, Username: username},
			password: password,
		}
	}

	return &Directory{byUsername: byUsername}
}

// DefaultDirectorySpec is the seeded directory used when no USER_DIRECTORY is
// configured. Passwords are stored in plaintext; hashing is out of scope.
const DefaultDirectorySpec = "1:user1:password1,2:user2:password2"

// Resolve looks the token up verbatim as a username.
func (d *Directory) Resolve(token string) (*User, error) {
	entry, ok := d.byUsername[token]
	if !ok {
		return nil, models.NewUnauthorizedError("Invalid token")
	}
	user := entry.user
	return &user, nil
}

// Verify compares the password in plaintext against the directory entry.
func (d *Directory) Verify(username, password string) (*User, error) {
	entry, ok := d.byUsername[username]
	if !ok || entry.password != password {
		return nil, models.NewUnauthorizedError("Incorrect username or password")
	}
	user := entry.user
	return &user, nil
}

// Len returns the number of seeded users.
func (d *Directory) Len() int {
	return len(d.byUsername)
}

// Users returns the seeded identities, in no particular order.
func (d *Directory) Users() []User {
	out := make([]User, 0, len(d.byUsername))
	for _, entry := range d.byUsername {
		out = append(out, entry.user)
	}
	return out
}
