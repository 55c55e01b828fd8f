package model

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/synacor/argon2id"
)

const maxNameLength = 40

// ErrInvalidNameOrPassword is returned when a known name is used with the wrong password
var ErrInvalidNameOrPassword = UserError("invalid name and/or password")

// ErrInvalidName is returned for names that cannot be displayed at the table
var ErrInvalidName = UserError("name must be 1-40 letters, digits or spaces")

// ErrEmptyPassword is returned when registering without a password
var ErrEmptyPassword = UserError("password must not be empty")

var validName = regexp.MustCompile(`^[\p{L}\p{N} ]+$`)

// Player is a registered identity
type Player struct {
	Name    string    `json:"name"`
	Created time.Time `json:"created"`

	passwordHash string
}

// ValidatePassword will validate a user's password
// Returns nil if the password is valid
func (p *Player) ValidatePassword(password string) error {
	if err := argon2id.Compare(p.passwordHash, password); err != nil {
		return ErrInvalidNameOrPassword
	}

	return nil
}

// SetPassword will set a new password on the player instance
func (p *Player) SetPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	newHash, err := argon2id.DefaultHashPassword(password)
	if err != nil {
		return err
	}

	p.passwordHash = newHash
	return nil
}

// Store maps names to password hashes for the lifetime of the process
type Store struct {
	mu      sync.Mutex
	players map[string]*Player
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{
		players: make(map[string]*Player),
	}
}

// ValidateName checks that name can be used at the table
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" || len([]rune(name)) > maxNameLength || !validName.MatchString(name) {
		return ErrInvalidName
	}

	return nil
}

// Authenticate returns the player for name
// An unknown name is registered with password, a known name must match its password
func (s *Store) Authenticate(name, password string) (*Player, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if player, found := s.players[name]; found {
		if err := player.ValidatePassword(password); err != nil {
			return nil, err
		}

		return player, nil
	}

	player := &Player{
		Name:    name,
		Created: time.Now(),
	}

	if err := player.SetPassword(password); err != nil {
		return nil, err
	}

	s.players[name] = player
	return player, nil
}
