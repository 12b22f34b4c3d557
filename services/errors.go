package services

import "errors"

// Error taxonomy surfaced to users. Service errors wrap one of these with
// context, so callers match them with errors.Is.
var (
	// Player count, capacity, tournament key or phase does not allow the operation.
	ErrInvalidConfiguration = errors.New("invalid tournament configuration")
	// A participant or tournament with the same name already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")
	// The submitted score does not satisfy the win condition.
	ErrInvalidResult = errors.New("invalid result")
	// The tournament or match does not exist.
	ErrNotFound = errors.New("requested resource not found")
	// The store rejected a read or write; nothing was committed.
	ErrPersistenceFailure = errors.New("persistence failure")
)

var (
	ErrTournamentKeyInvalid  = errors.New("tournament key must be 1-64 letters, digits, '-' or '_'")
	ErrPlayerNameRequired    = errors.New("player name is required")
	ErrRegistrationClosed    = errors.New("registration is closed once the groups are drawn")
	ErrTournamentFull        = errors.New("tournament registration is full")
	ErrTournamentStarted     = errors.New("tournament has already started")
	ErrNotEnoughPlayers      = errors.New("at least four players are required")
	ErrOddPlayerCount        = errors.New("player count must be even")
	ErrMaxPlayersInvalid     = errors.New("max players must be an even number of at least four")
	ErrMatchNotFound         = errors.New("match not found")
	ErrTournamentNotFound    = errors.New("tournament not found")
	ErrTournamentKeyConflict = errors.New("tournament key already exists")
	ErrPlayerNameConflict    = errors.New("player is already registered")
)
