package services

import "errors"

// Shared service errors, mapped to HTTP statuses in the handlers package.
var (
	ErrNotFound = errors.New("requested resource not found")

	ErrTournamentNotFound   = errors.New("tournament not found")
	ErrTournamentNameNeeded = errors.New("tournament name is required")
	ErrInvalidFormat        = errors.New("invalid tournament format")
	ErrInvalidDateRange     = errors.New("tournament end date must not be before start date")
	ErrNoTeamsRegistered    = errors.New("no teams registered for tournament")
	ErrFixturesNotGenerated = errors.New("fixtures have not been generated for this tournament")
)
