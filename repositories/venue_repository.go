package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Mutisya7/fixture-system/models"
	"github.com/google/uuid"
)

var ErrVenueNotFound = errors.New("venue not found")

type VenueRepository interface {
	Create(ctx context.Context, tournamentID string, venue *models.Venue) error
	ListByTournament(ctx context.Context, tournamentID string) ([]*models.Venue, error)
	Delete(ctx context.Context, id string) error
}

type postgresVenueRepository struct {
	db *sql.DB
}

func NewPostgresVenueRepository(db *sql.DB) VenueRepository {
	return &postgresVenueRepository{db: db}
}

func (r *postgresVenueRepository) Create(ctx context.Context, tournamentID string, venue *models.Venue) error {
	if venue.ID == "" {
		venue.ID = uuid.NewString()
	}
	if venue.PitchCount < 1 {
		venue.PitchCount = 1
	}

	query := `
		INSERT INTO venues (id, tournament_id, name, location, county, constituency, pitch_count, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		venue.ID,
		tournamentID,
		venue.Name,
		venue.Location,
		venue.County,
		venue.Constituency,
		venue.PitchCount,
		venue.Latitude,
		venue.Longitude,
	).Scan(&venue.CreatedAt)
}

func (r *postgresVenueRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*models.Venue, error) {
	query := `
		SELECT id, name, location, county, constituency, pitch_count, latitude, longitude, created_at
		FROM venues
		WHERE tournament_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]*models.Venue, 0)
	for rows.Next() {
		var venue models.Venue
		if err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.Location,
			&venue.County,
			&venue.Constituency,
			&venue.PitchCount,
			&venue.Latitude,
			&venue.Longitude,
			&venue.CreatedAt,
		); err != nil {
			return nil, err
		}
		venues = append(venues, &venue)
	}
	return venues, rows.Err()
}

func (r *postgresVenueRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrVenueNotFound)
}
