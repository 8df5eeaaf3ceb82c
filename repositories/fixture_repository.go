package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Mutisya7/fixture-system/models"
	"github.com/google/uuid"
)

var ErrFixturesNotFound = errors.New("no fixtures found for tournament")

type FixtureRepository interface {
	// ReplaceForTournament deletes any previous generation for the tournament
	// and stores the new one. It runs on the provided executor so the caller
	// can wrap the whole swap in a transaction.
	ReplaceForTournament(ctx context.Context, exec SQLExecutor, tournamentID string, fixtures []*models.ScheduledMatch, conflicts []*models.FixtureConflict) error
	ListByTournament(ctx context.Context, tournamentID string) ([]*models.ScheduledMatch, error)
	ListConflicts(ctx context.Context, tournamentID string) ([]*models.FixtureConflict, error)
}

type postgresFixtureRepository struct {
	db *sql.DB
}

func NewPostgresFixtureRepository(db *sql.DB) FixtureRepository {
	return &postgresFixtureRepository{db: db}
}

func (r *postgresFixtureRepository) ReplaceForTournament(ctx context.Context, exec SQLExecutor, tournamentID string, fixtures []*models.ScheduledMatch, conflicts []*models.FixtureConflict) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM fixture_conflicts WHERE tournament_id = $1`, tournamentID); err != nil {
		return err
	}
	if _, err := exec.ExecContext(ctx, `DELETE FROM fixtures WHERE tournament_id = $1`, tournamentID); err != nil {
		return err
	}

	insertFixture := `
		INSERT INTO fixtures
			(id, tournament_id, group_id, round, leg, home_team_id, away_team_id, venue_id, kickoff, status, cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	for _, fixture := range fixtures {
		var venueID *string
		if fixture.Venue != nil {
			venueID = &fixture.Venue.ID
		}
		if _, err := exec.ExecContext(ctx, insertFixture,
			fixture.ID,
			tournamentID,
			fixture.GroupID,
			fixture.Round,
			fixture.Leg,
			fixture.HomeTeam.ID,
			fixture.AwayTeam.ID,
			venueID,
			fixture.Kickoff,
			fixture.Status,
			fixture.Cost,
		); err != nil {
			return err
		}
	}

	insertConflict := `
		INSERT INTO fixture_conflicts (id, tournament_id, type, severity, message, fixture_id)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, conflict := range conflicts {
		if _, err := exec.ExecContext(ctx, insertConflict,
			uuid.NewString(),
			tournamentID,
			conflict.Type,
			conflict.Severity,
			conflict.Message,
			conflict.FixtureID,
		); err != nil {
			return err
		}
	}

	return nil
}

func (r *postgresFixtureRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*models.ScheduledMatch, error) {
	query := `
		SELECT f.id, f.group_id, f.round, f.leg, f.status, f.cost, f.kickoff,
		       h.id, h.name, h.county,
		       a.id, a.name, a.county,
		       v.id, v.name, v.location, v.county, v.pitch_count
		FROM fixtures f
		JOIN teams h ON h.id = f.home_team_id
		JOIN teams a ON a.id = f.away_team_id
		LEFT JOIN venues v ON v.id = f.venue_id
		WHERE f.tournament_id = $1
		ORDER BY f.round ASC, f.id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fixtures := make([]*models.ScheduledMatch, 0)
	for rows.Next() {
		var (
			match      models.ScheduledMatch
			home, away models.Team
			kickoff    sql.NullTime
			venueID    sql.NullString
			venueName  sql.NullString
			venueLoc   sql.NullString
			venueCnty  sql.NullString
			pitchCount sql.NullInt64
		)
		if err := rows.Scan(
			&match.ID, &match.GroupID, &match.Round, &match.Leg, &match.Status, &match.Cost, &kickoff,
			&home.ID, &home.Name, &home.County,
			&away.ID, &away.Name, &away.County,
			&venueID, &venueName, &venueLoc, &venueCnty, &pitchCount,
		); err != nil {
			return nil, err
		}
		match.HomeTeam = &home
		match.AwayTeam = &away
		if kickoff.Valid {
			t := kickoff.Time
			match.Kickoff = &t
		}
		if venueID.Valid {
			match.Venue = &models.Venue{
				ID:         venueID.String,
				Name:       venueName.String,
				Location:   venueLoc.String,
				County:     venueCnty.String,
				PitchCount: int(pitchCount.Int64),
			}
		}
		fixtures = append(fixtures, &match)
	}
	return fixtures, rows.Err()
}

func (r *postgresFixtureRepository) ListConflicts(ctx context.Context, tournamentID string) ([]*models.FixtureConflict, error) {
	query := `
		SELECT type, severity, message, fixture_id
		FROM fixture_conflicts
		WHERE tournament_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conflicts := make([]*models.FixtureConflict, 0)
	for rows.Next() {
		var conflict models.FixtureConflict
		if err := rows.Scan(&conflict.Type, &conflict.Severity, &conflict.Message, &conflict.FixtureID); err != nil {
			return nil, err
		}
		conflicts = append(conflicts, &conflict)
	}
	return conflicts, rows.Err()
}
