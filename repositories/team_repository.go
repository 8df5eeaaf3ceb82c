package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Mutisya7/fixture-system/models"
	"github.com/google/uuid"
)

var ErrTeamNotFound = errors.New("team not found")

type TeamRepository interface {
	Create(ctx context.Context, tournamentID string, team *models.Team) error
	GetByID(ctx context.Context, id string) (*models.Team, error)
	// ListByTournament returns teams in registration order. The fixture
	// engine's grouping and scheduling are input-order sensitive, so this
	// ordering is part of the determinism contract.
	ListByTournament(ctx context.Context, tournamentID string) ([]*models.Team, error)
	Delete(ctx context.Context, id string) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, tournamentID string, team *models.Team) error {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}

	query := `
		INSERT INTO teams (id, tournament_id, name, county, constituency, org_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		team.ID,
		tournamentID,
		team.Name,
		team.County,
		team.Constituency,
		team.OrgID,
	).Scan(&team.CreatedAt)
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	query := `SELECT id, name, county, constituency, org_id, created_at FROM teams WHERE id = $1`

	team := &models.Team{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.County,
		&team.Constituency,
		&team.OrgID,
		&team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (r *postgresTeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*models.Team, error) {
	query := `
		SELECT id, name, county, constituency, org_id, created_at
		FROM teams
		WHERE tournament_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.County,
			&team.Constituency,
			&team.OrgID,
			&team.CreatedAt,
		); err != nil {
			return nil, err
		}
		teams = append(teams, &team)
	}
	return teams, rows.Err()
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}
