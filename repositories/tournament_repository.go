package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Mutisya7/fixture-system/models"
	"github.com/google/uuid"
)

var ErrTournamentNotFound = errors.New("tournament not found")

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id string) (*models.Tournament, error)
	List(ctx context.Context) ([]*models.Tournament, error)
	UpdateStatus(ctx context.Context, id string, status models.TournamentStatus) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

const tournamentColumns = `id, name, format, status, start_date, end_date, grouping_strategy,
		match_duration, buffer_time, rest_period, group_count, teams_per_group, legs, created_at`

func (r *postgresTournamentRepository) Create(ctx context.Context, tournament *models.Tournament) error {
	if tournament.ID == "" {
		tournament.ID = uuid.NewString()
	}
	if tournament.Status == "" {
		tournament.Status = models.TournamentStatusDraft
	}
	if tournament.Legs != 2 {
		tournament.Legs = 1
	}

	query := `
		INSERT INTO tournaments
			(id, name, format, status, start_date, end_date, grouping_strategy,
			 match_duration, buffer_time, rest_period, group_count, teams_per_group, legs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		tournament.ID,
		tournament.Name,
		tournament.Format,
		tournament.Status,
		tournament.StartDate,
		tournament.EndDate,
		tournament.GroupingStrategy,
		tournament.MatchDuration,
		tournament.BufferTime,
		tournament.RestPeriod,
		tournament.GroupCount,
		tournament.TeamsPerGroup,
		tournament.Legs,
	).Scan(&tournament.CreatedAt)
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`

	tournament := &models.Tournament{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tournament.ID,
		&tournament.Name,
		&tournament.Format,
		&tournament.Status,
		&tournament.StartDate,
		&tournament.EndDate,
		&tournament.GroupingStrategy,
		&tournament.MatchDuration,
		&tournament.BufferTime,
		&tournament.RestPeriod,
		&tournament.GroupCount,
		&tournament.TeamsPerGroup,
		&tournament.Legs,
		&tournament.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return tournament, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context) ([]*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]*models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Format,
			&t.Status,
			&t.StartDate,
			&t.EndDate,
			&t.GroupingStrategy,
			&t.MatchDuration,
			&t.BufferTime,
			&t.RestPeriod,
			&t.GroupCount,
			&t.TeamsPerGroup,
			&t.Legs,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		tournaments = append(tournaments, &t)
	}
	return tournaments, rows.Err()
}

func (r *postgresTournamentRepository) UpdateStatus(ctx context.Context, id string, status models.TournamentStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE tournaments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}
