package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Mutisya7/fixture-system/models"
	"github.com/google/uuid"
)

var ErrTimeSlotNotFound = errors.New("time slot not found")

type TimeSlotRepository interface {
	Create(ctx context.Context, tournamentID string, slot *models.TimeSlot) error
	ListByTournament(ctx context.Context, tournamentID string) ([]*models.TimeSlot, error)
	Delete(ctx context.Context, id string) error
}

type postgresTimeSlotRepository struct {
	db *sql.DB
}

func NewPostgresTimeSlotRepository(db *sql.DB) TimeSlotRepository {
	return &postgresTimeSlotRepository{db: db}
}

func (r *postgresTimeSlotRepository) Create(ctx context.Context, tournamentID string, slot *models.TimeSlot) error {
	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}

	query := `
		INSERT INTO time_slots (id, tournament_id, start_time, label)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, slot.ID, tournamentID, slot.StartTime, slot.Label)
	return err
}

func (r *postgresTimeSlotRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*models.TimeSlot, error) {
	query := `
		SELECT id, start_time, label
		FROM time_slots
		WHERE tournament_id = $1
		ORDER BY start_time ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]*models.TimeSlot, 0)
	for rows.Next() {
		var slot models.TimeSlot
		if err := rows.Scan(&slot.ID, &slot.StartTime, &slot.Label); err != nil {
			return nil, err
		}
		slots = append(slots, &slot)
	}
	return slots, rows.Err()
}

func (r *postgresTimeSlotRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM time_slots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTimeSlotNotFound)
}
