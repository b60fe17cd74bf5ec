package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_dispatch/internal/models"
)

type UpvoteRepository struct {
	db *pgxpool.Pool
}

func NewUpvoteRepository(db *pgxpool.Pool) *UpvoteRepository {
	return &UpvoteRepository{db: db}
}

// FindUpvote ищет голос пользователя за инцидент. Если голоса нет, возвращает nil, nil.
func (r *UpvoteRepository) FindUpvote(ctx context.Context, incidentID, userID string) (*models.UpvoteRecord, error) {
	query := `
		SELECT id::text, incident_id::text, user_id, created_at
		FROM incident_upvotes
		WHERE incident_id::text = $1 AND user_id = $2;
	`
	record := &models.UpvoteRecord{}
	err := r.db.QueryRow(ctx, query, incidentID, userID).Scan(
		&record.ID,
		&record.IncidentID,
		&record.UserID,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find upvote: %w", err)
	}
	return record, nil
}

// InsertUpvote сохраняет голос пользователя
func (r *UpvoteRepository) InsertUpvote(ctx context.Context, incidentID, userID string) (*models.UpvoteRecord, error) {
	query := `
		INSERT INTO incident_upvotes (incident_id, user_id)
		VALUES ($1::uuid, $2)
		RETURNING id::text, incident_id::text, user_id, created_at;
	`
	record := &models.UpvoteRecord{}
	err := r.db.QueryRow(ctx, query, incidentID, userID).Scan(
		&record.ID,
		&record.IncidentID,
		&record.UserID,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert upvote: %w", err)
	}
	return record, nil
}

// DeleteUpvote удаляет голос по его id
func (r *UpvoteRepository) DeleteUpvote(ctx context.Context, id string) error {
	query := `DELETE FROM incident_upvotes WHERE id::text = $1;`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete upvote: %w", err)
	}
	return nil
}
