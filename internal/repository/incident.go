package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_dispatch/internal/models"
)

// ErrIncidentNotFound возвращается, когда строки с таким id нет
var ErrIncidentNotFound = errors.New("incident not found")

const incidentColumns = `
	id::text,
	user_id,
	type,
	severity,
	status,
	title,
	description,
	location_name,
	latitude,
	longitude,
	upvotes,
	image_url,
	responder_notes,
	created_at,
	updated_at`

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) *IncidentRepository {
	return &IncidentRepository{db: db}
}

func scanIncident(row pgx.Row) (*models.IncidentRow, error) {
	incident := &models.IncidentRow{}
	err := row.Scan(
		&incident.ID,
		&incident.UserID,
		&incident.Type,
		&incident.Severity,
		&incident.Status,
		&incident.Title,
		&incident.Description,
		&incident.LocationName,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Upvotes,
		&incident.ImageURL,
		&incident.ResponderNotes,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func (r *IncidentRepository) queryIncidents(ctx context.Context, query string, args ...any) ([]models.IncidentRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.IncidentRow, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, *incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// ListIncidents возвращает все инциденты, новые первыми
func (r *IncidentRepository) ListIncidents(ctx context.Context) ([]models.IncidentRow, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		ORDER BY created_at DESC;
	`
	return r.queryIncidents(ctx, query)
}

// ListIncidentsByUser возвращает отчеты одного пользователя
func (r *IncidentRepository) ListIncidentsByUser(ctx context.Context, userID string) ([]models.IncidentRow, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	return r.queryIncidents(ctx, query, userID)
}

// GetIncident возвращает инцидент по id
func (r *IncidentRepository) GetIncident(ctx context.Context, id string) (*models.IncidentRow, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE id::text = $1;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, ErrIncidentNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// InsertIncident создает строку и возвращает ее в сохраненном виде
func (r *IncidentRepository) InsertIncident(ctx context.Context, row models.NewIncidentRow) (*models.IncidentRow, error) {
	query := `
		INSERT INTO incidents (user_id, type, severity, status, title, description, location_name, latitude, longitude, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING` + incidentColumns + `;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query,
		row.UserID,
		row.Type,
		row.Severity,
		row.Status,
		row.Title,
		row.Description,
		row.LocationName,
		row.Latitude,
		row.Longitude,
		row.ImageURL,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}
	return incident, nil
}

// GetUpvoteCount читает текущий счетчик голосов (NULL считается нулем)
func (r *IncidentRepository) GetUpvoteCount(ctx context.Context, id string) (int, error) {
	query := `SELECT COALESCE(upvotes, 0) FROM incidents WHERE id::text = $1;`
	var count int
	if err := r.db.QueryRow(ctx, query, id).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("incident with id %s: %w", id, ErrIncidentNotFound)
		}
		return 0, fmt.Errorf("failed to get upvote count: %w", err)
	}
	return count, nil
}

// SetUpvoteCount записывает счетчик голосов
func (r *IncidentRepository) SetUpvoteCount(ctx context.Context, id string, upvotes int) error {
	query := `
		UPDATE incidents SET
			upvotes = $1,
			updated_at = NOW()
		WHERE id::text = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, upvotes, id)
	if err != nil {
		return fmt.Errorf("failed to set upvote count: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s: %w", id, ErrIncidentNotFound)
	}
	return nil
}

// UpdateStatus меняет статус; заметки перезаписываются, только если переданы
func (r *IncidentRepository) UpdateStatus(ctx context.Context, id, status string, notes *string) (*models.IncidentRow, error) {
	query := `
		UPDATE incidents SET
			status = $1,
			responder_notes = COALESCE($2, responder_notes),
			updated_at = NOW()
		WHERE id::text = $3
		RETURNING` + incidentColumns + `;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, status, notes, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s not found for update: %w", id, ErrIncidentNotFound)
		}
		return nil, fmt.Errorf("failed to update incident status: %w", err)
	}
	return incident, nil
}

// DeleteIncident удаляет отчет, только если он принадлежит пользователю
func (r *IncidentRepository) DeleteIncident(ctx context.Context, id, userID string) error {
	query := `DELETE FROM incidents WHERE id::text = $1 AND user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for delete: %w", id, ErrIncidentNotFound)
	}
	return nil
}
