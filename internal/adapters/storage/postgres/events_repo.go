package postgres

import (
	"context"
	"database/sql"
	"strings"

	"birrieria-admin/internal/domain/events"
	"birrieria-admin/internal/ports/auth"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Create(ctx context.Context, e events.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calendar_events (
			id, title, description,
			date, year,
			color, type,
			created_by, created_at,
			target_role, target_branch, minuta_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		e.ID,
		e.Title,
		e.Description,
		e.Date,
		e.Year,
		e.Color,
		string(e.Type),
		e.CreatedBy,
		e.CreatedAt,
		string(e.TargetRole),
		string(e.TargetBranch),
		e.MinutaID,
	)
	return err
}

func (r *EventsRepo) Update(ctx context.Context, e events.Event) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE calendar_events
		SET title = $2,
			description = $3,
			date = $4,
			year = $5,
			color = $6,
			type = $7
		WHERE id = $1
	`,
		e.ID,
		e.Title,
		e.Description,
		e.Date,
		e.Year,
		e.Color,
		string(e.Type),
	)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return events.ErrNotFound
	}
	return nil
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM calendar_events
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return events.ErrNotFound
	}
	return nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.Event{}, events.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, title, description,
			date, year,
			color, type,
			created_by, created_at,
			target_role, target_branch, minuta_id
		FROM calendar_events
		WHERE id = $1
	`, id)

	e, err := scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return events.Event{}, events.ErrNotFound
		}
		return events.Event{}, err
	}
	return e, nil
}

func (r *EventsRepo) ListByYear(ctx context.Context, year int) ([]events.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, title, description,
			date, year,
			color, type,
			created_by, created_at,
			target_role, target_branch, minuta_id
		FROM calendar_events
		WHERE year = $1
		ORDER BY date ASC
	`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EventsRepo) CountByYearAndType(ctx context.Context, year int, t events.EventType) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM calendar_events
		WHERE year = $1 AND type = $2
	`, year, string(t)).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (events.Event, error) {
	var e events.Event
	var typ, targetRole, targetBranch string
	if err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Date,
		&e.Year,
		&e.Color,
		&typ,
		&e.CreatedBy,
		&e.CreatedAt,
		&targetRole,
		&targetBranch,
		&e.MinutaID,
	); err != nil {
		return events.Event{}, err
	}
	e.Type = events.EventType(typ)
	e.TargetRole = auth.Role(targetRole)
	e.TargetBranch = auth.Branch(targetBranch)
	return e, nil
}
