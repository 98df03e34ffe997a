package postgres

import (
	"context"
	"database/sql"
	"strings"

	"birrieria-admin/internal/domain/minutas"
	"birrieria-admin/internal/ports/auth"
)

type MinutasRepo struct {
	db *sql.DB
}

func NewMinutasRepo(db *sql.DB) *MinutasRepo {
	return &MinutasRepo{db: db}
}

func (r *MinutasRepo) Create(ctx context.Context, m minutas.Minuta) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO minutas (
			id, supervisor,
			branch, role,
			what_happened, expectations, next_meeting_date,
			created_at, created_by,
			event_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		m.ID,
		m.Supervisor,
		string(m.Branch),
		string(m.Role),
		m.WhatHappened,
		m.Expectations,
		m.NextMeetingDate,
		m.CreatedAt,
		m.CreatedBy,
		m.EventID,
	)
	return err
}

func (r *MinutasRepo) SetEventID(ctx context.Context, id, eventID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE minutas
		SET event_id = $2
		WHERE id = $1
	`, id, eventID)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return minutas.ErrNotFound
	}
	return nil
}

func (r *MinutasRepo) GetByID(ctx context.Context, id string) (minutas.Minuta, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return minutas.Minuta{}, minutas.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, supervisor,
			branch, role,
			what_happened, expectations, next_meeting_date,
			created_at, created_by,
			event_id
		FROM minutas
		WHERE id = $1
	`, id)

	m, err := scanMinuta(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return minutas.Minuta{}, minutas.ErrNotFound
		}
		return minutas.Minuta{}, err
	}
	return m, nil
}

func (r *MinutasRepo) List(ctx context.Context) ([]minutas.Minuta, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, supervisor,
			branch, role,
			what_happened, expectations, next_meeting_date,
			created_at, created_by,
			event_id
		FROM minutas
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMinutas(rows)
}

func (r *MinutasRepo) ListByRoleAndBranch(ctx context.Context, role auth.Role, branch auth.Branch) ([]minutas.Minuta, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, supervisor,
			branch, role,
			what_happened, expectations, next_meeting_date,
			created_at, created_by,
			event_id
		FROM minutas
		WHERE role = $1 AND branch = $2
		ORDER BY created_at DESC
	`, string(role), string(branch))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMinutas(rows)
}

func collectMinutas(rows *sql.Rows) ([]minutas.Minuta, error) {
	out := make([]minutas.Minuta, 0)
	for rows.Next() {
		m, err := scanMinuta(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMinuta(row rowScanner) (minutas.Minuta, error) {
	var m minutas.Minuta
	var branch, role string
	if err := row.Scan(
		&m.ID,
		&m.Supervisor,
		&branch,
		&role,
		&m.WhatHappened,
		&m.Expectations,
		&m.NextMeetingDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.EventID,
	); err != nil {
		return minutas.Minuta{}, err
	}
	m.Branch = auth.Branch(branch)
	m.Role = auth.Role(role)
	return m, nil
}
