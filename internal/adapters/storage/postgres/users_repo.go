package postgres

import (
	"context"
	"database/sql"
	"strings"

	"birrieria-admin/internal/domain/users"
	"birrieria-admin/internal/ports/auth"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, p users.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (
			id, email, display_name,
			role, branch, phone_number,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		p.ID,
		p.Email,
		p.DisplayName,
		string(p.Role),
		string(p.Branch),
		p.PhoneNumber,
		p.CreatedAt,
	)
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.Profile{}, users.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, email, display_name,
			role, branch, phone_number,
			created_at
		FROM user_profiles
		WHERE id = $1
	`, id)

	return scanProfileRow(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.Profile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return users.Profile{}, users.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, email, display_name,
			role, branch, phone_number,
			created_at
		FROM user_profiles
		WHERE email = $1
	`, email)

	return scanProfileRow(row)
}

func (r *UsersRepo) List(ctx context.Context) ([]users.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, email, display_name,
			role, branch, phone_number,
			created_at
		FROM user_profiles
		ORDER BY display_name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProfileRow(row *sql.Row) (users.Profile, error) {
	p, err := scanProfile(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return users.Profile{}, users.ErrNotFound
		}
		return users.Profile{}, err
	}
	return p, nil
}

func scanProfile(row rowScanner) (users.Profile, error) {
	var p users.Profile
	var role, branch string
	if err := row.Scan(
		&p.ID,
		&p.Email,
		&p.DisplayName,
		&role,
		&branch,
		&p.PhoneNumber,
		&p.CreatedAt,
	); err != nil {
		return users.Profile{}, err
	}
	p.Role = auth.Role(role)
	p.Branch = auth.Branch(branch)
	return p, nil
}
