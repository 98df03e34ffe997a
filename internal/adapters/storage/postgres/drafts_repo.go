package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"birrieria-admin/internal/domain/documents"
	"birrieria-admin/internal/domain/documents/fields"
	"birrieria-admin/internal/domain/documents/schema"
)

type DraftsRepo struct {
	db *sql.DB
}

func NewDraftsRepo(db *sql.DB) *DraftsRepo {
	return &DraftsRepo{db: db}
}

func (r *DraftsRepo) Create(ctx context.Context, d documents.Draft) error {
	record, err := json.Marshal(d.Record)
	if err != nil {
		return fmt.Errorf("serializar borrador: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO document_drafts (
			id, doc_type, record,
			created_by, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		d.ID,
		string(d.DocType),
		record,
		d.CreatedBy,
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

func (r *DraftsRepo) Update(ctx context.Context, d documents.Draft) error {
	record, err := json.Marshal(d.Record)
	if err != nil {
		return fmt.Errorf("serializar borrador: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE document_drafts
		SET record = $2,
			updated_at = $3
		WHERE id = $1
	`, d.ID, record, d.UpdatedAt)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return documents.ErrNotFound
	}
	return nil
}

func (r *DraftsRepo) GetByID(ctx context.Context, id string) (documents.Draft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return documents.Draft{}, documents.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, doc_type, record,
			created_by, created_at, updated_at
		FROM document_drafts
		WHERE id = $1
	`, id)

	var d documents.Draft
	var docType string
	var record []byte
	if err := row.Scan(
		&d.ID,
		&docType,
		&record,
		&d.CreatedBy,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return documents.Draft{}, documents.ErrNotFound
		}
		return documents.Draft{}, err
	}

	d.DocType = schema.DocType(docType)
	d.Record = fields.Record{}
	if len(record) > 0 {
		if err := json.Unmarshal(record, &d.Record); err != nil {
			return documents.Draft{}, fmt.Errorf("leer borrador: %w", err)
		}
	}
	return d, nil
}
