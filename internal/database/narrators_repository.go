package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/maktabah/rijal/internal/domain"
)

// Judgement category values stored in the judgements table.
const (
	categoryTaadil       = "taadil"
	categoryJarh         = "jarh"
	categoryUnclassified = "unclassified"
)

// Relation kind values stored in the relations table.
const (
	kindTeacher = "teacher"
	kindStudent = "student"
)

// NarratorsRepository handles database operations for narrator records.
type NarratorsRepository struct {
	db *sqlx.DB
}

// NewNarratorsRepository creates a new narrators repository.
func NewNarratorsRepository(db *sqlx.DB) *NarratorsRepository {
	return &NarratorsRepository{db: db}
}

// Store saves all records in one transaction. Re-running a corpus is
// idempotent: existing rows for a narrator id are replaced.
func (r *NarratorsRepository) Store(ctx context.Context, records []domain.NarratorRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i := range records {
		if err := r.saveRecord(ctx, tx, &records[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}
	return nil
}

func (r *NarratorsRepository) saveRecord(ctx context.Context, tx *sqlx.Tx, record *domain.NarratorRecord) error {
	for _, query := range []string{
		`DELETE FROM judgements WHERE narrator_id = ?`,
		`DELETE FROM relations WHERE narrator_id = ?`,
		`DELETE FROM narrators WHERE narrator_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), record.NarratorID); err != nil {
			return fmt.Errorf("failed to clear narrator %s: %w", record.NarratorID, err)
		}
	}

	insertNarrator := tx.Rebind(`
		INSERT INTO narrators (narrator_id, full_name, volume, page)
		VALUES (?, ?, ?, ?)
	`)
	if _, err := tx.ExecContext(ctx, insertNarrator,
		record.NarratorID, record.FullName, record.Source.Volume, record.Source.Page,
	); err != nil {
		return fmt.Errorf("failed to insert narrator %s: %w", record.NarratorID, err)
	}

	insertJudgement := tx.Rebind(`
		INSERT INTO judgements (narrator_id, category, statement, exact_text, evaluated_by, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	for category, js := range map[string][]domain.Judgement{
		categoryTaadil:       record.Taadil,
		categoryJarh:         record.Jarh,
		categoryUnclassified: record.Unclassified,
	} {
		for i, j := range js {
			if _, err := tx.ExecContext(ctx, insertJudgement,
				record.NarratorID, category, j.Statement, j.ExactText, j.EvaluatedBy, i,
			); err != nil {
				return fmt.Errorf("failed to insert judgement for %s: %w", record.NarratorID, err)
			}
		}
	}

	insertRelation := tx.Rebind(`
		INSERT INTO relations (narrator_id, kind, name, position)
		VALUES (?, ?, ?, ?)
	`)
	for kind, names := range map[string][]string{
		kindTeacher: record.Teachers,
		kindStudent: record.Students,
	} {
		for i, name := range names {
			if _, err := tx.ExecContext(ctx, insertRelation,
				record.NarratorID, kind, name, i,
			); err != nil {
				return fmt.Errorf("failed to insert relation for %s: %w", record.NarratorID, err)
			}
		}
	}

	return nil
}

// GetByNarratorID retrieves one narrator record with its judgements and
// relations.
func (r *NarratorsRepository) GetByNarratorID(ctx context.Context, narratorID string) (*domain.NarratorRecord, error) {
	record := &domain.NarratorRecord{
		NarratorID:   narratorID,
		Taadil:       []domain.Judgement{},
		Jarh:         []domain.Judgement{},
		Unclassified: []domain.Judgement{},
		Teachers:     []string{},
		Students:     []string{},
	}

	query := r.db.Rebind(`SELECT full_name, volume, page FROM narrators WHERE narrator_id = ?`)
	err := r.db.QueryRowContext(ctx, query, narratorID).Scan(
		&record.FullName, &record.Source.Volume, &record.Source.Page,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("narrator not found: %s", narratorID)
		}
		return nil, fmt.Errorf("failed to get narrator: %w", err)
	}

	if err := r.loadJudgements(ctx, record); err != nil {
		return nil, err
	}
	if err := r.loadRelations(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *NarratorsRepository) loadJudgements(ctx context.Context, record *domain.NarratorRecord) error {
	query := r.db.Rebind(`
		SELECT category, statement, exact_text, evaluated_by
		FROM judgements
		WHERE narrator_id = ?
		ORDER BY category, position
	`)
	rows, err := r.db.QueryContext(ctx, query, record.NarratorID)
	if err != nil {
		return fmt.Errorf("failed to list judgements: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var category string
		var j domain.Judgement
		if err = rows.Scan(&category, &j.Statement, &j.ExactText, &j.EvaluatedBy); err != nil {
			return fmt.Errorf("failed to scan judgement: %w", err)
		}
		switch category {
		case categoryTaadil:
			record.Taadil = append(record.Taadil, j)
		case categoryJarh:
			record.Jarh = append(record.Jarh, j)
		case categoryUnclassified:
			record.Unclassified = append(record.Unclassified, j)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating judgements: %w", err)
	}
	return nil
}

func (r *NarratorsRepository) loadRelations(ctx context.Context, record *domain.NarratorRecord) error {
	query := r.db.Rebind(`
		SELECT kind, name
		FROM relations
		WHERE narrator_id = ?
		ORDER BY kind, position
	`)
	rows, err := r.db.QueryContext(ctx, query, record.NarratorID)
	if err != nil {
		return fmt.Errorf("failed to list relations: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var kind, name string
		if err = rows.Scan(&kind, &name); err != nil {
			return fmt.Errorf("failed to scan relation: %w", err)
		}
		switch kind {
		case kindTeacher:
			record.Teachers = append(record.Teachers, name)
		case kindStudent:
			record.Students = append(record.Students, name)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating relations: %w", err)
	}
	return nil
}

// Count returns the total number of stored narrators.
func (r *NarratorsRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM narrators`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count narrators: %w", err)
	}
	return count, nil
}
