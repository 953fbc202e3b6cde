package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/medprep/backend/internal/domain/attempt"
	"github.com/medprep/backend/internal/domain/curriculum"
)

const schema = `
CREATE TABLE IF NOT EXISTS attempts (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    mcq_id TEXT NOT NULL,
    question TEXT NOT NULL,
    option_a TEXT NOT NULL,
    option_b TEXT NOT NULL,
    option_c TEXT NOT NULL,
    option_d TEXT NOT NULL,
    correct_option TEXT NOT NULL,
    explanation TEXT NOT NULL,
    user_answer TEXT NOT NULL,
    is_correct INTEGER NOT NULL,
    subject TEXT NOT NULL,
    topic TEXT NOT NULL,
    ts INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attempts_owner_ts ON attempts(owner_id, ts);
CREATE INDEX IF NOT EXISTS idx_attempts_owner_subject ON attempts(owner_id, subject);
CREATE INDEX IF NOT EXISTS idx_attempts_owner_correct ON attempts(owner_id, is_correct);
`

const attemptColumns = `id, owner_id, mcq_id, question,
	option_a, option_b, option_c, option_d,
	correct_option, explanation, user_answer, is_correct,
	subject, topic, ts`

// SQLiteStore implements Store on a single sqlite file.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens (creating if needed) the database at dbPath and applies
// the schema.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AppendAttempt validates the record at the store boundary, stamps it with a
// fresh id and the current UTC time, and inserts it. The single INSERT makes
// the write atomic: a record is either fully visible or absent.
func (s *SQLiteStore) AppendAttempt(ctx context.Context, ownerID string, rec *attempt.Record) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	rec.ID = uuid.NewString()
	rec.OwnerID = ownerID
	rec.Timestamp = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attempts (`+attemptColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.OwnerID, rec.MCQID, rec.Question,
		rec.Options.A, rec.Options.B, rec.Options.C, rec.Options.D,
		string(rec.CorrectOption), rec.Explanation, string(rec.UserAnswer), rec.IsCorrect,
		string(rec.Subject), rec.Topic, rec.Timestamp.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("inserting attempt: %w", err)
	}
	return rec.ID, nil
}

func (s *SQLiteStore) ListAttemptsByOwner(ctx context.Context, ownerID string, filter ListFilter, limit int) ([]attempt.Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	query := `SELECT ` + attemptColumns + ` FROM attempts WHERE owner_id = ?`
	args := []any{ownerID}

	if filter.Subject != nil {
		query += ` AND subject = ?`
		args = append(args, string(*filter.Subject))
	}
	if filter.Correct != nil {
		query += ` AND is_correct = ?`
		args = append(args, *filter.Correct)
	}

	// rowid disambiguates attempts inserted within the same millisecond.
	query += ` ORDER BY ts DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	return s.queryAttempts(ctx, query, args...)
}

func (s *SQLiteStore) ListAllAttemptsByOwner(ctx context.Context, ownerID string) ([]attempt.Record, error) {
	return s.queryAttempts(ctx, `
		SELECT `+attemptColumns+` FROM attempts
		WHERE owner_id = ?
		ORDER BY ts ASC, rowid ASC`,
		ownerID,
	)
}

// DeleteAttemptsByOwner clears the owner's whole log. A single DELETE is
// atomic in sqlite, so readers never observe a partially cleared log.
func (s *SQLiteStore) DeleteAttemptsByOwner(ctx context.Context, ownerID string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM attempts WHERE owner_id = ?`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("deleting attempts: %w", err)
	}
	return result.RowsAffected()
}

func (s *SQLiteStore) queryAttempts(ctx context.Context, query string, args ...any) ([]attempt.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying attempts: %w", err)
	}
	defer rows.Close()

	records := []attempt.Record{}
	for rows.Next() {
		var rec attempt.Record
		var correct, answer, subject string
		var ts int64
		if err := rows.Scan(
			&rec.ID, &rec.OwnerID, &rec.MCQID, &rec.Question,
			&rec.Options.A, &rec.Options.B, &rec.Options.C, &rec.Options.D,
			&correct, &rec.Explanation, &answer, &rec.IsCorrect,
			&subject, &rec.Topic, &ts,
		); err != nil {
			return nil, err
		}
		rec.CorrectOption = attempt.Option(correct)
		rec.UserAnswer = attempt.Option(answer)
		rec.Subject = curriculum.Subject(subject)
		rec.Timestamp = time.UnixMilli(ts).UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}
