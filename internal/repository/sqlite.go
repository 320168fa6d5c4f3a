package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"mingle-backend/internal/models"
)

// Fixed-width UTC timestamps sort lexically in the same order as in time.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS profiles (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	role TEXT NOT NULL,
	company TEXT NOT NULL,
	bio TEXT NOT NULL,
	skills TEXT NOT NULL,
	looking_for TEXT NOT NULL,
	can_help_with TEXT NOT NULL,
	domains TEXT NOT NULL,
	linkedin_url TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS network (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_user_id TEXT NOT NULL,
	profile_id TEXT NOT NULL,
	saved_at TEXT NOT NULL,
	UNIQUE(owner_user_id, profile_id)
);
CREATE INDEX IF NOT EXISTS idx_network_owner_saved ON network(owner_user_id, saved_at);
`

// SQLiteRepository stores profiles and the network in a single SQLite file
// opened in WAL mode.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLite(ctx context.Context, path string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Ping(ctx context.Context) error { return r.db.PingContext(ctx) }

func (r *SQLiteRepository) Close() error { return r.db.Close() }

func (r *SQLiteRepository) CreateProfile(ctx context.Context, rec models.ProfileRecord) error {
	const q = `
INSERT INTO profiles (id, name, role, company, bio, skills, looking_for, can_help_with, domains, linkedin_url, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		rec.ID, rec.Name, rec.Role, rec.Company, rec.Bio,
		rec.Skills, rec.LookingFor, rec.CanHelpWith, rec.Domains,
		rec.LinkedInURL, formatSQLiteTime(rec.CreatedAt),
	)
	if err != nil {
		if isSQLiteConstraint(err) {
			return fmt.Errorf("insert profile %s: %w", rec.ID, ErrDuplicate)
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

const sqliteProfileColumns = `p.id, p.name, p.role, p.company, p.bio, p.skills, p.looking_for, p.can_help_with, p.domains, p.linkedin_url, p.created_at`

func (r *SQLiteRepository) GetProfile(ctx context.Context, id string) (models.ProfileRecord, error) {
	q := `SELECT ` + sqliteProfileColumns + ` FROM profiles p WHERE p.id = ?`
	rec, err := scanSQLiteProfile(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProfileRecord{}, ErrNotFound
		}
		return models.ProfileRecord{}, fmt.Errorf("select profile: %w", err)
	}
	return rec, nil
}

func (r *SQLiteRepository) ListProfiles(ctx context.Context) ([]models.ProfileRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sqliteProfileColumns+` FROM profiles p`)
	if err != nil {
		return nil, fmt.Errorf("select profiles: %w", err)
	}
	defer rows.Close()

	out := []models.ProfileRecord{}
	for rows.Next() {
		rec, err := scanSQLiteProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateProfile(ctx context.Context, rec models.ProfileRecord) error {
	const q = `
UPDATE profiles
   SET name = ?, role = ?, company = ?, bio = ?,
       skills = ?, looking_for = ?, can_help_with = ?, domains = ?,
       linkedin_url = ?
 WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		rec.Name, rec.Role, rec.Company, rec.Bio,
		rec.Skills, rec.LookingFor, rec.CanHelpWith, rec.Domains,
		rec.LinkedInURL, rec.ID,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) ProfileExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM profiles WHERE id = ? LIMIT 1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("select profile: %w", err)
	}
	return true, nil
}

func (r *SQLiteRepository) ListNetwork(ctx context.Context, ownerUserID string) ([]models.SavedContactRecord, error) {
	q := `
SELECT ` + sqliteProfileColumns + `, n.saved_at
  FROM network n
  JOIN profiles p ON p.id = n.profile_id
 WHERE n.owner_user_id = ?
 ORDER BY n.saved_at DESC, n.id DESC`
	rows, err := r.db.QueryContext(ctx, q, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("select network: %w", err)
	}
	defer rows.Close()

	out := []models.SavedContactRecord{}
	for rows.Next() {
		var (
			rec              models.ProfileRecord
			created, savedAt string
		)
		if err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Role, &rec.Company, &rec.Bio,
			&rec.Skills, &rec.LookingFor, &rec.CanHelpWith, &rec.Domains,
			&rec.LinkedInURL, &created, &savedAt,
		); err != nil {
			return nil, fmt.Errorf("scan network: %w", err)
		}
		rec.CreatedAt = parseSQLiteTime(created)
		out = append(out, models.SavedContactRecord{Profile: rec, SavedAt: parseSQLiteTime(savedAt)})
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) SaveContact(ctx context.Context, ownerUserID, profileID string, savedAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO network (owner_user_id, profile_id, saved_at) VALUES (?, ?, ?)`,
		ownerUserID, profileID, formatSQLiteTime(savedAt),
	)
	if err != nil {
		return fmt.Errorf("insert network: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) RemoveContact(ctx context.Context, ownerUserID, profileID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM network WHERE owner_user_id = ? AND profile_id = ?`,
		ownerUserID, profileID,
	)
	if err != nil {
		return fmt.Errorf("delete network: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteProfile(row rowScanner) (models.ProfileRecord, error) {
	var (
		rec     models.ProfileRecord
		created string
	)
	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Role, &rec.Company, &rec.Bio,
		&rec.Skills, &rec.LookingFor, &rec.CanHelpWith, &rec.Domains,
		&rec.LinkedInURL, &created,
	)
	if err != nil {
		return models.ProfileRecord{}, err
	}
	rec.CreatedAt = parseSQLiteTime(created)
	return rec, nil
}

func formatSQLiteTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

// parseSQLiteTime also accepts CURRENT_TIMESTAMP-style values written by
// other tools; anything unparseable yields the zero time.
func parseSQLiteTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

func isSQLiteConstraint(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}
