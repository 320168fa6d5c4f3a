package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mingle-backend/internal/config"
	"mingle-backend/internal/models"
)

const postgresSchema = `
create table if not exists public.profiles (
	id text primary key,
	name text not null,
	role text not null,
	company text not null,
	bio text not null,
	skills text not null,
	looking_for text not null,
	can_help_with text not null,
	domains text not null,
	linkedin_url text,
	created_at timestamptz not null default now()
);

create table if not exists public.network (
	id bigserial primary key,
	owner_user_id text not null,
	profile_id text not null,
	saved_at timestamptz not null default now(),
	unique (owner_user_id, profile_id)
);
create index if not exists idx_network_owner_saved on public.network (owner_user_id, saved_at desc);
`

// PostgresRepository stores profiles and the network in Postgres through a pgx pool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgres dials the pool with the PgBouncer-friendly settings and applies the schema.
func NewPostgres(ctx context.Context, cfg *config.Config) (*PostgresRepository, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pcfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pcfg.ConnConfig.RuntimeParams["application_name"] = "mingle-backend"
	pcfg.ConnConfig.RuntimeParams["statement_timeout"] = fmt.Sprintf("%d", cfg.Database.QueryTimeout.Milliseconds())
	pcfg.MaxConns = cfg.Database.MaxConns
	pcfg.MinConns = cfg.Database.MinConns
	pcfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	repo := NewPostgresFromPool(pool)
	if err := repo.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return repo, nil
}

func NewPostgresFromPool(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Ping(ctx context.Context) error { return r.pool.Ping(ctx) }

func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) CreateProfile(ctx context.Context, rec models.ProfileRecord) error {
	const q = `
insert into public.profiles(
	id, name, role, company, bio, skills, looking_for, can_help_with, domains, linkedin_url, created_at
) values (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, nullif($10, ''), $11
)`
	_, err := r.pool.Exec(ctx, q,
		rec.ID, rec.Name, rec.Role, rec.Company, rec.Bio,
		rec.Skills, rec.LookingFor, rec.CanHelpWith, rec.Domains,
		rec.LinkedInURL, rec.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("insert profile %s: %w", rec.ID, ErrDuplicate)
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

const pgProfileColumns = `p.id, p.name, p.role, p.company, p.bio, p.skills, p.looking_for, p.can_help_with, p.domains, p.linkedin_url, p.created_at`

func (r *PostgresRepository) GetProfile(ctx context.Context, id string) (models.ProfileRecord, error) {
	q := `select ` + pgProfileColumns + ` from public.profiles p where p.id = $1 limit 1`
	rec, err := scanPgProfile(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ProfileRecord{}, ErrNotFound
		}
		return models.ProfileRecord{}, fmt.Errorf("select profile: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository) ListProfiles(ctx context.Context) ([]models.ProfileRecord, error) {
	rows, err := r.pool.Query(ctx, `select `+pgProfileColumns+` from public.profiles p`)
	if err != nil {
		return nil, fmt.Errorf("select profiles: %w", err)
	}
	defer rows.Close()

	out := []models.ProfileRecord{}
	for rows.Next() {
		rec, err := scanPgProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, rec models.ProfileRecord) error {
	const q = `
update public.profiles
   set name = $1, role = $2, company = $3, bio = $4,
       skills = $5, looking_for = $6, can_help_with = $7, domains = $8,
       linkedin_url = nullif($9, '')
 where id = $10`
	ct, err := r.pool.Exec(ctx, q,
		rec.Name, rec.Role, rec.Company, rec.Bio,
		rec.Skills, rec.LookingFor, rec.CanHelpWith, rec.Domains,
		rec.LinkedInURL, rec.ID,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ProfileExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.pool.QueryRow(ctx, `select 1 from public.profiles where id = $1 limit 1`, id).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("select profile: %w", err)
	}
	return true, nil
}

func (r *PostgresRepository) ListNetwork(ctx context.Context, ownerUserID string) ([]models.SavedContactRecord, error) {
	q := `
select ` + pgProfileColumns + `, n.saved_at
  from public.network n
  join public.profiles p on p.id = n.profile_id
 where n.owner_user_id = $1
 order by n.saved_at desc, n.id desc`
	rows, err := r.pool.Query(ctx, q, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("select network: %w", err)
	}
	defer rows.Close()

	out := []models.SavedContactRecord{}
	for rows.Next() {
		var c models.SavedContactRecord
		p := &c.Profile
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Role, &p.Company, &p.Bio,
			&p.Skills, &p.LookingFor, &p.CanHelpWith, &p.Domains,
			&p.LinkedInURL, &p.CreatedAt, &c.SavedAt,
		); err != nil {
			return nil, fmt.Errorf("scan network: %w", err)
		}
		p.CreatedAt = p.CreatedAt.UTC()
		c.SavedAt = c.SavedAt.UTC()
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) SaveContact(ctx context.Context, ownerUserID, profileID string, savedAt time.Time) error {
	_, err := r.pool.Exec(ctx,
		`insert into public.network (owner_user_id, profile_id, saved_at) values ($1, $2, $3)
         on conflict (owner_user_id, profile_id) do nothing`,
		ownerUserID, profileID, savedAt,
	)
	if err != nil {
		return fmt.Errorf("insert network: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RemoveContact(ctx context.Context, ownerUserID, profileID string) error {
	_, err := r.pool.Exec(ctx,
		`delete from public.network where owner_user_id = $1 and profile_id = $2`,
		ownerUserID, profileID,
	)
	if err != nil {
		return fmt.Errorf("delete network: %w", err)
	}
	return nil
}

func scanPgProfile(row pgx.Row) (models.ProfileRecord, error) {
	var rec models.ProfileRecord
	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Role, &rec.Company, &rec.Bio,
		&rec.Skills, &rec.LookingFor, &rec.CanHelpWith, &rec.Domains,
		&rec.LinkedInURL, &rec.CreatedAt,
	)
	rec.CreatedAt = rec.CreatedAt.UTC()
	return rec, err
}
