package content

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/soruj/portfolio-assistant/internal/types"
)

// DB wraps a PostgreSQL connection pool for read-only access to the CMS
// content tables. The assistant never writes to the store.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// ListProjects fetches all project records.
func (db *DB) ListProjects(ctx context.Context) ([]types.Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT title, description, tech_stack, featured FROM projects ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []types.Project
	for rows.Next() {
		var p types.Project
		if err := rows.Scan(&p.Title, &p.Description, &p.TechStack, &p.Featured); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListSkillCategories fetches all skill category records.
func (db *DB) ListSkillCategories(ctx context.Context) ([]types.SkillCategory, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT title, skills FROM skill_categories ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill categories: %w", err)
	}
	defer rows.Close()

	var categories []types.SkillCategory
	for rows.Next() {
		var c types.SkillCategory
		if err := rows.Scan(&c.Title, &c.Skills); err != nil {
			return nil, fmt.Errorf("failed to scan skill category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetProfile fetches the portfolio owner's profile. Returns nil without error
// when no profile row exists.
func (db *DB) GetProfile(ctx context.Context) (*types.Profile, error) {
	var p types.Profile
	err := db.pool.QueryRow(ctx,
		`SELECT name, headline, bio, email, location FROM profile LIMIT 1`,
	).Scan(&p.Name, &p.Headline, &p.Bio, &p.Email, &p.Location)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}
