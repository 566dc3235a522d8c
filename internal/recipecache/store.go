package recipecache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	neturl "net/url"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"recipechat/internal/config"
	"recipechat/internal/recipe"
	"recipechat/internal/services"
)

// timestampLayout is fixed width so fetched_at sorts lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry summarizes one cached recipe.
type Entry struct {
	URL              string    `json:"url"`
	Title            string    `json:"title,omitempty"`
	IngredientsCount int       `json:"ingredients_count"`
	StepsCount       int       `json:"steps_count"`
	FetchedAt        time.Time `json:"fetched_at"`
	Stale            bool      `json:"stale"`
}

// Store manages cached recipes backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	ttl  time.Duration
	now  func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the time source used for fetched_at and TTL checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open connects to the cache database configured in cfg and applies
// migrations.
func Open(cfg *config.Config, opts ...Option) (*Store, error) {
	if !cfg.Cache.Enabled {
		return nil, services.Wrap(services.ErrConfiguration, "recipecache", "open", "cache is disabled", nil)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(cfg.Cache.Path, cfg.CacheTTL(), opts...)
}

// OpenPath opens a cache database at path. A ttl of zero keeps entries fresh
// forever.
func OpenPath(path string, ttl time.Duration, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, services.Wrap(services.ErrConfiguration, "recipecache", "open", "cache path is empty", nil)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(store)
	}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the cached recipe for url. ok is false when nothing is cached or
// the entry is older than the TTL.
func (s *Store) Get(ctx context.Context, url string) (*recipe.Recipe, bool, error) {
	var payload, fetchedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT recipe_json, fetched_at FROM recipes WHERE url = ?`,
		normalizeKey(url),
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get recipe: %w", err)
	}
	fetched, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return nil, false, fmt.Errorf("parse fetched_at: %w", err)
	}
	if s.stale(fetched) {
		return nil, false, nil
	}

	var cached recipe.Recipe
	if err := json.Unmarshal([]byte(payload), &cached); err != nil {
		return nil, false, fmt.Errorf("decode cached recipe: %w", err)
	}
	loaded, err := recipe.Load(cached.Ingredients, cached.Steps,
		recipe.WithTitle(cached.Title),
		recipe.WithSourceURL(cached.SourceURL),
	)
	if err != nil {
		return nil, false, fmt.Errorf("load cached recipe: %w", err)
	}
	return loaded, true, nil
}

// Put stores r under its SourceURL, replacing any previous entry.
func (s *Store) Put(ctx context.Context, r *recipe.Recipe) error {
	if r == nil {
		return errors.New("recipe is nil")
	}
	key := normalizeKey(r.SourceURL)
	if key == "" {
		return services.Wrap(services.ErrValidation, "recipecache", "put", "recipe has no source url", nil)
	}
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode recipe: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO recipes (url, title, ingredients_count, steps_count, recipe_json, fetched_at)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(url) DO UPDATE SET
             title = excluded.title,
             ingredients_count = excluded.ingredients_count,
             steps_count = excluded.steps_count,
             recipe_json = excluded.recipe_json,
             fetched_at = excluded.fetched_at`,
		key,
		nullableString(r.Title),
		r.IngredientCount(),
		r.StepCount(),
		string(payload),
		s.now().UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("put recipe: %w", err)
	}
	return nil
}

// List returns every cached entry, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT url, title, ingredients_count, steps_count, fetched_at
         FROM recipes ORDER BY fetched_at DESC, url`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry     Entry
			title     sql.NullString
			fetchedAt string
		)
		if err := rows.Scan(&entry.URL, &title, &entry.IngredientsCount, &entry.StepsCount, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		entry.Title = title.String
		if entry.FetchedAt, err = time.Parse(time.RFC3339Nano, fetchedAt); err != nil {
			return nil, fmt.Errorf("parse fetched_at: %w", err)
		}
		entry.Stale = s.stale(entry.FetchedAt)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return entries, nil
}

// Delete removes the entry for url and reports whether one existed.
func (s *Store) Delete(ctx context.Context, url string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE url = ?`, normalizeKey(url))
	if err != nil {
		return false, fmt.Errorf("delete recipe: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// Clear removes every entry and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recipes`)
	if err != nil {
		return 0, fmt.Errorf("clear recipes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func (s *Store) stale(fetched time.Time) bool {
	return s.ttl > 0 && s.now().Sub(fetched) > s.ttl
}

// normalizeKey reduces a URL to the form the scraper records as SourceURL,
// so raw lookups and stored recipes agree.
func normalizeKey(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := neturl.Parse(trimmed)
	if err != nil {
		return trimmed
	}
	return parsed.String()
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
