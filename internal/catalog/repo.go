package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"musicschool/pkg/models"
)

// Repo reads and writes the courses table of the catalog database.
// The API server only reads; import-catalog writes.
type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Loader adapts All to a Store loader.
func (r *Repo) Loader() Loader {
	return r.All
}

func (r *Repo) All(ctx context.Context) ([]models.Course, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, slug, description, price, instructor, is_featured, image
		FROM courses
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	out := make([]models.Course, 0)
	for rows.Next() {
		var (
			c           models.Course
			description sql.NullString
			instructor  sql.NullString
			image       sql.NullString
		)
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Slug, &description, &c.Price, &instructor, &c.IsFeatured, &image,
		); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		c.Description = description.String
		c.Instructor = instructor.String
		c.Image = image.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return n, nil
}

// Upsert writes all courses in a single transaction.
func (r *Repo) Upsert(ctx context.Context, courses []models.Course) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO courses (id, title, slug, description, price, instructor, is_featured, image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		  title = excluded.title,
		  slug = excluded.slug,
		  description = excluded.description,
		  price = excluded.price,
		  instructor = excluded.instructor,
		  is_featured = excluded.is_featured,
		  image = excluded.image
	`)
	if err != nil {
		return fmt.Errorf("prepare stmt: %w", err)
	}
	defer stmt.Close()

	for _, c := range courses {
		if _, err := stmt.ExecContext(
			ctx,
			c.ID,
			c.Title,
			c.Slug,
			c.Description,
			c.Price,
			c.Instructor,
			c.IsFeatured,
			c.Image,
		); err != nil {
			return fmt.Errorf("exec upsert for %d: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
