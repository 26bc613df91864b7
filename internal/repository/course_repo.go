package repository

import (
	"context"
	"database/sql"
	"errors"

	"courseapi/internal/model"
)

// CourseRepository defines the interface for interacting with course records.
type CourseRepository interface {
	// GetCourses retrieves all courses. No pagination; the result set is
	// unbounded at this scale.
	GetCourses(ctx context.Context) ([]model.Course, error)
	// GetCourseByID retrieves a course by its ID. Returns (nil, nil) when no
	// course exists.
	GetCourseByID(ctx context.Context, id int64) (*model.Course, error)
	CreateCourse(ctx context.Context, c *model.Course) error
	UpdateCourse(ctx context.Context, c *model.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

type courseRepo struct {
	db *sql.DB
}

// NewCourseRepo creates a new CourseRepository.
func NewCourseRepo(db *sql.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) GetCourses(ctx context.Context) ([]model.Course, error) {
	query := `
		SELECT id, title, description, estimated_time, materials_needed, user_id, created_at, updated_at
		FROM courses
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.EstimatedTime,
			&c.MaterialsNeeded,
			&c.UserID,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.Course{}, nil
	}
	return courses, nil
}

func (r *courseRepo) GetCourseByID(ctx context.Context, id int64) (*model.Course, error) {
	query := `
		SELECT id, title, description, estimated_time, materials_needed, user_id, created_at, updated_at
		FROM courses
		WHERE id = $1
	`
	var c model.Course
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.EstimatedTime,
		&c.MaterialsNeeded,
		&c.UserID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	query := `
		INSERT INTO courses (title, description, estimated_time, materials_needed, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query, c.Title, c.Description, c.EstimatedTime, c.MaterialsNeeded, c.UserID).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *courseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, estimated_time = $3, materials_needed = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`
	return r.db.QueryRowContext(ctx, query, c.Title, c.Description, c.EstimatedTime, c.MaterialsNeeded, c.ID).
		Scan(&c.UpdatedAt)
}

func (r *courseRepo) DeleteCourse(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}
