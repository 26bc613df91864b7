package service

import (
	"context"
	"errors"

	"courseapi/internal/model"
	"courseapi/internal/repository"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrNotCourseOwner = errors.New("user is not the course owner")
)

// CoursePatch holds the fields a course update may supply. Nil fields are left
// untouched.
type CoursePatch struct {
	Title           *string
	Description     *string
	EstimatedTime   *string
	MaterialsNeeded *string
}

// CourseService defines the interface for course operations. Mutations enforce
// ownership: only the owning user may update or delete a course.
type CourseService interface {
	List(ctx context.Context) ([]model.Course, error)
	Get(ctx context.Context, id int64) (*model.Course, error)
	Create(ctx context.Context, c *model.Course) (*model.Course, error)
	Update(ctx context.Context, actorID, id int64, patch CoursePatch) error
	Delete(ctx context.Context, actorID, id int64) error
}

type courseService struct {
	repo repository.CourseRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	return s.repo.GetCourses(ctx)
}

func (s *courseService) Get(ctx context.Context, id int64) (*model.Course, error) {
	c, err := s.repo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

func (s *courseService) Create(ctx context.Context, c *model.Course) (*model.Course, error) {
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) Update(ctx context.Context, actorID, id int64, patch CoursePatch) error {
	course, err := s.authorize(ctx, actorID, id)
	if err != nil {
		return err
	}
	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.EstimatedTime != nil {
		course.EstimatedTime = patch.EstimatedTime
	}
	if patch.MaterialsNeeded != nil {
		course.MaterialsNeeded = patch.MaterialsNeeded
	}
	return s.repo.UpdateCourse(ctx, course)
}

func (s *courseService) Delete(ctx context.Context, actorID, id int64) error {
	if _, err := s.authorize(ctx, actorID, id); err != nil {
		return err
	}
	return s.repo.DeleteCourse(ctx, id)
}

// authorize loads the course and checks the actor owns it. Existence is
// checked first, so a non-owner probing a missing id still sees not-found.
func (s *courseService) authorize(ctx context.Context, actorID, id int64) (*model.Course, error) {
	course, err := s.repo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	if course.UserID != actorID {
		return nil, ErrNotCourseOwner
	}
	return course, nil
}
