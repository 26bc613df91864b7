package service

import (
	"context"
	"testing"

	"courseapi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCourseRepo is an in-memory CourseRepository for service tests.
type fakeCourseRepo struct {
	courses map[int64]*model.Course
	nextID  int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int64]*model.Course), nextID: 1}
}

func (r *fakeCourseRepo) GetCourses(_ context.Context) ([]model.Course, error) {
	out := make([]model.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCourseRepo) GetCourseByID(_ context.Context, id int64) (*model.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCourseRepo) CreateCourse(_ context.Context, c *model.Course) error {
	c.ID = r.nextID
	r.nextID++
	stored := *c
	r.courses[c.ID] = &stored
	return nil
}

func (r *fakeCourseRepo) UpdateCourse(_ context.Context, c *model.Course) error {
	stored := *c
	r.courses[c.ID] = &stored
	return nil
}

func (r *fakeCourseRepo) DeleteCourse(_ context.Context, id int64) error {
	delete(r.courses, id)
	return nil
}

func seedCourse(repo *fakeCourseRepo, ownerID int64) *model.Course {
	c := &model.Course{Title: "Intro", Description: "Basics", UserID: ownerID}
	_ = repo.CreateCourse(context.Background(), c)
	return c
}

func strPtr(s string) *string { return &s }

func TestGetMissingCourse(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestUpdateByNonOwnerLeavesCourseUnmodified(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo)
	course := seedCourse(repo, 1)

	err := svc.Update(context.Background(), 2, course.ID, CoursePatch{Title: strPtr("Hijacked")})
	assert.ErrorIs(t, err, ErrNotCourseOwner)

	stored := repo.courses[course.ID]
	assert.Equal(t, "Intro", stored.Title)
}

func TestUpdateMissingCourse(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	err := svc.Update(context.Background(), 1, 42, CoursePatch{Title: strPtr("New")})
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo)
	course := seedCourse(repo, 1)

	patch := CoursePatch{
		Title:         strPtr("Intro to Go"),
		EstimatedTime: strPtr("12 hours"),
	}
	require.NoError(t, svc.Update(context.Background(), 1, course.ID, patch))

	stored := repo.courses[course.ID]
	assert.Equal(t, "Intro to Go", stored.Title)
	assert.Equal(t, "Basics", stored.Description)
	require.NotNil(t, stored.EstimatedTime)
	assert.Equal(t, "12 hours", *stored.EstimatedTime)
	assert.Nil(t, stored.MaterialsNeeded)
}

func TestDeleteByNonOwner(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo)
	course := seedCourse(repo, 1)

	err := svc.Delete(context.Background(), 2, course.ID)
	assert.ErrorIs(t, err, ErrNotCourseOwner)
	assert.Contains(t, repo.courses, course.ID)
}

func TestDeleteByOwner(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo)
	course := seedCourse(repo, 1)

	require.NoError(t, svc.Delete(context.Background(), 1, course.ID))
	assert.NotContains(t, repo.courses, course.ID)
}

func TestDeleteMissingCourse(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	err := svc.Delete(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}
