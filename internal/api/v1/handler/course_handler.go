package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"courseapi/internal/apierrors"
	"courseapi/internal/api/v1/dto"
	"courseapi/internal/middleware"
	"courseapi/internal/model"
	"courseapi/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: validate, logger: logger}
}

// ListCourses returns the projection of every course. Public, unpaginated.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list courses")
		apierrors.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	resp := make([]dto.CourseResponseDTO, 0, len(courses))
	for _, c := range courses {
		resp = append(resp, courseProjection(&c))
	}
	apierrors.WriteJSON(w, http.StatusOK, resp)
}

// GetCourse returns one course projection by id. Public.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := courseID(r)
	if err != nil {
		apierrors.WriteMessage(w, http.StatusNotFound, "Course not found")
		return
	}

	course, err := h.courseService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			apierrors.WriteMessage(w, http.StatusNotFound, "Course not found")
			return
		}
		h.logger.Error().Err(err).Msg("Failed to retrieve course")
		apierrors.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	apierrors.WriteJSON(w, http.StatusOK, courseProjection(course))
}

// CreateCourse creates a course owned by the authenticated user. Any
// payload-supplied userId is ignored.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		apierrors.WriteMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteMessage(w, http.StatusBadRequest, "title and description required")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		apierrors.WriteMessage(w, http.StatusBadRequest, "title and description required")
		return
	}

	course := &model.Course{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
		UserID:          user.ID,
	}
	created, err := h.courseService.Create(r.Context(), course)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to create course")
		apierrors.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	apierrors.WriteJSON(w, http.StatusCreated, dto.CourseCreatedResponseDTO{
		ID:              created.ID,
		Title:           created.Title,
		Description:     created.Description,
		EstimatedTime:   created.EstimatedTime,
		MaterialsNeeded: created.MaterialsNeeded,
		UserID:          created.UserID,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	})
}

// UpdateCourse overwrites the supplied fields of a course the authenticated
// user owns.
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		apierrors.WriteMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}

	id, err := courseID(r)
	if err != nil {
		apierrors.WriteMessage(w, http.StatusNotFound, "Course not found")
		return
	}

	var req dto.CourseUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteMessage(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}

	patch := service.CoursePatch{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	}
	if err := h.courseService.Update(r.Context(), user.ID, id, patch); err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			apierrors.WriteMessage(w, http.StatusNotFound, "Course not found")
		case errors.Is(err, service.ErrNotCourseOwner):
			apierrors.WriteMessage(w, http.StatusForbidden, "This user is not authorized to edit this course")
		default:
			h.logger.Error().Err(err).Msg("Failed to update course")
			apierrors.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteCourse destroys a course the authenticated user owns.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		apierrors.WriteMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}

	id, err := courseID(r)
	if err != nil {
		apierrors.WriteMessage(w, http.StatusNotFound, "Course not found")
		return
	}

	if err := h.courseService.Delete(r.Context(), user.ID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			apierrors.WriteMessage(w, http.StatusNotFound, "Course not found")
		case errors.Is(err, service.ErrNotCourseOwner):
			apierrors.WriteMessage(w, http.StatusForbidden, "This user is not authorized to delete this course")
		default:
			h.logger.Error().Err(err).Msg("Failed to delete course")
			apierrors.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// courseID parses the {id} route parameter. A non-numeric id can never match a
// record, so callers treat the error as not-found.
func courseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func courseProjection(c *model.Course) dto.CourseResponseDTO {
	return dto.CourseResponseDTO{
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
	}
}
