package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"courseapi/internal/apierrors"
	"courseapi/internal/api/v1/dto"
	"courseapi/internal/middleware"
	"courseapi/internal/model"
	"courseapi/internal/service"

	"github.com/rs/zerolog"
)

// UserHandler handles user-related endpoints
type UserHandler struct {
	userService service.UserService
	logger      zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// GetCurrentUser returns the profile of the authenticated identity. No lookup
// happens here; authentication already resolved the user.
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		apierrors.WriteMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}

	apierrors.WriteJSON(w, http.StatusOK, dto.UserResponseDTO{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	})
}

// CreateUser registers a new user. Validation failures return the full list of
// messages; on success the response is 201 with an empty body.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteMessage(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
	}
	if err := h.userService.Register(r.Context(), user, req.Password); err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			apierrors.WriteValidation(w, http.StatusBadRequest, vErr.Messages)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to register user")
		apierrors.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.WriteHeader(http.StatusCreated)
}
