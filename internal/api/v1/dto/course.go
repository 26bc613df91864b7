package dto

import "time"

// CourseCreateDTO is used for incoming course creation requests. UserID is
// accepted for wire compatibility but ignored; ownership always comes from the
// authenticated identity.
type CourseCreateDTO struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	EstimatedTime   *string `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string `json:"materialsNeeded,omitempty"`
	UserID          *int64  `json:"userId,omitempty"`
}

// CourseUpdateDTO is used for incoming course update requests. Nil fields are
// left unchanged.
type CourseUpdateDTO struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	EstimatedTime   *string `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string `json:"materialsNeeded,omitempty"`
}

// CourseResponseDTO is the public course projection returned by list and get.
type CourseResponseDTO struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
	UserID          int64   `json:"userId"`
}

// CourseCreatedResponseDTO is the full record returned on creation.
type CourseCreatedResponseDTO struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EstimatedTime   *string   `json:"estimatedTime"`
	MaterialsNeeded *string   `json:"materialsNeeded"`
	UserID          int64     `json:"userId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
