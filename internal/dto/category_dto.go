package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Description *string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=120"`
	Description *string `json:"description"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
