package handler

// errorResponse is the error envelope for 400/500 responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for 401/404 responses.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type createPostRequest struct {
	Title    string `json:"title"     validate:"required"`
	Content  string `json:"content"   validate:"required"`
	AuthorID string `json:"author_id" validate:"required"`
}

type updatePostRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}
