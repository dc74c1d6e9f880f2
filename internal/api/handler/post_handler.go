package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fivam/blog-api/internal/core/domain"
	"github.com/fivam/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /posts — all posts, newest first, author embedded.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}   domain.Post
// @Failure      500  {object}  errorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, posts)
}

// Search handles GET /posts/search?q= — case-insensitive substring match
// on title or content. An empty q returns every post.
//
// @Summary      Search posts by title or content
// @Tags         posts
// @Produce      json
// @Param        q    query     string  false  "Search term"
// @Success      200  {array}   domain.Post
// @Failure      500  {object}  errorResponse
// @Router       /posts/search [get]
func (h *PostHandler) Search(c echo.Context) error {
	posts, err := h.service.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /posts/:id.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  messageResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Post not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, post)
}

// Create handles POST /posts (bearer token required).
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  messageResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAuthorNotFound):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "author not found"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid input"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusCreated, post)
}

// Update handles PUT /posts/:id (bearer token required). Only title and
// content change; an update against a missing id is a client error, not a
// silent success.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  domain.Post
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  messageResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	post, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPostNotFound):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "post not found"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid input"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /posts/:id (bearer token required). Responds 204
// whether or not a post with the id existed.
//
// @Summary      Delete a post
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Failure      401  {object}  messageResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
	return c.NoContent(http.StatusNoContent)
}
