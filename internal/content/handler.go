// Package content serves the marketing-site content API: blog posts and
// contact-form submissions.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fbai-pro/backend/internal/httpx"
	"github.com/fbai-pro/backend/internal/models"
	"github.com/fbai-pro/backend/internal/store"
	"github.com/fbai-pro/backend/internal/validate"
)

// ContentStore defines the persistence interface for site content.
type ContentStore interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.Post, error)
	InsertContactMessage(ctx context.Context, msg *models.ContactMessage) error
}

// Handler holds the content HTTP handlers.
type Handler struct {
	content ContentStore
	log     *zap.Logger
}

func NewHandler(content ContentStore, log *zap.Logger) *Handler {
	return &Handler{content: content, log: log}
}

// ListPosts returns all blog posts, newest first, bodies omitted.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.content.ListPosts(r.Context())
	if err != nil {
		h.log.Error("list posts", zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	for i := range posts {
		posts[i].Body = ""
	}

	httpx.JSON(w, http.StatusOK, map[string][]models.Post{"posts": posts})
}

// GetPost returns a single blog post by slug.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, err := h.content.GetPostBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.ErrorFrom(w, httpx.ErrNotFound)
			return
		}
		h.log.Error("get post", zap.String("slug", slug), zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]*models.Post{"post": post})
}

// Contact stores a contact-form submission.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		httpx.ErrorFrom(w, err)
		return
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}
	if err := h.content.InsertContactMessage(r.Context(), msg); err != nil {
		h.log.Error("insert contact message", zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]string{"message": "received"})
}
