// Package products is the authenticated CRUD gateway for the Product
// resource. Every operation requires a resolved Principal and is scoped to
// the rows that principal owns.
package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fbai-pro/backend/internal/auth"
	"github.com/fbai-pro/backend/internal/httpx"
	"github.com/fbai-pro/backend/internal/models"
	"github.com/fbai-pro/backend/internal/store"
	"github.com/fbai-pro/backend/internal/validate"
)

// ProductStore defines the persistence interface for products. Single-row
// operations take the owner's userID and treat rows owned by anyone else as
// absent.
type ProductStore interface {
	CreateProduct(ctx context.Context, userID string, req models.CreateProductRequest) (*models.Product, error)
	ListProductsByUser(ctx context.Context, userID string) ([]models.Product, error)
	GetProduct(ctx context.Context, userID string, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, userID string, id int64, upd models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, userID string, id int64) error
}

// Handler holds the product HTTP handlers.
type Handler struct {
	products ProductStore
	log      *zap.Logger
}

func NewHandler(products ProductStore, log *zap.Logger) *Handler {
	return &Handler{products: products, log: log}
}

// Routes mounts the product endpoints; callers wrap them in RequireAuth.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

// List returns the caller's products, newest first. A caller with no rows
// gets an empty list, never an error.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		httpx.ErrorFrom(w, httpx.ErrUnauthorized)
		return
	}

	items, err := h.products.ListProductsByUser(r.Context(), p.UserID)
	if err != nil {
		h.log.Error("list products", zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if items == nil {
		items = []models.Product{}
	}

	httpx.JSON(w, http.StatusOK, map[string][]models.Product{"products": items})
}

// Create persists a new product owned by the caller.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		httpx.ErrorFrom(w, httpx.ErrUnauthorized)
		return
	}

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		httpx.ErrorFrom(w, err)
		return
	}

	product, err := h.products.CreateProduct(r.Context(), p.UserID, req)
	if err != nil {
		h.log.Error("create product", zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]*models.Product{"product": product})
}

// Get returns a single product owned by the caller.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		httpx.ErrorFrom(w, httpx.ErrUnauthorized)
		return
	}
	id, err := parseID(r)
	if err != nil {
		httpx.ErrorFrom(w, httpx.ErrNotFound)
		return
	}

	product, err := h.products.GetProduct(r.Context(), p.UserID, id)
	if err != nil {
		h.respondStoreErr(w, "get product", err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]*models.Product{"product": product})
}

// Update applies a partial update: only fields present in the body change.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		httpx.ErrorFrom(w, httpx.ErrUnauthorized)
		return
	}
	id, err := parseID(r)
	if err != nil {
		httpx.ErrorFrom(w, httpx.ErrNotFound)
		return
	}

	var req models.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if req.Title != nil && *req.Title == "" {
		httpx.ErrorFrom(w, httpx.Invalid("title must not be empty"))
		return
	}

	product, err := h.products.UpdateProduct(r.Context(), p.UserID, id, req)
	if err != nil {
		h.respondStoreErr(w, "update product", err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]*models.Product{"product": product})
}

// Delete removes a product owned by the caller.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		httpx.ErrorFrom(w, httpx.ErrUnauthorized)
		return
	}
	id, err := parseID(r)
	if err != nil {
		httpx.ErrorFrom(w, httpx.ErrNotFound)
		return
	}

	if err := h.products.DeleteProduct(r.Context(), p.UserID, id); err != nil {
		h.respondStoreErr(w, "delete product", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondStoreErr(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		httpx.ErrorFrom(w, httpx.ErrNotFound)
		return
	}
	h.log.Error(op, zap.Error(err))
	httpx.Error(w, http.StatusInternalServerError, "internal error")
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
