package transport

import (
	"errors"
	"net/http"

	"bysam-catalog/internal/domain"
	"bysam-catalog/internal/middleware"
	"bysam-catalog/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductRequest represents a product create/update payload. Price is a
// pointer so an absent price is distinguishable from a zero one.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Brand       string   `json:"brand" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"required"`
	DupeOf      string   `json:"dupeOf"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	ImageURL    string   `json:"imageUrl" validate:"required"`
	Notes       []string `json:"notes"`
	Featured    bool     `json:"featured"`
}

// CategoryRequest represents a category create/update payload
type CategoryRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// CatalogHandler handles HTTP requests for products and categories
type CatalogHandler struct {
	catalog repository.CatalogRepository
	logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog repository.CatalogRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers all catalog routes. Mutations sit behind the
// auth and admin middleware.
func (h *CatalogHandler) RegisterRoutes(r chi.Router, authMiddleware, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{id}", h.GetProduct)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(adminMiddleware)
			r.Post("/", h.CreateProduct)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
			r.Post("/{id}/featured", h.ToggleFeatured)
		})
	})

	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(adminMiddleware)
			r.Post("/", h.CreateCategory)
			r.Put("/{id}", h.UpdateCategory)
			r.Delete("/{id}", h.DeleteCategory)
		})
	})
}

// ListProducts lists products, optionally narrowed by search term,
// highlight flag or category.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var products []domain.Product
	switch {
	case query.Get("q") != "":
		products = h.catalog.Search(r.Context(), query.Get("q"))
	case query.Get("featured") == "true":
		products = h.catalog.FeaturedProducts(r.Context())
	default:
		products = h.catalog.FilterByCategory(r.Context(), query.Get("category"))
	}

	if products == nil {
		products = []domain.Product{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// GetProduct returns a single product by id
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.FindProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondCatalogError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// CreateProduct adds a new product to the catalog
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), req.toDomain(""))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			middleware.RespondWithError(w, http.StatusBadRequest, "category does not exist")
			return
		}
		h.respondCatalogError(w, err)
		return
	}

	h.logger.Info("Product created", zap.String("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// UpdateProduct replaces an existing product
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), id, req.toDomain(id))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			middleware.RespondWithError(w, http.StatusBadRequest, "category does not exist")
			return
		}
		h.respondCatalogError(w, err)
		return
	}

	h.logger.Info("Product updated", zap.String("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// DeleteProduct removes a product from the catalog
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		h.respondCatalogError(w, err)
		return
	}

	h.logger.Info("Product deleted", zap.String("product_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// ToggleFeatured flips a product's highlight flag
func (h *CatalogHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.ToggleFeatured(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondCatalogError(w, err)
		return
	}

	h.logger.Info("Product highlight toggled",
		zap.String("product_id", product.ID),
		zap.Bool("featured", product.Featured),
	)
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// ListCategories lists all categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.catalog.ListCategories(r.Context())
	if categories == nil {
		categories = []domain.Category{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, categories)
}

// CreateCategory adds a new category
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCategory(w, r)
	if !ok {
		return
	}

	category, err := h.catalog.CreateCategory(r.Context(), req.toDomain())
	if err != nil {
		h.respondCatalogError(w, err)
		return
	}

	h.logger.Info("Category created", zap.String("category_id", category.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, category)
}

// UpdateCategory replaces an existing category, cascading an id rename
// to all referencing products
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	oldID := chi.URLParam(r, "id")

	req, ok := h.decodeCategory(w, r)
	if !ok {
		return
	}

	category, err := h.catalog.UpdateCategory(r.Context(), oldID, req.toDomain())
	if err != nil {
		h.respondCatalogError(w, err)
		return
	}

	h.logger.Info("Category updated",
		zap.String("old_id", oldID),
		zap.String("category_id", category.ID),
	)
	middleware.RespondWithJSON(w, http.StatusOK, category)
}

// DeleteCategory removes a category unless products still reference it
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalog.DeleteCategory(r.Context(), id); err != nil {
		h.respondCatalogError(w, err)
		return
	}

	h.logger.Info("Category deleted", zap.String("category_id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) decodeProduct(w http.ResponseWriter, r *http.Request) (*ProductRequest, bool) {
	var req ProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return nil, false
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return &req, true
}

func (h *CatalogHandler) decodeCategory(w http.ResponseWriter, r *http.Request) (*CategoryRequest, bool) {
	var req CategoryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Category validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return nil, false
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return &req, true
}

// respondCatalogError maps repository errors onto the HTTP error envelope
func (h *CatalogHandler) respondCatalogError(w http.ResponseWriter, err error) {
	var validationErr *repository.ValidationError
	var inUseErr *repository.CategoryInUseError

	switch {
	case errors.As(err, &validationErr):
		middleware.RespondWithErrorDetails(w, http.StatusBadRequest, validationErr.Error(),
			map[string]interface{}{"fields": validationErr.Fields})
	case errors.As(err, &inUseErr):
		middleware.RespondWithErrorDetails(w, http.StatusConflict, inUseErr.Error(),
			map[string]interface{}{"referencing_products": inUseErr.Count})
	case errors.Is(err, repository.ErrDuplicateCategoryID):
		middleware.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrCategoryNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("Catalog operation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (r *ProductRequest) toDomain(id string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        r.Name,
		Brand:       r.Brand,
		Category:    r.Category,
		Description: r.Description,
		DupeOf:      r.DupeOf,
		Price:       *r.Price,
		ImageURL:    r.ImageURL,
		Notes:       r.Notes,
		Featured:    r.Featured,
	}
}

// toDomain normalizes the id the same way the admin form does
func (r *CategoryRequest) toDomain() domain.Category {
	return domain.Category{
		ID:   domain.NormalizeCategoryID(r.ID),
		Name: r.Name,
	}
}
