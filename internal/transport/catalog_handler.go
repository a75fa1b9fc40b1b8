package transport

import (
	"net/http"
	"strconv"

	"caviste/internal/catalog"
	"caviste/internal/middleware"
	"caviste/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for catalog browsing.
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// RegisterRoutes registers all catalog routes.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.Browse)
		r.Get("/featured", h.Featured)
		r.Get("/{productID}", h.GetProduct)
	})
	r.Get("/api/categories", h.Categories)
}

// Browse filters the catalog by the navigation query parameters:
// search, category, min_price, max_price, new, promo, limited.
func (h *CatalogHandler) Browse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := service.BrowseQuery{
		Search:      q.Get("search"),
		Category:    q.Get("category"),
		NewOnly:     q.Get("new") == "true",
		PromoOnly:   q.Get("promo") == "true",
		LimitedOnly: q.Get("limited") == "true",
	}

	if raw := q.Get("min_price"); raw != "" {
		minPrice, err := strconv.Atoi(raw)
		if err != nil || minPrice < 0 {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid min_price")
			return
		}
		query.MinPrice = &minPrice
	}
	if raw := q.Get("max_price"); raw != "" {
		maxPrice, err := strconv.Atoi(raw)
		if err != nil || maxPrice < 0 {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid max_price")
			return
		}
		query.MaxPrice = &maxPrice
	}

	products, err := h.catalogService.Browse(r.Context(), query)
	if err != nil {
		h.logger.Error("Browse failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to browse catalog")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// GetProduct resolves one product; unresolvable identifiers are a
// terminal 404.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), productID)
	if err != nil {
		if err == catalog.ErrProductNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to get product", zap.Error(err), zap.String("product_id", productID.String()))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Featured returns the landing page strip.
func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.FeaturedProducts(r.Context())
	if err != nil {
		h.logger.Error("Failed to list featured products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list featured products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// Categories returns the category taxonomy.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.Categories(r.Context())
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, categories)
}
