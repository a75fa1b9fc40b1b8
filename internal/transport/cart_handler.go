package transport

import (
	"net/http"

	"caviste/internal/cart"
	"caviste/internal/catalog"
	"caviste/internal/domain"
	"caviste/internal/middleware"
	"caviste/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddItemRequest is the add-to-cart payload. The product is resolved
// server-side so the stored line always snapshots catalog data, never
// client input.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// SetQuantityRequest replaces a line's quantity.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest is the checkout payload.
type CheckoutRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Note     string `json:"note"`
	Delivery string `json:"delivery"`
}

// CartResponse renders a cart snapshot with its derived totals.
type CartResponse struct {
	Items []domain.CartItem `json:"items"`
	Count int               `json:"count"`
	Total int               `json:"total"`
}

// CartHandler handles HTTP requests for the session cart and checkout.
type CartHandler struct {
	carts           *cart.Manager
	catalogService  service.CatalogService
	checkoutService service.CheckoutService
	logger          *zap.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(
	carts *cart.Manager,
	catalogService service.CatalogService,
	checkoutService service.CheckoutService,
	logger *zap.Logger,
) *CartHandler {
	return &CartHandler{
		carts:           carts,
		catalogService:  catalogService,
		checkoutService: checkoutService,
		logger:          logger,
	}
}

// RegisterRoutes registers all cart routes behind the session cookie
// middleware.
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(middleware.CartSession)
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddItem)
		r.Put("/items/{productID}", h.SetQuantity)
		r.Delete("/items/{productID}", h.RemoveItem)
		r.Post("/checkout", h.Checkout)
	})
}

// GetCart renders the session cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, cartResponse(store.Snapshot()))
}

// AddItem resolves the product, snapshots it, and adds it to the cart.
// Out-of-stock products cannot be added at all; quantities beyond stock
// are rejected rather than clamped.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
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
		h.logger.Error("Failed to resolve product for cart", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add to cart")
		return
	}

	if product.Stock == 0 {
		middleware.RespondWithError(w, http.StatusConflict, "product is out of stock")
		return
	}
	if req.Quantity > product.Stock {
		middleware.RespondWithError(w, http.StatusUnprocessableEntity, "quantity exceeds available stock")
		return
	}

	store.Add(domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.CoverImage(),
		Quantity:  req.Quantity,
	})

	h.logger.Info("Item added to cart",
		zap.String("product_id", product.ID.String()),
		zap.Int("quantity", req.Quantity),
	)
	middleware.RespondWithJSON(w, http.StatusOK, cartResponse(store.Snapshot()))
}

// SetQuantity replaces a line's quantity. Quantities below 1 leave the
// cart unchanged, mirroring the store's rejected-mutation rule.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	store, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req SetQuantityRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	store.SetQuantity(productID, req.Quantity)
	middleware.RespondWithJSON(w, http.StatusOK, cartResponse(store.Snapshot()))
}

// RemoveItem deletes a line; absent lines are a silent no-op.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	store.Remove(productID)
	middleware.RespondWithJSON(w, http.StatusOK, cartResponse(store.Snapshot()))
}

// ClearCart empties the session cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	store.Clear()
	middleware.RespondWithJSON(w, http.StatusOK, cartResponse(store.Snapshot()))
}

// Checkout runs the validation gate and, on success, returns the
// WhatsApp deep link with the cart already cleared.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	store, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	info := domain.CustomerInfo{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Note:     req.Note,
		Delivery: domain.DeliveryMode(req.Delivery),
	}

	result, err := h.checkoutService.Checkout(store, info)
	if err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		if err == service.ErrEmptyCart {
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, "cart is empty")
			return
		}
		if _, ok := err.(*validator.InvalidValidationError); ok {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid checkout request")
			return
		}
		h.logger.Error("Checkout failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to checkout")
		return
	}

	h.logger.Info("Order dispatched",
		zap.Int("item_count", result.ItemCount),
		zap.Int("total", result.Total),
	)
	middleware.RespondWithJSON(w, http.StatusOK, result)
}

// sessionCart fetches the cart for the request's session, failing the
// request when the session middleware did not run.
func (h *CartHandler) sessionCart(w http.ResponseWriter, r *http.Request) (*cart.Store, bool) {
	session, ok := middleware.GetCartSession(r.Context())
	if !ok {
		h.logger.Error("Cart session not found in context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "cart session missing")
		return nil, false
	}
	return h.carts.Get(session), true
}

func cartResponse(snapshot cart.Snapshot) CartResponse {
	return CartResponse{
		Items: snapshot.Items,
		Count: snapshot.Count,
		Total: snapshot.Total(),
	}
}
