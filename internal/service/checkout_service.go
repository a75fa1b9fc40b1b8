package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"caviste/internal/cart"
	"caviste/internal/domain"
	"caviste/internal/pricing"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// CheckoutResult is what the storefront needs after a successful
// checkout: the composed order text and the WhatsApp deep link carrying
// it. The cart is already cleared by the time the result is returned;
// there is no rollback if the link is never opened.
type CheckoutResult struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
	ItemCount   int    `json:"item_count"`
	Total       int    `json:"total"`
}

// CheckoutService validates customer information, serializes the order
// into the French summary the shop reads on WhatsApp, and hands back the
// deep link.
type CheckoutService interface {
	Checkout(store *cart.Store, info domain.CustomerInfo) (*CheckoutResult, error)
	ComposeOrderMessage(snapshot cart.Snapshot, info domain.CustomerInfo) string
}

type checkoutService struct {
	whatsAppNumber string
	validate       *validator.Validate
}

// NewCheckoutService creates a CheckoutService sending orders to the
// given WhatsApp number.
func NewCheckoutService(whatsAppNumber string) CheckoutService {
	return &checkoutService{
		whatsAppNumber: whatsAppNumber,
		validate:       validator.New(),
	}
}

// Checkout runs the validation gate, composes the order, builds the deep
// link and clears the cart. Validation failure leaves the cart
// untouched; success clears it unconditionally.
func (s *checkoutService) Checkout(store *cart.Store, info domain.CustomerInfo) (*CheckoutResult, error) {
	if err := s.validate.Struct(info); err != nil {
		return nil, err
	}

	snapshot := store.Snapshot()
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}

	message := s.ComposeOrderMessage(snapshot, info)
	result := &CheckoutResult{
		Message:     message,
		WhatsAppURL: s.deepLink(message),
		ItemCount:   snapshot.Count,
		Total:       snapshot.Total(),
	}

	store.Clear()
	return result, nil
}

// ComposeOrderMessage serializes the order deterministically: customer
// name, phone, delivery mode label, address (delivery only), one line
// per cart item in cart order, a total line, and an optional trailing
// note.
func (s *checkoutService) ComposeOrderMessage(snapshot cart.Snapshot, info domain.CustomerInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Nouvelle commande de: %s\n", info.Name)
	fmt.Fprintf(&b, "Téléphone: %s\n", info.Phone)
	fmt.Fprintf(&b, "Mode de récupération: %s\n", info.Delivery.Label())
	if info.Delivery == domain.DeliveryModeDelivery {
		fmt.Fprintf(&b, "Adresse: %s\n", info.Address)
	}

	b.WriteString("\n*Produits commandés:*\n")
	for _, item := range snapshot.Items {
		fmt.Fprintf(&b, "- %s x%d (%s)\n", item.Name, item.Quantity, pricing.Format(item.Price))
	}

	fmt.Fprintf(&b, "\nTotal: %s pour %d article(s)\n", pricing.Format(snapshot.Total()), snapshot.Count)

	if info.Note != "" {
		fmt.Fprintf(&b, "\nNote: %s", info.Note)
	}

	return b.String()
}

// deepLink percent-encodes the message per URI component rules (space as
// %20, not +) and appends it to the wa.me template.
func (s *checkoutService) deepLink(message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsAppNumber, encoded)
}
