package service

import (
	"strings"
	"testing"

	"caviste/internal/cart"
	"caviste/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWhatsAppNumber = "2250501025232"

func filledCart() *cart.Store {
	store := cart.NewStore()
	store.Add(domain.CartItem{
		ProductID: uuid.New(),
		Name:      "Coca-Cola Pack 12x33cl",
		Price:     5000,
		Quantity:  2,
	})
	store.Add(domain.CartItem{
		ProductID: uuid.New(),
		Name:      "Baileys Irish Cream 70cl",
		Price:     15000,
		Quantity:  1,
	})
	return store
}

func TestCheckout_RejectsMissingName(t *testing.T) {
	svc := NewCheckoutService(testWhatsAppNumber)
	store := filledCart()

	_, err := svc.Checkout(store, domain.CustomerInfo{
		Name:     "",
		Phone:    "0700000000",
		Delivery: domain.DeliveryModePickup,
	})

	require.Error(t, err)
	// Rejected checkout leaves the cart untouched.
	assert.Equal(t, 3, store.Count())
}

func TestCheckout_RejectsMissingPhone(t *testing.T) {
	svc := NewCheckoutService(testWhatsAppNumber)
	store := filledCart()

	_, err := svc.Checkout(store, domain.CustomerInfo{
		Name:     "Awa Koné",
		Delivery: domain.DeliveryModePickup,
	})

	require.Error(t, err)
	assert.Equal(t, 3, store.Count())
}

func TestCheckout_DeliveryRequiresAddress(t *testing.T) {
	svc := NewCheckoutService(testWhatsAppNumber)
	store := filledCart()

	_, err := svc.Checkout(store, domain.CustomerInfo{
		Name:     "Awa Koné",
		Phone:    "0700000000",
		Delivery: domain.DeliveryModeDelivery,
	})
	require.Error(t, err)
	assert.Equal(t, 3, store.Count())

	// Pickup never needs an address.
	_, err = svc.Checkout(store, domain.CustomerInfo{
		Name:     "Awa Koné",
		Phone:    "0700000000",
		Delivery: domain.DeliveryModePickup,
	})
	assert.NoError(t, err)
}

func TestCheckout_PickupSuccessClearsCartAndComposesMessage(t *testing.T) {
	svc := NewCheckoutService(testWhatsAppNumber)
	store := filledCart()

	result, err := svc.Checkout(store, domain.CustomerInfo{
		Name:     "Awa Koné",
		Phone:    "0700000000",
		Delivery: domain.DeliveryModePickup,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, store.Count())
	assert.Empty(t, store.Snapshot().Items)

	assert.Contains(t, result.Message, "Nouvelle commande de: Awa Koné")
	assert.Contains(t, result.Message, "Téléphone: 0700000000")
	assert.Contains(t, result.Message, "Retrait en magasin")
	assert.NotContains(t, result.Message, "Adresse:")

	// One line per item, in cart order.
	cocaIdx := strings.Index(result.Message, "- Coca-Cola Pack 12x33cl x2")
	baileysIdx := strings.Index(result.Message, "- Baileys Irish Cream 70cl x1")
	require.GreaterOrEqual(t, cocaIdx, 0)
	require.GreaterOrEqual(t, baileysIdx, 0)
	assert.Less(t, cocaIdx, baileysIdx)

	assert.Contains(t, result.Message, "pour 3 article(s)")
	assert.Equal(t, 3, result.ItemCount)
	assert.Equal(t, 25000, result.Total)
}

func TestCheckout_DeliveryIncludesAddressLine(t *testing.T) {
	svc := NewCheckoutService(testWhatsAppNumber)
	store := filledCart()

	result, err := svc.Checkout(store, domain.CustomerInfo{
		Name:     "Awa Koné",
		Phone:    "0700000000",
		Address:  "Cocody, Abidjan",
		Delivery: domain.DeliveryModeDelivery,
	})
	require.NoError(t, err)

	assert.Contains(t, result.Message, "Livraison")
	assert.Contains(t, result.Message, "Adresse: Cocody, Abidjan")
}

func TestCheckout_NoteIsAppendedOnlyWhenPresent(t *testing.T) {
	svc := NewCheckoutService(testWhatsAppNumber)

	withNote, err := svc.Checkout(filledCart(), domain.CustomerInfo{
		Name:     "Awa Koné",
		Phone:    "0700000000",
		Note:     "Appeler avant de livrer",
		Delivery: domain.DeliveryModePickup,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(withNote.Message, "Note: Appeler avant de livrer"))

	withoutNote, err := svc.Checkout(filledCart(), domain.CustomerInfo{
		Name:     "Awa Koné",
		Phone:    "0700000000",
		Delivery: domain.DeliveryModePickup,
	})
	require.NoError(t, err)
	assert.NotContains(t, withoutNote.Message, "Note:")
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc := NewCheckoutService(testWhatsAppNumber)

	_, err := svc.Checkout(cart.NewStore(), domain.CustomerInfo{
		Name:     "Awa Koné",
		Phone:    "0700000000",
		Delivery: domain.DeliveryModePickup,
	})

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_DeepLinkIsPercentEncoded(t *testing.T) {
	svc := NewCheckoutService(testWhatsAppNumber)

	result, err := svc.Checkout(filledCart(), domain.CustomerInfo{
		Name:     "Awa Koné",
		Phone:    "0700000000",
		Delivery: domain.DeliveryModePickup,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.WhatsAppURL, "https://wa.me/"+testWhatsAppNumber+"?text="))

	encoded := strings.TrimPrefix(result.WhatsAppURL, "https://wa.me/"+testWhatsAppNumber+"?text=")
	// URI component rules: spaces become %20, never +.
	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, " ")
	assert.Contains(t, encoded, "%20")
}
