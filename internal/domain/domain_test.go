package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProductCoverImage(t *testing.T) {
	product := Product{Images: []string{"cover.jpg", "back.jpg"}}
	assert.Equal(t, "cover.jpg", product.CoverImage())

	var bare Product
	assert.Empty(t, bare.CoverImage())
}

func TestDeliveryModeLabel(t *testing.T) {
	assert.Equal(t, "Retrait en magasin", DeliveryModePickup.Label())
	assert.Equal(t, "Livraison", DeliveryModeDelivery.Label())
}

func TestCartItemSubtotal(t *testing.T) {
	item := CartItem{ProductID: uuid.New(), Price: 5000, Quantity: 3}
	assert.Equal(t, 15000, item.Subtotal())
}
