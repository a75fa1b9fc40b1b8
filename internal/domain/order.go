package domain

// DeliveryMode selects how the customer receives the order.
type DeliveryMode string

const (
	DeliveryModePickup   DeliveryMode = "pickup"
	DeliveryModeDelivery DeliveryMode = "delivery"
)

// Label returns the French label used in the order summary.
func (m DeliveryMode) Label() string {
	if m == DeliveryModeDelivery {
		return "Livraison"
	}
	return "Retrait en magasin"
}

// CustomerInfo is the contact and delivery information collected at
// checkout. It is composed into the outgoing order message and never
// persisted.
type CustomerInfo struct {
	Name     string       `json:"name" validate:"required"`
	Phone    string       `json:"phone" validate:"required"`
	Address  string       `json:"address" validate:"required_if=Delivery delivery"`
	Note     string       `json:"note"`
	Delivery DeliveryMode `json:"delivery" validate:"required,oneof=pickup delivery"`
}
