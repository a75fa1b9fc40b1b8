package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var french = message.NewPrinter(language.French)

// Format renders an integer XOF amount the way the storefront displays
// prices: French digit grouping followed by the "F CFA" marker, no
// fraction digits. Deterministic and injective over non-negative
// amounts: the digits of the amount survive formatting unchanged.
func Format(amount int) string {
	return french.Sprintf("%d", amount) + " F CFA"
}
