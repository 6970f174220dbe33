package pricing

import (
	"math"

	"shophub_back_end/internal/models"
)

// Frais fixes de la boutique. Tous les montants sont en unités entières de
// devise, aucun centime n'est manipulé.
const (
	FlatShippingFee int64   = 100
	TaxRate         float64 = 0.10
)

// Totals regroupe les montants dérivés d'un panier. Toutes les vues (résumé du
// panier, checkout, facture) passent par Calculate pour afficher exactement les
// mêmes chiffres.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// Calculate dérive sous-total, livraison forfaitaire, taxe arrondie et total.
// Panier vide → tout à zéro, livraison comprise.
func Calculate(items []models.CartItem) Totals {
	var subtotal int64
	for _, item := range items {
		subtotal += item.LineTotal()
	}

	var shipping int64
	if subtotal > 0 {
		shipping = FlatShippingFee
	}

	tax := int64(math.Round(float64(subtotal) * TaxRate))

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
