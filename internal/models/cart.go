package models

// CartItem est un instantané du produit au moment de l'ajout, plus une quantité.
// Invariant : une seule ligne par identifiant produit dans le panier.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal retourne le montant de la ligne (prix unitaire × quantité).
func (i CartItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}
