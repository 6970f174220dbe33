package models

// AddressForm porte les champs de l'étape adresse du checkout. Seuls les champs
// consommés par la commande sont obligatoires ; state/zip/country restent libres.
type AddressForm struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

// PaymentForm est une saisie de carte purement décorative : aucune validation
// réelle du numéro, seulement la présence des champs.
type PaymentForm struct {
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// QuickBuyForm porte la commande rapide "Buy Now" d'un seul produit.
type QuickBuyForm struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
}
