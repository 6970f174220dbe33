package models

// Product est une fiche produit du catalogue. L'identifiant est dérivé d'un
// timestamp milliseconde à la création (les produits par défaut gardent 1 et 2).
// L'image est une data URL fournie telle quelle par la page d'admin.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Emoji       string `json:"emoji"`
	Rating      string `json:"rating"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CatalogStats alimente les compteurs du tableau de bord admin.
type CatalogStats struct {
	TotalProducts int   `json:"total_products"`
	TotalValue    int64 `json:"total_value"`
}
