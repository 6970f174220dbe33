package models

import "time"

// Order est un reçu : une fois créé, la liste d'articles et les montants ne
// changent plus jamais, même si le catalogue ou le panier évoluent ensuite.
type Order struct {
	Number       string     `json:"orderNumber"`
	OrderDate    string     `json:"orderDate"`
	CreatedAt    time.Time  `json:"created_at"`
	CustomerName string     `json:"customerName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	Items        []CartItem `json:"items"`
	Subtotal     int64      `json:"subtotal"`
	Shipping     int64      `json:"shipping"`
	Tax          int64      `json:"tax"`
	Total        int64      `json:"total"`
}
