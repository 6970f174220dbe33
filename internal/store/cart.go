package store

import (
	"encoding/json"

	"github.com/pkg/errors"

	"shophub_back_end/internal/database"
	"shophub_back_end/internal/models"
	"shophub_back_end/internal/pricing"
)

// CartStore gère le panier et la wishlist, deux documents persistés séparément.
// Chaque mutation suit la même séquence : muter, persister, recalculer.
type CartStore struct {
	docs    *database.Store
	catalog *CatalogStore
}

func NewCartStore(docs *database.Store, catalog *CatalogStore) *CartStore {
	return &CartStore{docs: docs, catalog: catalog}
}

// CartSummary est le résumé recalculé après chaque mutation du panier.
type CartSummary struct {
	Items  []models.CartItem `json:"items"`
	Count  int               `json:"count"`
	Totals pricing.Totals    `json:"totals"`
}

func (s *CartStore) loadList(key string, out any) error {
	data, err := s.docs.Get(key)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	return errors.Wrapf(json.Unmarshal(data, out), "document %s illisible", key)
}

func (s *CartStore) saveList(key string, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return errors.Wrapf(err, "encodage du document %s", key)
	}
	return s.docs.Put(key, data)
}

// Items retourne les lignes du panier persisté.
func (s *CartStore) Items() ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.loadList(database.KeyCart, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Summary recharge le panier et recalcule les montants dépendants.
func (s *CartStore) Summary() (CartSummary, error) {
	items, err := s.Items()
	if err != nil {
		return CartSummary{}, err
	}
	return CartSummary{
		Items:  items,
		Count:  len(items),
		Totals: pricing.Calculate(items),
	}, nil
}

// AddToCart ajoute le produit au panier : ligne existante → quantité +1,
// sinon nouvelle ligne avec un instantané du produit et quantité 1.
func (s *CartStore) AddToCart(productID int64) (CartSummary, error) {
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return CartSummary{}, err
	}

	items, err := s.Items()
	if err != nil {
		return CartSummary{}, err
	}

	found := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{Product: product, Quantity: 1})
	}

	if err := s.saveList(database.KeyCart, items); err != nil {
		return CartSummary{}, err
	}
	return s.Summary()
}

// RemoveFromCart supprime la ligne du produit. Idempotent : retirer une ligne
// absente n'est pas une erreur.
func (s *CartStore) RemoveFromCart(productID int64) (CartSummary, error) {
	items, err := s.Items()
	if err != nil {
		return CartSummary{}, err
	}

	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}

	if err := s.saveList(database.KeyCart, kept); err != nil {
		return CartSummary{}, err
	}
	return s.Summary()
}

// Clear vide complètement le panier.
func (s *CartStore) Clear() error {
	return s.saveList(database.KeyCart, []models.CartItem{})
}

// Wishlist retourne les produits sauvegardés.
func (s *CartStore) Wishlist() ([]models.Product, error) {
	var list []models.Product
	if err := s.loadList(database.KeyWishlist, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ToggleWishlist bascule la présence du produit : présent → retiré,
// absent → ajouté. Retourne true si le produit vient d'être ajouté.
func (s *CartStore) ToggleWishlist(productID int64) (bool, error) {
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return false, err
	}

	list, err := s.Wishlist()
	if err != nil {
		return false, err
	}

	kept := make([]models.Product, 0, len(list))
	removed := false
	for _, p := range list {
		if p.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		kept = append(kept, product)
	}

	if err := s.saveList(database.KeyWishlist, kept); err != nil {
		return false, err
	}
	return !removed, nil
}

// RemoveFromWishlist retire explicitement le produit. Idempotent.
func (s *CartStore) RemoveFromWishlist(productID int64) error {
	list, err := s.Wishlist()
	if err != nil {
		return err
	}

	kept := make([]models.Product, 0, len(list))
	for _, p := range list {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	return s.saveList(database.KeyWishlist, kept)
}
