package store

import (
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"

	"shophub_back_end/internal/database"
	"shophub_back_end/internal/models"
)

// OrderStore est le journal des commandes terminées. Strictement append-only :
// aucune mise à jour, aucune suppression, aucune fusion.
type OrderStore struct {
	docs *database.Store
	node *snowflake.Node
}

func NewOrderStore(docs *database.Store) (*OrderStore, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, errors.Wrap(err, "initialisation du générateur de numéros de commande")
	}
	return &OrderStore{docs: docs, node: node}, nil
}

// NextNumber génère un numéro de commande unique et croissant dans le temps.
func (s *OrderStore) NextNumber() string {
	return fmt.Sprintf("ORD-%d", s.node.Generate())
}

// All retourne le journal complet, dans l'ordre d'insertion.
func (s *OrderStore) All() ([]models.Order, error) {
	data, err := s.docs.Get(database.KeyOrders)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []models.Order{}, nil
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, errors.Wrap(err, "journal de commandes illisible")
	}
	return orders, nil
}

// FindByNumber retourne la commande ou models.ErrOrderNotFound.
func (s *OrderStore) FindByNumber(number string) (models.Order, error) {
	orders, err := s.All()
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range orders {
		if o.Number == number {
			return o, nil
		}
	}
	return models.Order{}, models.ErrOrderNotFound
}

// Append ajoute la commande au journal.
func (s *OrderStore) Append(order models.Order) error {
	orders, err := s.All()
	if err != nil {
		return err
	}
	orders = append(orders, order)

	data, err := json.Marshal(orders)
	if err != nil {
		return errors.Wrap(err, "encodage du journal de commandes")
	}
	return s.docs.Put(database.KeyOrders, data)
}

// CompleteOrder enregistre la commande ET vide le panier dans une seule
// transaction : soit les deux réussissent, soit rien ne change.
func (s *OrderStore) CompleteOrder(order models.Order) error {
	return s.docs.Update(func(tx *database.Tx) error {
		var orders []models.Order
		if data := tx.Get(database.KeyOrders); data != nil {
			if err := json.Unmarshal(data, &orders); err != nil {
				return errors.Wrap(err, "journal de commandes illisible")
			}
		}
		orders = append(orders, order)

		data, err := json.Marshal(orders)
		if err != nil {
			return errors.Wrap(err, "encodage du journal de commandes")
		}
		if err := tx.Put(database.KeyOrders, data); err != nil {
			return err
		}

		emptyCart, _ := json.Marshal([]models.CartItem{})
		return tx.Put(database.KeyCart, emptyCart)
	})
}
