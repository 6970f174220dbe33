package store

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/pkg/errors"

	"shophub_back_end/internal/database"
	"shophub_back_end/internal/models"
)

// Produits par défaut, installés une seule fois au tout premier chargement.
// Un catalogue explicitement vidé par l'admin reste vide.
var defaultProducts = []models.Product{
	{
		ID:          1,
		Name:        "Wireless Headphones",
		Price:       2499,
		Emoji:       "🎧",
		Rating:      "⭐⭐⭐⭐⭐",
		Category:    "Headphones",
		Description: "High-quality wireless headphones",
		Image:       "data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'%3E%3Ccircle cx='30' cy='40' r='15' fill='%23ff9500'/%3E%3Ccircle cx='70' cy='40' r='15' fill='%23ff9500'/%3E%3Crect x='40' y='35' width='20' height='30' fill='%23ff9500'/%3E%3C/svg%3E",
	},
	{
		ID:          2,
		Name:        "Smart Watch",
		Price:       5999,
		Emoji:       "⌚",
		Rating:      "⭐⭐⭐⭐",
		Category:    "Watch",
		Description: "Premium smart watch",
		Image:       "data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'%3E%3Crect x='20' y='10' width='60' height='80' rx='10' fill='%2327ae60'/%3E%3Ccircle cx='50' cy='50' r='30' fill='%23fff'/%3E%3C/svg%3E",
	},
}

// CatalogStore gère la liste des produits vendables. Document entier relu et
// remplacé à chaque mutation, jamais de mise à jour partielle.
type CatalogStore struct {
	docs *database.Store
}

func NewCatalogStore(docs *database.Store) *CatalogStore {
	return &CatalogStore{docs: docs}
}

// Load retourne le catalogue persisté. Clé jamais écrite → installe les
// produits par défaut. Document présent mais illisible → erreur fatale pour
// l'appelant, on ne jette jamais silencieusement les données de l'utilisateur.
func (s *CatalogStore) Load() ([]models.Product, error) {
	data, err := s.docs.Get(database.KeyProducts)
	if err != nil {
		return nil, err
	}

	if data == nil {
		if err := s.Save(defaultProducts); err != nil {
			return nil, err
		}
		log.Println("✅ Catalogue initialisé avec les produits par défaut")
		return append([]models.Product(nil), defaultProducts...), nil
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, errors.Wrap(err, "catalogue persisté illisible")
	}
	return products, nil
}

// Save remplace le catalogue entier.
func (s *CatalogStore) Save(products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return errors.Wrap(err, "encodage du catalogue")
	}
	return s.docs.Put(database.KeyProducts, data)
}

// FindByID retourne le produit ou models.ErrProductNotFound.
func (s *CatalogStore) FindByID(id int64) (models.Product, error) {
	products, err := s.Load()
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, models.ErrProductNotFound
}

// Add ajoute un produit. Sans identifiant fourni, on en dérive un du timestamp
// milliseconde courant, comme la page d'admin historique.
func (s *CatalogStore) Add(p models.Product) (models.Product, error) {
	products, err := s.Load()
	if err != nil {
		return models.Product{}, err
	}

	if p.ID == 0 {
		p.ID = time.Now().UnixMilli()
	}
	if p.Emoji == "" {
		p.Emoji = EmojiForCategory(p.Category)
	}

	products = append(products, p)
	if err := s.Save(products); err != nil {
		return models.Product{}, err
	}

	log.Printf("✅ Produit %d (%s) ajouté au catalogue", p.ID, p.Name)
	return p, nil
}

// Update remplace le produit portant le même identifiant.
func (s *CatalogStore) Update(p models.Product) error {
	products, err := s.Load()
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID == p.ID {
			if p.Image == "" {
				// Mise à jour sans nouvelle image : on garde l'ancienne.
				p.Image = products[i].Image
			}
			p.Emoji = EmojiForCategory(p.Category)
			products[i] = p
			return s.Save(products)
		}
	}
	return models.ErrProductNotFound
}

// Delete retire le produit. Supprimer le dernier produit laisse un document
// vide persisté — Load ne doit pas le confondre avec un premier démarrage.
func (s *CatalogStore) Delete(id int64) error {
	products, err := s.Load()
	if err != nil {
		return err
	}

	kept := make([]models.Product, 0, len(products))
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return models.ErrProductNotFound
	}

	if err := s.Save(kept); err != nil {
		return err
	}
	log.Printf("🗑️ Produit %d supprimé du catalogue", id)
	return nil
}

// Stats alimente le tableau de bord admin : nombre de produits et valeur
// cumulée des prix unitaires.
func (s *CatalogStore) Stats() (models.CatalogStats, error) {
	products, err := s.Load()
	if err != nil {
		return models.CatalogStats{}, err
	}

	stats := models.CatalogStats{TotalProducts: len(products)}
	for _, p := range products {
		stats.TotalValue += p.Price
	}
	return stats, nil
}

var categoryEmojis = []struct {
	key   string
	emoji string
}{
	{"electronics", "📱"},
	{"headphones", "🎧"},
	{"watch", "⌚"},
	{"cables", "🔌"},
	{"power", "🔋"},
	{"speakers", "🔊"},
	{"computer", "💻"},
	{"keyboard", "⌨️"},
	{"mouse", "🖱️"},
	{"camera", "📹"},
	{"protection", "📦"},
}

// EmojiForCategory retourne l'icône de repli associée à la catégorie
// (correspondance par sous-chaîne, 🛍️ par défaut).
func EmojiForCategory(category string) string {
	key := strings.ToLower(category)
	for _, ce := range categoryEmojis {
		if strings.Contains(key, ce.key) {
			return ce.emoji
		}
	}
	return "🛍️"
}
