package product

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/models"
	"shophub_back_end/internal/store"
)

// Handler expose le catalogue côté boutique et le CRUD côté admin.
type Handler struct {
	catalog *store.CatalogStore
}

func NewHandler(catalog *store.CatalogStore) *Handler {
	return &Handler{catalog: catalog}
}

//
// 🟢 GET /api/products
//
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.catalog.Load()
	if err != nil {
		log.Println("❌ Erreur chargement catalogue:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur chargement catalogue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

//
// 🟢 GET /api/products/:id
//
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	p, err := h.catalog.FindByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur chargement catalogue"})
		return
	}

	c.JSON(http.StatusOK, p)
}

//
// 🟢 POST /api/admin/products
//
func (h *Handler) CreateProduct(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Price       int64  `json:"price" binding:"required"`
		Rating      string `json:"rating" binding:"required"`
		Category    string `json:"category"`
		Description string `json:"description"`
		Image       string `json:"image" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	if input.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prix invalide"})
		return
	}

	p, err := h.catalog.Add(models.Product{
		Name:        input.Name,
		Price:       input.Price,
		Rating:      input.Rating,
		Category:    input.Category,
		Description: input.Description,
		Image:       input.Image,
	})
	if err != nil {
		log.Println("❌ Erreur ajout produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout produit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté avec succès",
		"product": p,
	})
}

//
// 🟢 PUT /api/admin/products/:id
//
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var input struct {
		Name        string `json:"name" binding:"required"`
		Price       int64  `json:"price" binding:"required"`
		Rating      string `json:"rating" binding:"required"`
		Category    string `json:"category"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	err = h.catalog.Update(models.Product{
		ID:          id,
		Name:        input.Name,
		Price:       input.Price,
		Rating:      input.Rating,
		Category:    input.Category,
		Description: input.Description,
		Image:       input.Image,
	})
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		log.Println("❌ Erreur mise à jour produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit mis à jour avec succès"})
}

//
// ❌ DELETE /api/admin/products/:id
//
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	if err := h.catalog.Delete(id); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			log.Printf("⚠️ Suppression d'un produit inconnu: %d", id)
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		log.Println("❌ Erreur suppression produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé avec succès"})
}

//
// 🟢 GET /api/admin/stats
//
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.catalog.Stats()
	if err != nil {
		log.Println("❌ Erreur stats catalogue:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur chargement catalogue"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
