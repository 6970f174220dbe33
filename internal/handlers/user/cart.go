package user

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/models"
	"shophub_back_end/internal/store"
)

// CartHandler expose le panier. Chaque mutation renvoie le résumé recalculé
// pour que toutes les vues affichent exactement les mêmes montants.
type CartHandler struct {
	cart *store.CartStore
}

func NewCartHandler(cart *store.CartStore) *CartHandler {
	return &CartHandler{cart: cart}
}

//
// 🟢 GET /api/cart
//
func (h *CartHandler) GetCart(c *gin.Context) {
	summary, err := h.cart.Summary()
	if err != nil {
		log.Println("❌ Erreur lecture panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

//
// 🟢 POST /api/cart/add
//
func (h *CartHandler) AddToCart(c *gin.Context) {
	var input struct {
		ProductID int64 `json:"product_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	summary, err := h.cart.AddToCart(input.ProductID)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			log.Printf("⚠️ Ajout au panier d'un produit inconnu: %d", input.ProductID)
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		log.Println("❌ Erreur ajout au panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout au panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   summary.Items,
		"count":   summary.Count,
		"totals":  summary.Totals,
	})
}

//
// ❌ DELETE /api/cart/:productId
//
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	summary, err := h.cart.RemoveFromCart(productID)
	if err != nil {
		log.Println("❌ Erreur suppression du panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   summary.Items,
		"count":   summary.Count,
		"totals":  summary.Totals,
	})
}

//
// 🧹 DELETE /api/cart
//
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cart.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
