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

// WishlistHandler expose la liste d'envies, à bascule : un même produit ajouté
// deux fois revient à son état initial.
type WishlistHandler struct {
	cart *store.CartStore
}

func NewWishlistHandler(cart *store.CartStore) *WishlistHandler {
	return &WishlistHandler{cart: cart}
}

// GetWishlist récupère la wishlist persistée.
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	items, err := h.cart.Wishlist()
	if err != nil {
		log.Println("❌ Erreur lecture wishlist:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture wishlist"})
		return
	}
	if items == nil {
		items = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ToggleWishlist bascule la présence du produit et renvoie le sens de la
// bascule pour que le front affiche le bon message.
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	var req struct {
		ProductID int64 `json:"product_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	added, err := h.cart.ToggleWishlist(req.ProductID)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			log.Printf("⚠️ Bascule wishlist d'un produit inconnu: %d", req.ProductID)
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		log.Println("❌ Erreur bascule wishlist:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur bascule wishlist"})
		return
	}

	message := "Produit retiré de la wishlist"
	if added {
		message = "Produit ajouté à la wishlist"
		log.Printf("⭐ Produit %d ajouté à la wishlist", req.ProductID)
	} else {
		log.Printf("🗑️ Produit %d retiré de la wishlist", req.ProductID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"added":   added,
	})
}

// RemoveFromWishlist retire un produit de la wishlist.
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	if err := h.cart.RemoveFromWishlist(productID); err != nil {
		log.Println("❌ Erreur suppression wishlist:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression de la wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit retiré de la wishlist"})
}
