package user

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/models"
	"shophub_back_end/internal/store"
	"shophub_back_end/internal/utils"
)

// OrderHandler expose le journal des commandes et la facture associée.
type OrderHandler struct {
	orders *store.OrderStore
}

func NewOrderHandler(orders *store.OrderStore) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// ✅ Récupère toutes les commandes enregistrées
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orders.All()
	if err != nil {
		log.Println("❌ Erreur lecture commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ✅ Récupère une commande spécifique par numéro
func (h *OrderHandler) GetOrderByNumber(c *gin.Context) {
	order, err := h.orders.FindByNumber(c.Param("number"))
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			log.Println("❌ Commande introuvable:", c.Param("number"))
			c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commande"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// 🧾 GET /api/orders/:number/invoice — facture HTML, ou PDF avec ?format=pdf
func (h *OrderHandler) DownloadInvoice(c *gin.Context) {
	order, err := h.orders.FindByNumber(c.Param("number"))
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commande"})
		return
	}

	qr, err := utils.GenerateOrderQR(order.Number)
	if err != nil {
		log.Println("⚠️ Erreur génération QR:", err)
		qr = "" // la facture reste valable sans QR
	}

	html, err := utils.RenderInvoiceHTML(order, qr)
	if err != nil {
		log.Println("❌ Erreur rendu facture:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur rendu facture"})
		return
	}

	if c.Query("format") == "pdf" {
		pdf, err := utils.RenderInvoicePDF(html)
		if err != nil {
			log.Println("❌ Erreur rendu PDF:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur rendu PDF"})
			return
		}
		c.Header("Content-Disposition", "attachment; filename="+order.Number+".pdf")
		c.Data(http.StatusOK, "application/pdf", pdf)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
