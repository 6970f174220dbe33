package pa

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/checkout"
	"shophub_back_end/internal/models"
)

// Handler expose le pipeline de checkout : adresse → paiement → vérification →
// commande. Chaque étape est un endpoint, l'état vit dans le pipeline.
type Handler struct {
	pipeline *checkout.Pipeline
}

func NewHandler(pipeline *checkout.Pipeline) *Handler {
	return &Handler{pipeline: pipeline}
}

// respondError mappe la taxonomie d'erreurs du domaine sur les statuts HTTP.
func respondError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, models.ErrAttemptNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session de checkout introuvable"})
	case errors.Is(err, models.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
	case errors.Is(err, models.ErrCartEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
	case errors.Is(err, models.ErrWrongStep):
		c.JSON(http.StatusConflict, gin.H{"error": "Étape de vérification non atteinte"})
	case errors.Is(err, models.ErrCodeMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Code incorrect. Veuillez réessayer.", "retryable": true})
	default:
		log.Println("❌ Erreur checkout:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne du checkout"})
	}
}

//
// 🟢 POST /api/checkout/start
//
func (h *Handler) Start(c *gin.Context) {
	a := h.pipeline.Start()
	c.JSON(http.StatusOK, gin.H{
		"checkout_id": a.ID,
		"state":       a.State.String(),
	})
}

//
// 🟢 POST /api/checkout/:id/address
//
func (h *Handler) SubmitAddress(c *gin.Context) {
	var form models.AddressForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := h.pipeline.SubmitAddress(c.Param("id"), form); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": checkout.StatePayment.String()})
}

//
// 🟢 POST /api/checkout/:id/payment
//
func (h *Handler) SubmitPayment(c *gin.Context) {
	var form models.PaymentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	delivery, err := h.pipeline.SubmitPayment(c.Param("id"), form)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":    checkout.StateVerification.String(),
		"delivery": delivery,
	})
}

//
// 🔁 POST /api/checkout/:id/resend
//
func (h *Handler) ResendCode(c *gin.Context) {
	delivery, err := h.pipeline.ResendCode(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Nouveau code envoyé",
		"delivery": delivery,
	})
}

//
// ✅ POST /api/checkout/:id/complete
//
func (h *Handler) Complete(c *gin.Context) {
	var req struct {
		OTP string `json:"otp" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	order, err := h.pipeline.Complete(c.Param("id"), req.OTP)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Commande enregistrée avec succès",
		"order":   order,
	})
}

//
// 🧹 POST /api/checkout/:id/reset
//
func (h *Handler) Reset(c *gin.Context) {
	if err := h.pipeline.Reset(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": checkout.StateAddress.String()})
}

//
// ⚡ POST /api/checkout/quick
//
func (h *Handler) QuickBuy(c *gin.Context) {
	var form models.QuickBuyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	message, err := h.pipeline.QuickBuy(form)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
