package routes

import (
	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/handlers/payement"
	"shophub_back_end/internal/handlers/product"
	"shophub_back_end/internal/handlers/user"
)

// Handlers regroupe tous les handlers construits au démarrage. C'est le
// conteneur d'état explicite : aucun handler ne touche de variable globale.
type Handlers struct {
	Products *product.Handler
	Cart     *user.CartHandler
	Wishlist *user.WishlistHandler
	Orders   *user.OrderHandler
	Checkout *pa.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")

	// Catalogue (boutique)
	api.GET("/products", h.Products.ListProducts)
	api.GET("/products/:id", h.Products.GetProduct)

	// Catalogue (admin)
	admin := api.Group("/admin")
	admin.POST("/products", h.Products.CreateProduct)
	admin.PUT("/products/:id", h.Products.UpdateProduct)
	admin.DELETE("/products/:id", h.Products.DeleteProduct)
	admin.GET("/stats", h.Products.Stats)

	// Panier
	api.GET("/cart", h.Cart.GetCart)
	api.POST("/cart/add", h.Cart.AddToCart)
	api.DELETE("/cart/:productId", h.Cart.RemoveFromCart)
	api.DELETE("/cart", h.Cart.ClearCart)

	// Wishlist
	api.GET("/wishlist", h.Wishlist.GetWishlist)
	api.POST("/wishlist/toggle", h.Wishlist.ToggleWishlist)
	api.DELETE("/wishlist/:productId", h.Wishlist.RemoveFromWishlist)

	// Commandes & factures
	api.GET("/orders", h.Orders.GetOrders)
	api.GET("/orders/:number", h.Orders.GetOrderByNumber)
	api.GET("/orders/:number/invoice", h.Orders.DownloadInvoice)

	// Checkout
	api.POST("/checkout/start", h.Checkout.Start)
	api.POST("/checkout/:id/address", h.Checkout.SubmitAddress)
	api.POST("/checkout/:id/payment", h.Checkout.SubmitPayment)
	api.POST("/checkout/:id/resend", h.Checkout.ResendCode)
	api.POST("/checkout/:id/complete", h.Checkout.Complete)
	api.POST("/checkout/:id/reset", h.Checkout.Reset)
	api.POST("/checkout/quick", h.Checkout.QuickBuy)
}
