package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/checkout"
	"shophub_back_end/internal/config"
	"shophub_back_end/internal/database"
	"shophub_back_end/internal/handlers/payement"
	"shophub_back_end/internal/handlers/product"
	"shophub_back_end/internal/handlers/user"
	"shophub_back_end/internal/routes"
	"shophub_back_end/internal/store"
	"shophub_back_end/internal/utils"
)

func main() {
	config.Load()

	dbPath := os.Getenv("SHOP_DB_PATH")
	if dbPath == "" {
		dbPath = "shophub.db"
	}

	docs, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("❌ Impossible d'ouvrir le stockage local : %v", err)
	}
	defer docs.Close()

	catalog := store.NewCatalogStore(docs)
	cart := store.NewCartStore(docs, catalog)
	orders, err := store.NewOrderStore(docs)
	if err != nil {
		log.Fatalf("❌ Impossible d'initialiser le journal de commandes : %v", err)
	}

	// Amorce le catalogue au premier démarrage et refuse de tourner sur des
	// données corrompues plutôt que de les écraser.
	if _, err := catalog.Load(); err != nil {
		log.Fatalf("❌ Catalogue illisible : %v", err)
	}

	// nil en l'absence de SMTP_HOST : le pipeline reste en mode démo.
	var sender checkout.CodeSender
	if smtp := utils.NewSMTPSenderFromEnv(); smtp != nil {
		sender = smtp
	}

	pipeline := checkout.NewPipeline(catalog, cart, orders, sender)

	r := gin.Default()
	r.Use(cors.Default())

	routes.RegisterRoutes(r, routes.Handlers{
		Products: product.NewHandler(catalog),
		Cart:     user.NewCartHandler(cart),
		Wishlist: user.NewWishlistHandler(cart),
		Orders:   user.NewOrderHandler(orders),
		Checkout: pa.NewHandler(pipeline),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur ShopHub lancé sur le port", port)
	r.Run(":" + port)
}
