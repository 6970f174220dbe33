package config

import (
	"log"

	"github.com/joho/godotenv"
)

// Load charge le .env s'il existe. Toute la configuration passe ensuite par
// os.Getenv avec des valeurs par défaut au point d'usage.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
		return
	}
	log.Println("✅ Fichier .env chargé avec succès")
}
