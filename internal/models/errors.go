package models

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound : l'opération référence un produit qui n'existe plus.
	// Jamais fatal — l'appelant loggue un avertissement et n'altère rien.
	ErrProductNotFound = errors.New("produit introuvable")

	// ErrOrderNotFound : commande inconnue du journal.
	ErrOrderNotFound = errors.New("commande introuvable")

	// ErrCartEmpty : le checkout exige un panier non vide.
	ErrCartEmpty = errors.New("panier vide")

	// ErrCodeMismatch : le code saisi ne correspond pas au dernier code généré.
	// L'étape de vérification reste en place, l'utilisateur peut réessayer.
	ErrCodeMismatch = errors.New("code de vérification incorrect")

	// ErrAttemptNotFound : identifiant de session de checkout inconnu.
	ErrAttemptNotFound = errors.New("session de checkout introuvable")

	// ErrWrongStep : opération demandée hors de l'étape qui la permet.
	ErrWrongStep = errors.New("étape de vérification non atteinte")
)

// ValidationError signale un champ obligatoire manquant ou invalide. Elle est
// remontée telle quelle à l'utilisateur et ne fait jamais avancer le pipeline.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("champ requis manquant : %s", e.Field)
}

// MissingField construit la ValidationError du premier champ vide.
func MissingField(field string) error {
	return &ValidationError{Field: field}
}
