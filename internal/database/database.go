package database

import (
	"log"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// =============================================
// STOCKAGE LOCAL (bbolt, un seul fichier)
// =============================================
//
// Chaque document est un blob JSON complet sous sa propre clé, relu et remplacé
// en entier à chaque écriture. Les clés reprennent celles du front historique.

const bucketName = "shophub"

// Clés des documents persistés.
const (
	KeyProducts = "shopProducts"
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
	KeyOrders   = "orders"
)

// Store encapsule le fichier bbolt. Il est passé explicitement aux stores
// métier plutôt qu'exposé en variable globale.
type Store struct {
	db *bolt.DB
}

// Open ouvre (ou crée) le fichier de données et garantit le bucket.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "ouverture du stockage %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "initialisation du bucket")
	}

	log.Println("✅ Stockage local ouvert :", path)
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get retourne le document sous key, ou nil s'il n'a jamais été écrit.
// La copie est nécessaire : bbolt invalide le slice à la fin de la transaction.
func (s *Store) Get(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(key)); v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "lecture du document %s", key)
	}
	return out, nil
}

// Put remplace le document entier sous key.
func (s *Store) Put(key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), value)
	})
	return errors.Wrapf(err, "écriture du document %s", key)
}

// Update exécute fn dans une seule transaction d'écriture. C'est ce qui donne
// au checkout son "ajout de commande + vidage du panier" atomique.
func (s *Store) Update(fn func(tx *Tx) error) error {
	return s.db.Update(func(btx *bolt.Tx) error {
		return fn(&Tx{bucket: btx.Bucket([]byte(bucketName))})
	})
}

// Tx expose les documents à l'intérieur d'une transaction d'écriture.
type Tx struct {
	bucket *bolt.Bucket
}

func (t *Tx) Get(key string) []byte {
	if v := t.bucket.Get([]byte(key)); v != nil {
		return append([]byte(nil), v...)
	}
	return nil
}

func (t *Tx) Put(key string, value []byte) error {
	return t.bucket.Put([]byte(key), value)
}
