package checkout

import (
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"shophub_back_end/internal/models"
	"shophub_back_end/internal/pricing"
	"shophub_back_end/internal/store"
)

// State est l'étape courante d'une tentative de checkout. Le flux est linéaire :
// Address → Payment → Verification → Completed, réentrant depuis Address.
type State int

const (
	StateAddress State = iota
	StatePayment
	StateVerification
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateAddress:
		return "address"
	case StatePayment:
		return "payment"
	case StateVerification:
		return "verification"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Attempt est une tentative de checkout en cours. Purement en mémoire : le code
// de vérification n'est jamais persisté et meurt avec la tentative.
type Attempt struct {
	ID        string             `json:"id"`
	State     State              `json:"-"`
	Address   models.AddressForm `json:"address"`
	Payment   models.PaymentForm `json:"-"`
	CreatedAt time.Time          `json:"created_at"`

	code string
}

// CodeSender livre le code de vérification par un canal séparé de l'affichage.
// Sans sender configuré, le pipeline fonctionne en mode démo : le code est
// renvoyé à l'appelant pour affichage direct.
type CodeSender interface {
	SendCode(email, phone, code string) error
}

// Pipeline orchestre le checkout au-dessus des stores. Les tentatives vivent en
// mémoire ; les commandes terminées passent par le journal persisté.
type Pipeline struct {
	mu       sync.Mutex
	attempts map[string]*Attempt

	catalog *store.CatalogStore
	cart    *store.CartStore
	orders  *store.OrderStore
	sender  CodeSender
}

func NewPipeline(catalog *store.CatalogStore, cart *store.CartStore, orders *store.OrderStore, sender CodeSender) *Pipeline {
	return &Pipeline{
		attempts: make(map[string]*Attempt),
		catalog:  catalog,
		cart:     cart,
		orders:   orders,
		sender:   sender,
	}
}

// Start ouvre une nouvelle tentative à l'étape adresse.
func (p *Pipeline) Start() *Attempt {
	a := &Attempt{
		ID:        uuid.NewString(),
		State:     StateAddress,
		CreatedAt: time.Now(),
	}

	p.mu.Lock()
	p.attempts[a.ID] = a
	p.mu.Unlock()

	return a
}

func (p *Pipeline) attempt(id string) (*Attempt, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	a, ok := p.attempts[id]
	if !ok {
		return nil, models.ErrAttemptNotFound
	}
	return a, nil
}

func validateAddress(f models.AddressForm) error {
	switch {
	case f.FullName == "":
		return models.MissingField("fullName")
	case f.Email == "":
		return models.MissingField("email")
	case f.Phone == "":
		return models.MissingField("phone")
	case f.Address == "":
		return models.MissingField("address")
	case f.City == "":
		return models.MissingField("city")
	}
	return nil
}

func validatePayment(f models.PaymentForm) error {
	switch {
	case f.CardName == "":
		return models.MissingField("cardName")
	case f.CardNumber == "":
		return models.MissingField("cardNumber")
	case f.Expiry == "":
		return models.MissingField("expiry")
	case f.CVV == "":
		return models.MissingField("cvv")
	}
	return nil
}

// SubmitAddress enregistre l'adresse et passe à l'étape paiement. La transition
// n'est gardée que par la présence des champs consommés par la commande.
func (p *Pipeline) SubmitAddress(id string, form models.AddressForm) error {
	a, err := p.attempt(id)
	if err != nil {
		return err
	}
	if err := validateAddress(form); err != nil {
		return err
	}

	a.Address = form
	a.State = StatePayment
	return nil
}

// Delivery décrit comment le code de vérification est parti : le téléphone
// masqué toujours, le code en clair uniquement en mode démo.
type Delivery struct {
	MaskedPhone string `json:"maskedPhone"`
	DemoCode    string `json:"demoCode,omitempty"`
}

// SubmitPayment enregistre la carte (présence des champs uniquement, aucune
// validation réelle) et entre en vérification, ce qui génère un code frais.
func (p *Pipeline) SubmitPayment(id string, form models.PaymentForm) (Delivery, error) {
	a, err := p.attempt(id)
	if err != nil {
		return Delivery{}, err
	}
	if err := validatePayment(form); err != nil {
		return Delivery{}, err
	}

	a.Payment = form
	a.State = StateVerification
	return p.deliverCode(a)
}

// ResendCode régénère un code frais ; l'ancien devient invalide immédiatement.
func (p *Pipeline) ResendCode(id string) (Delivery, error) {
	a, err := p.attempt(id)
	if err != nil {
		return Delivery{}, err
	}
	if a.State != StateVerification {
		return Delivery{}, models.ErrWrongStep
	}
	return p.deliverCode(a)
}

func (p *Pipeline) deliverCode(a *Attempt) (Delivery, error) {
	a.code = generateCode()
	d := Delivery{MaskedPhone: maskPhone(a.Address.Phone)}

	if p.sender == nil {
		// Mode démo : aucun canal de livraison, le code est montré à
		// l'utilisateur qui devra le ressaisir.
		d.DemoCode = a.code
		return d, nil
	}

	if err := p.sender.SendCode(a.Address.Email, a.Address.Phone, a.code); err != nil {
		return Delivery{}, err
	}
	log.Printf("📤 Code de vérification envoyé pour la tentative %s (%s)", a.ID, d.MaskedPhone)
	return d, nil
}

// Complete vérifie le code puis matérialise la commande. La transition est
// atomique : commande enregistrée et panier vidé ensemble, ou ni l'un ni
// l'autre. En cas de code erroné la tentative reste en vérification.
func (p *Pipeline) Complete(id, code string) (models.Order, error) {
	a, err := p.attempt(id)
	if err != nil {
		return models.Order{}, err
	}
	if a.State != StateVerification {
		return models.Order{}, models.ErrWrongStep
	}

	// Re-validation finale : du temps a pu passer depuis la saisie.
	if err := validateAddress(a.Address); err != nil {
		return models.Order{}, err
	}
	if err := validatePayment(a.Payment); err != nil {
		return models.Order{}, err
	}

	items, err := p.cart.Items()
	if err != nil {
		return models.Order{}, err
	}
	if len(items) == 0 {
		return models.Order{}, models.ErrCartEmpty
	}

	if len(code) != 4 || code != a.code {
		return models.Order{}, models.ErrCodeMismatch
	}

	totals := pricing.Calculate(items)
	now := time.Now()
	order := models.Order{
		Number:       p.orders.NextNumber(),
		OrderDate:    now.Format("02/01/2006"),
		CreatedAt:    now,
		CustomerName: a.Address.FullName,
		Email:        a.Address.Email,
		Phone:        a.Address.Phone,
		Address:      a.Address.Address,
		City:         a.Address.City,
		Items:        items,
		Subtotal:     totals.Subtotal,
		Shipping:     totals.Shipping,
		Tax:          totals.Tax,
		Total:        totals.Total,
	}

	if err := p.orders.CompleteOrder(order); err != nil {
		return models.Order{}, err
	}

	a.State = StateCompleted
	log.Printf("✅ Commande %s enregistrée (%d articles, total %d)", order.Number, len(order.Items), order.Total)
	return order, nil
}

// Reset ramène explicitement la tentative à l'étape adresse, champs effacés.
// Abandonner sans Reset conserve les valeurs saisies.
func (p *Pipeline) Reset(id string) error {
	a, err := p.attempt(id)
	if err != nil {
		return err
	}

	a.Address = models.AddressForm{}
	a.Payment = models.PaymentForm{}
	a.code = ""
	a.State = StateAddress
	return nil
}

// QuickBuy est la commande rapide "Buy Now" : validation des champs et message
// de confirmation, rien n'est persisté.
func (p *Pipeline) QuickBuy(form models.QuickBuyForm) (string, error) {
	product, err := p.catalog.FindByID(form.ProductID)
	if err != nil {
		return "", err
	}

	switch {
	case form.Name == "":
		return "", models.MissingField("name")
	case form.Phone == "":
		return "", models.MissingField("phone")
	case form.Address == "":
		return "", models.MissingField("address")
	case form.City == "":
		return "", models.MissingField("city")
	}

	return fmt.Sprintf("Commande confirmée ! %s sera livré à %s, %s", product.Name, form.Address, form.City), nil
}

// generateCode tire un code à 4 chiffres uniforme dans [1000, 9999].
func generateCode() string {
	return fmt.Sprintf("%d", 1000+rand.IntN(9000))
}

// maskPhone ne laisse visibles que les deux derniers chiffres.
func maskPhone(phone string) string {
	if len(phone) <= 2 {
		return phone
	}
	return strings.Repeat("*", len(phone)-2) + phone[len(phone)-2:]
}
