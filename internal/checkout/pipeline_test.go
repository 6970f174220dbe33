package checkout

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shophub_back_end/internal/database"
	"shophub_back_end/internal/models"
	"shophub_back_end/internal/store"
)

type fixture struct {
	pipeline *Pipeline
	cart     *store.CartStore
	orders   *store.OrderStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	docs, err := database.Open(filepath.Join(t.TempDir(), "shophub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { docs.Close() })

	catalog := store.NewCatalogStore(docs)
	_, err = catalog.Load()
	require.NoError(t, err)

	cart := store.NewCartStore(docs, catalog)
	orders, err := store.NewOrderStore(docs)
	require.NoError(t, err)

	return &fixture{
		pipeline: NewPipeline(catalog, cart, orders, nil),
		cart:     cart,
		orders:   orders,
	}
}

var testAddress = models.AddressForm{
	FullName: "Asha Verma",
	Email:    "asha@example.com",
	Phone:    "9876543210",
	Address:  "12 MG Road",
	City:     "Bengaluru",
}

var testPayment = models.PaymentForm{
	CardName:   "Asha Verma",
	CardNumber: "4111111111111111",
	Expiry:     "12/27",
	CVV:        "123",
}

// Déroule adresse + paiement et retourne la tentative en vérification.
func (f *fixture) reachVerification(t *testing.T) (string, Delivery) {
	t.Helper()

	a := f.pipeline.Start()
	require.NoError(t, f.pipeline.SubmitAddress(a.ID, testAddress))
	delivery, err := f.pipeline.SubmitPayment(a.ID, testPayment)
	require.NoError(t, err)
	return a.ID, delivery
}

func TestPipeline_HappyPath(t *testing.T) {
	f := newFixture(t)

	_, err := f.cart.AddToCart(1)
	require.NoError(t, err)
	_, err = f.cart.AddToCart(2)
	require.NoError(t, err)
	_, err = f.cart.AddToCart(2)
	require.NoError(t, err)

	before, err := f.cart.Items()
	require.NoError(t, err)

	id, delivery := f.reachVerification(t)
	require.Len(t, delivery.DemoCode, 4, "mode démo : le code est exposé à l'appelant")
	assert.Equal(t, "********10", delivery.MaskedPhone)

	order, err := f.pipeline.Complete(id, delivery.DemoCode)
	require.NoError(t, err)

	assert.Equal(t, "Asha Verma", order.CustomerName)
	assert.Equal(t, before, order.Items, "la commande fige l'instantané du panier")
	assert.Equal(t, int64(14497), order.Subtotal)
	assert.Equal(t, int64(100), order.Shipping)
	assert.Equal(t, int64(1450), order.Tax)
	assert.Equal(t, int64(16047), order.Total)
	assert.Contains(t, order.Number, "ORD-")

	// Exactement une commande au journal, panier vidé.
	all, err := f.orders.All()
	require.NoError(t, err)
	require.Len(t, all, 1)

	after, err := f.cart.Items()
	require.NoError(t, err)
	assert.Empty(t, after)
}

func TestPipeline_WrongCodeKeepsEverything(t *testing.T) {
	f := newFixture(t)

	_, err := f.cart.AddToCart(1)
	require.NoError(t, err)

	id, delivery := f.reachVerification(t)

	// Les codes générés vivent dans [1000, 9999], "0000" ne matche jamais.
	_, err = f.pipeline.Complete(id, "0000")
	assert.ErrorIs(t, err, models.ErrCodeMismatch)

	// Panier intact, aucune commande, tentative toujours en vérification.
	items, err := f.cart.Items()
	require.NoError(t, err)
	assert.Len(t, items, 1)

	all, err := f.orders.All()
	require.NoError(t, err)
	assert.Empty(t, all)

	// Entièrement réessayable avec le bon code.
	order, err := f.pipeline.Complete(id, delivery.DemoCode)
	require.NoError(t, err)
	assert.NotEmpty(t, order.Number)
}

func TestPipeline_ResendInvalidatesPreviousCode(t *testing.T) {
	f := newFixture(t)

	_, err := f.cart.AddToCart(1)
	require.NoError(t, err)

	id, first := f.reachVerification(t)

	second, err := f.pipeline.ResendCode(id)
	require.NoError(t, err)

	if first.DemoCode != second.DemoCode {
		_, err = f.pipeline.Complete(id, first.DemoCode)
		assert.ErrorIs(t, err, models.ErrCodeMismatch, "l'ancien code doit être invalidé")
	}

	_, err = f.pipeline.Complete(id, second.DemoCode)
	require.NoError(t, err)
}

func TestPipeline_EmptyCartBlocksCompletion(t *testing.T) {
	f := newFixture(t)

	id, delivery := f.reachVerification(t)

	_, err := f.pipeline.Complete(id, delivery.DemoCode)
	assert.ErrorIs(t, err, models.ErrCartEmpty)
}

func TestPipeline_AddressValidation(t *testing.T) {
	f := newFixture(t)
	a := f.pipeline.Start()

	missingPhone := testAddress
	missingPhone.Phone = ""

	err := f.pipeline.SubmitAddress(a.ID, missingPhone)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "phone", vErr.Field)
	assert.Equal(t, StateAddress, a.State, "une validation ratée ne fait pas avancer le pipeline")
}

func TestPipeline_PaymentValidation(t *testing.T) {
	f := newFixture(t)
	a := f.pipeline.Start()
	require.NoError(t, f.pipeline.SubmitAddress(a.ID, testAddress))

	missingCard := testPayment
	missingCard.CardNumber = ""

	_, err := f.pipeline.SubmitPayment(a.ID, missingCard)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "cardNumber", vErr.Field)
	assert.Equal(t, StatePayment, a.State)
}

func TestPipeline_CompleteBeforeVerification(t *testing.T) {
	f := newFixture(t)
	a := f.pipeline.Start()

	_, err := f.pipeline.Complete(a.ID, "1234")
	assert.ErrorIs(t, err, models.ErrWrongStep)

	_, err = f.pipeline.ResendCode(a.ID)
	assert.ErrorIs(t, err, models.ErrWrongStep)
}

func TestPipeline_UnknownAttempt(t *testing.T) {
	f := newFixture(t)

	err := f.pipeline.SubmitAddress("inconnue", testAddress)
	assert.ErrorIs(t, err, models.ErrAttemptNotFound)
}

func TestPipeline_AbandonKeepsFields_ResetClearsThem(t *testing.T) {
	f := newFixture(t)

	a := f.pipeline.Start()
	require.NoError(t, f.pipeline.SubmitAddress(a.ID, testAddress))

	// Abandon sans reset : les champs saisis restent.
	assert.Equal(t, "Asha Verma", a.Address.FullName)

	require.NoError(t, f.pipeline.Reset(a.ID))
	assert.Equal(t, StateAddress, a.State)
	assert.Equal(t, models.AddressForm{}, a.Address)
	assert.Equal(t, models.PaymentForm{}, a.Payment)
}

func TestPipeline_QuickBuy(t *testing.T) {
	f := newFixture(t)

	msg, err := f.pipeline.QuickBuy(models.QuickBuyForm{
		ProductID: 1,
		Name:      "Asha Verma",
		Phone:     "9876543210",
		Address:   "12 MG Road",
		City:      "Bengaluru",
	})
	require.NoError(t, err)
	assert.Contains(t, msg, "Wireless Headphones")
	assert.Contains(t, msg, "12 MG Road, Bengaluru")

	// Rien n'est persisté par la commande rapide.
	all, err := f.orders.All()
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = f.pipeline.QuickBuy(models.QuickBuyForm{ProductID: 424242, Name: "X", Phone: "1", Address: "a", City: "c"})
	assert.ErrorIs(t, err, models.ErrProductNotFound)

	_, err = f.pipeline.QuickBuy(models.QuickBuyForm{ProductID: 1, Name: "", Phone: "1", Address: "a", City: "c"})
	var vErr *models.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestGenerateCode_FourDigits(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := generateCode()
		require.Len(t, code, 4)
		assert.GreaterOrEqual(t, code, "1000")
		assert.LessOrEqual(t, code, "9999")
	}
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "********10", maskPhone("9876543210"))
	assert.Equal(t, "**34", maskPhone("1234"))
	assert.Equal(t, "12", maskPhone("12"))
	assert.Equal(t, "", maskPhone(""))
}
