package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardware-store/models"
)

func TestFormatPesos(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1.000",
		85000:    "85.000",
		1250000:  "1.250.000",
		-25000:   "-25.000",
		15000000: "15.000.000",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatPesos(in), "FormatPesos(%d)", in)
	}
}

func TestPublicIDFromURL(t *testing.T) {
	assert.Equal(t, "products/abc", PublicIDFromURL("https://res.cloudinary.com/demo/image/upload/v1700000000/products/abc.jpg"))
	assert.Equal(t, "products/abc", PublicIDFromURL("https://res.cloudinary.com/demo/image/upload/products/abc.png"))
	assert.Equal(t, "", PublicIDFromURL("/uploads/products/123.png"))
}

func TestValidateImage(t *testing.T) {
	assert.NoError(t, ValidateImage(&multipart.FileHeader{Filename: "foto.JPG", Size: 10}, 1024))
	assert.Error(t, ValidateImage(&multipart.FileHeader{Filename: "script.exe", Size: 10}, 1024))
	assert.Error(t, ValidateImage(&multipart.FileHeader{Filename: "big.png", Size: 2048}, 1024))
	assert.NoError(t, ValidateImage(&multipart.FileHeader{Filename: "big.png", Size: 2048}, 0))
}

func TestMailTemplatesEscapeInput(t *testing.T) {
	app := &models.SellerApplication{
		ID:           "app-1",
		PersonalInfo: models.PersonalInfo{FirstName: "<b>Ana</b>", Email: "ana@example.com"},
		BusinessInfo: models.BusinessInfo{BusinessName: "Pinturerías & Co"},
	}

	subject, body := ApplicationReceivedEmail("Mi Ferretería", app)
	assert.Equal(t, "Recibimos tu solicitud - Mi Ferretería", subject)
	assert.Contains(t, body, "&lt;b&gt;Ana&lt;/b&gt;")
	assert.Contains(t, body, "Pinturerías &amp; Co")

	_, body = OrderConfirmationEmail("Mi Ferretería", &models.Order{ID: "o-1", Total: 135000})
	assert.Contains(t, body, "$ 135.000")
}

type gatedMailer struct {
	release chan struct{}
	mu      sync.Mutex
	sent    []string
	err     error
}

func (m *gatedMailer) Send(to, _, _ string) error {
	<-m.release
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return m.err
}

func TestAsyncMailerDoesNotBlock(t *testing.T) {
	slow := &gatedMailer{release: make(chan struct{}), err: assert.AnError}
	mailer := NewAsyncMailer(slow)

	done := make(chan error, 1)
	go func() { done <- mailer.Send("ana@example.com", "Hola", "<p>hola</p>") }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Send waited for the SMTP server")
	}

	close(slow.release)
	mailer.Wait()
	assert.Equal(t, []string{"ana@example.com"}, slow.sent)
}

func TestMercadoPagoMock(t *testing.T) {
	ctx := context.Background()
	client := NewMercadoPagoClient("")
	client.now = func() time.Time { return time.UnixMilli(1700000000000) }
	require.True(t, client.Mock())

	pref, err := client.CreatePreference(ctx, models.PaymentPreference{})
	require.NoError(t, err)
	assert.Equal(t, "MP-1700000000000", pref.ID)
	assert.Equal(t, "https://www.mercadopago.com.ar/checkout/v1/redirect?pref_id=MP-1700000000000", pref.InitPoint)

	payment, err := client.GetPayment(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "42", payment.ID)
	assert.Equal(t, "approved", payment.Status)
	assert.Equal(t, float64(85000), payment.TransactionAmount)
	assert.Equal(t, "ARS", payment.CurrencyID)
}

func TestMercadoPagoAPI(t *testing.T) {
	ctx := context.Background()
	var gotPref models.PaymentPreference

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer TEST-TOKEN" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/checkout/preferences":
			_ = json.NewDecoder(r.Body).Decode(&gotPref)
			_, _ = w.Write([]byte(`{"id":"123-abc","init_point":"https://mp.example/123-abc"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/v1/payments/987":
			_, _ = w.Write([]byte(`{"id":987,"status":"rejected","transaction_amount":1500.5,"currency_id":"ARS","external_reference":"order-1"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"not found"}`))
		}
	}))
	defer srv.Close()

	client := NewMercadoPagoClient("TEST-TOKEN").WithBaseURL(srv.URL)
	require.False(t, client.Mock())

	pref, err := client.CreatePreference(ctx, models.PaymentPreference{
		Items:             []models.PreferenceItem{{ID: "1", Title: "Martillo", UnitPrice: 25000, Quantity: 1, CurrencyID: "ARS"}},
		ExternalReference: "order-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "123-abc", pref.ID)
	assert.Equal(t, "order-1", gotPref.ExternalReference)
	assert.Equal(t, int64(25000), gotPref.Items[0].UnitPrice)

	payment, err := client.GetPayment(ctx, "987")
	require.NoError(t, err)
	assert.Equal(t, "987", payment.ID)
	assert.Equal(t, models.OrderCancelled, payment.OrderStatus())
	assert.Equal(t, "order-1", payment.ExternalReference)

	_, err = client.GetPayment(ctx, "555")
	assert.Error(t, err)

	_, err = client.GetPayment(ctx, "not-a-number")
	assert.True(t, err != nil && strings.Contains(err.Error(), "invalid payment id"))
}

func formFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestLocalUploader(t *testing.T) {
	dir := t.TempDir()
	u := NewLocalUploader(dir, "/uploads/", 1024)

	url, err := u.Upload(context.Background(), formFile(t, "martillo.PNG", []byte("png-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/products/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	_, err = u.Upload(context.Background(), formFile(t, "malware.sh", []byte("x")))
	assert.Error(t, err)
}
