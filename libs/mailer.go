package libs

import (
	"errors"
	"fmt"
	"html"
	"log"
	"sync"

	"gopkg.in/gomail.v2"

	"hardware-store/config"
	"hardware-store/models"
)

type Mailer interface {
	Send(to, subject, body string) error
}

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(cfg *config.Config) (*EmailService, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, errors.New("SMTP configuration missing")
	}

	return &EmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}, nil
}

func (s *EmailService) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// LogMailer only writes the outgoing mail to the log.
type LogMailer struct{}

func (LogMailer) Send(to, subject, _ string) error {
	log.Printf("[Mail] %s -> %s", subject, to)
	return nil
}

// AsyncMailer hands each mail to its own goroutine so a request never waits
// on the SMTP server. Delivery failures are only logged.
type AsyncMailer struct {
	next Mailer
	wg   sync.WaitGroup
}

func NewAsyncMailer(next Mailer) *AsyncMailer {
	return &AsyncMailer{next: next}
}

func (m *AsyncMailer) Send(to, subject, body string) error {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.next.Send(to, subject, body); err != nil {
			log.Printf("[Mail] %s -> %s failed: %v", subject, to, err)
		}
	}()
	return nil
}

// Wait blocks until every queued mail has been handed to the server.
func (m *AsyncMailer) Wait() {
	m.wg.Wait()
}

const mailLayout = `<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #3B82F6; text-align: center; margin-bottom: 30px; }
        .box { background-color: #eff6ff; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">%s</div>
        %s
        <div class="footer">
            <p>Este es un correo automático. Por favor no respondas.</p>
        </div>
    </div>
</body>
</html>`

func renderMail(storeName, content string) string {
	return fmt.Sprintf(mailLayout, html.EscapeString(storeName), content)
}

func ApplicationReceivedEmail(storeName string, app *models.SellerApplication) (subject, body string) {
	subject = fmt.Sprintf("Recibimos tu solicitud - %s", storeName)
	body = renderMail(storeName, fmt.Sprintf(`
        <h2>¡Hola %s!</h2>
        <p>Recibimos tu solicitud para vender en nuestra tienda.</p>
        <div class="box">
            <p><strong>Negocio:</strong> %s</p>
            <p><strong>Solicitud:</strong> %s</p>
        </div>
        <p>Te contactaremos cuando la revisemos.</p>`,
		html.EscapeString(app.PersonalInfo.FirstName),
		html.EscapeString(app.BusinessInfo.BusinessName),
		app.ID,
	))
	return subject, body
}

func NewApplicationEmail(storeName string, app *models.SellerApplication) (subject, body string) {
	subject = fmt.Sprintf("Nueva solicitud de vendedor: %s", app.BusinessInfo.BusinessName)
	body = renderMail(storeName, fmt.Sprintf(`
        <h2>Nueva solicitud de vendedor</h2>
        <div class="box">
            <p><strong>Nombre:</strong> %s %s</p>
            <p><strong>Email:</strong> %s</p>
            <p><strong>CUIT:</strong> %s</p>
        </div>`,
		html.EscapeString(app.PersonalInfo.FirstName),
		html.EscapeString(app.PersonalInfo.LastName),
		html.EscapeString(app.PersonalInfo.Email),
		html.EscapeString(app.BusinessInfo.CUIT),
	))
	return subject, body
}

func OrderConfirmationEmail(storeName string, order *models.Order) (subject, body string) {
	subject = fmt.Sprintf("Confirmación de pedido #%s - %s", order.ID, storeName)
	body = renderMail(storeName, fmt.Sprintf(`
        <h2>¡Gracias por tu compra!</h2>
        <div class="box">
            <p><strong>Pedido:</strong> %s</p>
            <p><strong>Total:</strong> $ %s</p>
        </div>
        <p>Te avisaremos cuando el pago se acredite.</p>`,
		order.ID, FormatPesos(order.Total),
	))
	return subject, body
}

// FormatPesos groups thousands with dots: 85000 -> "85.000".
func FormatPesos(amount int64) string {
	str := fmt.Sprintf("%d", amount)
	sign := ""
	if amount < 0 {
		sign, str = "-", str[1:]
	}

	n := len(str)
	if n <= 3 {
		return sign + str
	}

	result := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			result = append(result, '.')
		}
		result = append(result, str[i])
	}
	return sign + string(result)
}
