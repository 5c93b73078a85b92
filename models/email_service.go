package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendOrderConfirmation(toEmail string, order *Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation %s", order.OrderNumber))

	rows := ""
	for _, item := range order.Items {
		rows += fmt.Sprintf(
			`<tr><td>%s</td><td style="text-align:center;">%d</td><td style="text-align:right;">R%s</td></tr>`,
			item.Name, item.Quantity, item.Price.StringFixed(2),
		)
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #dc2626; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        td, th { padding: 8px; border-bottom: 1px solid #eee; }
        .totals td { border: none; padding: 4px 8px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><div class="logo">Promo Shop</div></div>
        <p>Thank you for your order! Your order <strong>%s</strong> has been received.</p>
        <table>
            <tr><th style="text-align:left;">Item</th><th>Qty</th><th style="text-align:right;">Price</th></tr>
            %s
        </table>
        <table class="totals">
            <tr><td>Subtotal</td><td style="text-align:right;">R%s</td></tr>
            <tr><td>Shipping</td><td style="text-align:right;">R%s</td></tr>
            <tr><td>Tax (15%%)</td><td style="text-align:right;">R%s</td></tr>
            <tr><td><strong>Total</strong></td><td style="text-align:right;"><strong>R%s</strong></td></tr>
        </table>
        <p>We will let you know as soon as your order ships.</p>
    </div>
</body>
</html>`,
		order.OrderNumber, rows,
		order.Subtotal.StringFixed(2),
		order.Shipping.StringFixed(2),
		order.Tax.StringFixed(2),
		order.Total.StringFixed(2),
	)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
