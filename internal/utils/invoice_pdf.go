package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/skip2/go-qrcode"

	"shophub_back_end/internal/models"
)

// GenerateOrderQR génère le QR du numéro de commande en base64, prêt à mettre
// dans <img src="...">.
func GenerateOrderQR(orderNumber string) (string, error) {
	png, err := qrcode.Encode(orderNumber, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

var invoiceTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Invoice {{.Order.Number}}</title></head>
<body>
<div style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px;">
	<div style="text-align: center; margin-bottom: 30px;">
		<h1 style="color: #ff9500; margin: 0;">ShopHub</h1>
		<h2 style="color: #333; margin: 10px 0 0 0;">Invoice</h2>
	</div>

	<div style="display: grid; grid-template-columns: 1fr 1fr; gap: 30px; margin-bottom: 30px;">
		<div>
			<h3 style="color: #27ae60; margin-top: 0;">Bill To:</h3>
			<p style="margin: 5px 0;"><strong>{{.Order.CustomerName}}</strong></p>
			<p style="margin: 5px 0;">{{.Order.Address}}</p>
			<p style="margin: 5px 0;">{{.Order.City}}</p>
			<p style="margin: 5px 0;">Phone: {{.Order.Phone}}</p>
			<p style="margin: 5px 0;">Email: {{.Order.Email}}</p>
		</div>
		<div style="text-align: right;">
			<p style="margin: 5px 0;"><strong>Order Number:</strong></p>
			<p style="font-size: 20px; color: #ff9500; font-weight: bold; font-family: monospace; margin: 5px 0;">{{.Order.Number}}</p>
			<p style="margin: 15px 0 5px 0;"><strong>Order Date:</strong></p>
			<p style="margin: 5px 0;">{{.Order.OrderDate}}</p>
			{{if .QR}}<img src="{{.QR}}" alt="QR" style="width: 96px; height: 96px; margin-top: 10px;">{{end}}
		</div>
	</div>

	<table style="width: 100%; border-collapse: collapse; margin-bottom: 30px;">
		<thead>
			<tr style="background: linear-gradient(135deg, #ff9500 0%, #27ae60 100%); color: white;">
				<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Product</th>
				<th style="padding: 10px; text-align: center; border: 1px solid #ddd;">Qty</th>
				<th style="padding: 10px; text-align: right; border: 1px solid #ddd;">Unit Price</th>
				<th style="padding: 10px; text-align: right; border: 1px solid #ddd;">Total</th>
			</tr>
		</thead>
		<tbody>
			{{range .Order.Items}}
			<tr>
				<td style="padding: 10px; border: 1px solid #ddd;">{{.Name}}</td>
				<td style="padding: 10px; text-align: center; border: 1px solid #ddd;">{{.Quantity}}</td>
				<td style="padding: 10px; text-align: right; border: 1px solid #ddd;">₹{{.Price}}</td>
				<td style="padding: 10px; text-align: right; border: 1px solid #ddd;">₹{{.LineTotal}}</td>
			</tr>
			{{end}}
		</tbody>
	</table>

	<div style="display: grid; grid-template-columns: 1fr 300px; gap: 30px;">
		<div></div>
		<div>
			<div style="display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #ddd;">
				<span>Subtotal:</span><span>₹{{.Order.Subtotal}}</span>
			</div>
			<div style="display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #ddd;">
				<span>Shipping:</span><span>₹{{.Order.Shipping}}</span>
			</div>
			<div style="display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #ddd;">
				<span>Tax (10%):</span><span>₹{{.Order.Tax}}</span>
			</div>
			<div style="display: flex; justify-content: space-between; padding: 12px 0; font-weight: bold; font-size: 18px; color: #ff9500;">
				<span>Total Amount:</span><span>₹{{.Order.Total}}</span>
			</div>
		</div>
	</div>

	<div style="margin-top: 40px; padding: 20px; background: #f8f9fa; border-radius: 8px; border-left: 4px solid #27ae60;">
		<p style="margin: 0; color: #666; font-size: 13px;">
			<strong>Thank you for your order!</strong> Your order has been confirmed. You will receive a tracking update shortly.
		</p>
	</div>

	<div style="margin-top: 30px; text-align: center; color: #999; font-size: 12px; border-top: 1px solid #ddd; padding-top: 20px;">
		<p style="margin: 5px 0;">ShopHub © 2025 | www.shophub.com</p>
		<p style="margin: 5px 0;">This is an automatically generated invoice.</p>
	</div>
</div>
</body>
</html>`))

// RenderInvoiceHTML produit la facture HTML d'une commande. Les montants
// viennent de la commande elle-même, jamais recalculés depuis le catalogue.
func RenderInvoiceHTML(order models.Order, qrBase64 string) (string, error) {
	var buf bytes.Buffer
	// template.URL : sans ça, html/template neutralise la data URL du QR.
	err := invoiceTmpl.Execute(&buf, struct {
		Order models.Order
		QR    template.URL
	}{Order: order, QR: template.URL(qrBase64)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderInvoicePDF imprime la facture HTML en PDF via un Chrome headless.
// Délégation pure : HTML complet en entrée, PDF ou erreur en sortie.
func RenderInvoicePDF(html string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	// timeout pour éviter de bloquer
	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var pdfBuf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate(dataURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
