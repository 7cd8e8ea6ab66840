// internal/pkg/email/templates.go
package email

import (
	"fmt"
	"html/template"
)

const orderConfirmationTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Order {{.OrderNumber}}</title></head>
<body style="font-family: Arial, sans-serif; color: #1f2933;">
  <h1>{{.SiteName}}</h1>
  <p>Hi {{.UserName}},</p>
  <p>Thanks for your order! We're getting it ready.</p>
  <p><strong>Order {{.OrderNumber}}</strong> &middot; {{.OrderDate}}</p>
  <table cellpadding="6" style="border-collapse: collapse; width: 100%;">
    <tr><th align="left">Item</th><th align="right">Qty</th><th align="right">Total</th></tr>
    {{range .Items}}
    <tr>
      <td>{{.Name}}{{if .Options}} <small>({{.Options}})</small>{{end}}</td>
      <td align="right">{{.Quantity}}</td>
      <td align="right">${{.Total}}</td>
    </tr>
    {{end}}
  </table>
  <p>Subtotal: ${{.Subtotal}}<br>
  Shipping: {{if eq .Shipping "0.00"}}Free{{else}}${{.Shipping}}{{end}}<br>
  Tax: ${{.Tax}}<br>
  <strong>Total: ${{.Total}}</strong></p>
  <p>Paid with: {{.PaymentMethod}}</p>
  <p>Shipping to:<br>
  {{.ShippingAddress.Name}}<br>
  {{.ShippingAddress.Street}}<br>
  {{.ShippingAddress.City}}, {{.ShippingAddress.State}} {{.ShippingAddress.Zip}}<br>
  {{.ShippingAddress.Country}}</p>
  <p><a href="{{.SiteURL}}">{{.SiteURL}}</a></p>
  <p style="color: #7b8794;">&copy; {{.Year}} {{.SiteName}}</p>
</body>
</html>`

func parseTemplates() (map[EmailType]*template.Template, error) {
	sources := map[EmailType]string{
		EmailTypeOrderConfirmation: orderConfirmationTemplate,
	}

	templates := make(map[EmailType]*template.Template, len(sources))
	for name, src := range sources {
		tmpl, err := template.New(string(name)).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}
