// internal/pkg/pdf/template.go
package pdf

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Invoice {{.InvoiceNumber}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; color: #333; }
        .header { display: flex; justify-content: space-between; margin-bottom: 30px; border-bottom: 2px solid #eee; padding-bottom: 20px; }
        .invoice-title { font-size: 28px; font-weight: bold; color: #3f6212; margin-bottom: 10px; }
        .section-title { font-size: 16px; font-weight: bold; margin-bottom: 10px; color: #374151; }
        .items-table { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
        .items-table th, .items-table td { border: 1px solid #ddd; padding: 12px 8px; text-align: left; }
        .items-table th { background-color: #f8f9fa; }
        .num { text-align: right; width: 80px; }
        .totals { float: right; width: 300px; }
        .totals td { padding: 6px 0; }
        .total-row td { font-weight: bold; border-top: 2px solid #333; }
        .note { font-size: 11px; color: #6b7280; }
        .footer { margin-top: 60px; text-align: center; color: #6b7280; font-size: 12px; }
    </style>
</head>
<body>
    <div class="header">
        <div>
            <h1>{{.Company.Name}}</h1>
            {{if .Company.Email}}<p>Email: {{.Company.Email}}</p>{{end}}
            {{if .Company.Website}}<p>{{.Company.Website}}</p>{{end}}
        </div>
        <div style="text-align: right;">
            <div class="invoice-title">INVOICE</div>
            <p><strong>Invoice #:</strong> {{.InvoiceNumber}}</p>
            <p><strong>Order #:</strong> {{.Order.ID}}</p>
            <p><strong>Order Date:</strong> {{.InvoiceDate}}</p>
            <p><strong>Status:</strong> {{.Order.Status}}</p>
        </div>
    </div>

    {{with .BillTo}}
    <div>
        <div class="section-title">Bill To:</div>
        <p>{{.Street}}</p>
        <p>{{.City}}, {{.State}} {{.Zip}}</p>
        <p>{{.Country}}</p>
        {{if .Phone}}<p>Phone: {{.Phone}}</p>{{end}}
    </div>
    {{end}}

    <table class="items-table">
        <thead>
            <tr>
                <th>Item</th>
                <th>SKU</th>
                <th class="num">Qty</th>
                <th class="num">Price</th>
                <th class="num">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Lines}}
            <tr>
                <td><strong>{{.Name}}</strong>{{if .Options}}<br><small>{{.Options}}</small>{{end}}</td>
                <td>{{.SKU}}</td>
                <td class="num">{{.Quantity}}</td>
                <td class="num">${{.Price}}</td>
                <td class="num">${{.Total}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <table>
            <tr><td>Subtotal:</td><td class="num">${{.Subtotal}}</td></tr>
            <tr><td>Shipping:</td><td class="num">${{.Shipping}}</td></tr>
            <tr><td>Tax:</td><td class="num">${{.Tax}}</td></tr>
            <tr class="total-row"><td>Total:</td><td class="num">${{.Total}}</td></tr>
        </table>
    </div>
    <div style="clear: both;"></div>
    <p class="note">Amounts are rounded to the cent; the total is computed before rounding.</p>

    <div class="footer">
        <p>Thank you for shopping with {{.Company.Name}}!</p>
    </div>
</body>
</html>
`
