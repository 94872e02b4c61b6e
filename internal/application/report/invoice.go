package report

import (
	"context"
	"html/template"
	"strings"
)

// invoiceTemplate renders a sale as a self-contained printable page.
var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice #{{.SaleID}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; margin-top: 1em; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
tfoot td { font-weight: bold; }
</style>
</head>
<body>
<h1>Invoice #{{.SaleID}}</h1>
<p>Date: {{.SaleDate}}</p>
<p>Customer: {{.CustomerName}} ({{.CustomerPhone}})</p>
<table>
<thead>
<tr><th>Item</th><th>Size</th><th>Price</th><th>Qty</th><th>Amount</th></tr>
</thead>
<tbody>
{{range .Purchases}}<tr><td>{{.Name}}</td><td>{{.Size}}</td><td>{{.Price}}</td><td>{{.Quantity}}</td><td>{{.Amount}}</td></tr>
{{end}}</tbody>
<tfoot>
<tr><td colspan="4">Total</td><td>{{.Total}}</td></tr>
</tfoot>
</table>
</body>
</html>
`))

// RenderInvoice produces the printable invoice for one sale. The printed
// page shows the calendar date rather than the full timestamp.
func (s *SalesService) RenderInvoice(ctx context.Context, saleID int64) (string, error) {
	sale, err := s.find(ctx, saleID)
	if err != nil {
		return "", err
	}

	view := toSaleResponse(*sale)
	view.SaleDate = sale.Date()

	var buf strings.Builder
	if err := invoiceTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
