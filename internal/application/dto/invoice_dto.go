package dto

// InvoiceListRequest parámetros de GET /api/invoices.
type InvoiceListRequest struct {
	Search string `query:"search"` // subcadena en proveedor o número de factura
	Sort   string `query:"sort"`   // invoice_date (default), invoice_number, invoice_total, due_date, vendor_name
	Order  string `query:"order"`  // "asc"; cualquier otro valor = desc
}

// Estados de pago mostrados en el listado.
const (
	InvoiceStatusOverdue = "Overdue"
	InvoiceStatusDue     = "Due"
)

// InvoiceRowDTO fila formateada del listado de facturas.
type InvoiceRowDTO struct {
	VendorName    string `json:"vendorName"`
	InvoiceDate   string `json:"invoiceDate"` // dd.MM.yyyy o "N/A"
	InvoiceNumber string `json:"invoiceNumber"`
	NetValue      string `json:"netValue"` // "€ 150.51"
	Status        string `json:"status"`   // Overdue | Due
}
