package models

import "time"

type Invoice struct {
	ID           int64     `json:"id"`
	OrderID      int64     `json:"orderId"`
	Number       string    `json:"number"`
	CustomerName string    `json:"customerName"`
	Amount       int64     `json:"amount"`
	Paid         bool      `json:"paid"`
	IssuedAt     time.Time `json:"issuedAt"`
}

type InvoiceStats struct {
	TotalInvoices int64 `json:"totalInvoices"`
	PaidInvoices  int64 `json:"paidInvoices"`
	UnpaidAmount  int64 `json:"unpaidAmount"`
	TotalAmount   int64 `json:"totalAmount"`
	PaidAmount    int64 `json:"paidAmount"`
}
