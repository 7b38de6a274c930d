package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// PaySlipDocument carries everything the exporter needs to render a slip.
// The engine assembles it; the exporter never reaches back into storage.
type PaySlipDocument struct {
	PayslipNumber  string
	EmployeeName   string
	DepartmentName string
	PayPeriodStart time.Time
	PayPeriodEnd   time.Time
	IssueDate      time.Time
	PaymentDate    time.Time
	BankAccountRef string

	GrossPay               decimal.Decimal
	IncomeTax              decimal.Decimal
	ProvidentFund          decimal.Decimal
	SocialContribution     decimal.Decimal
	ProfessionalTax        decimal.Decimal
	HealthInsurance        decimal.Decimal
	RetirementContribution decimal.Decimal
	OtherDeductions        decimal.Decimal
	NetPay                 decimal.Decimal

	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	Status        string
}

type PaySlipExporter struct{}

func NewPaySlipExporter() *PaySlipExporter {
	return &PaySlipExporter{}
}

// RenderPDF produces the payslip as a PDF document.
func (e *PaySlipExporter) RenderPDF(doc PaySlipDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip "+doc.PayslipNumber)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", doc.EmployeeName))
	pdf.Ln(7)
	if doc.DepartmentName != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Department: %s", doc.DepartmentName))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		doc.PayPeriodStart.Format("2006-01-02"), doc.PayPeriodEnd.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Issued: %s   Payment due: %s",
		doc.IssueDate.Format("2006-01-02"), doc.PaymentDate.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Bank account: %s", doc.BankAccountRef))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Gross pay: %s", doc.GrossPay.StringFixed(2)))
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 12)
	lines := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Income tax", doc.IncomeTax},
		{"Provident fund", doc.ProvidentFund},
		{"Social contribution", doc.SocialContribution},
		{"Professional tax", doc.ProfessionalTax},
		{"Health insurance", doc.HealthInsurance},
		{"Retirement contribution", doc.RetirementContribution},
		{"Other deductions", doc.OtherDeductions},
	}
	for _, line := range lines {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %s", line.label, line.amount.StringFixed(2)))
		pdf.Ln(6)
	}
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net pay: %s", doc.NetPay.StringFixed(2)))
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Regular hours: %s   Overtime hours: %s",
		doc.RegularHours.StringFixed(2), doc.OvertimeHours.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", doc.Status))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
