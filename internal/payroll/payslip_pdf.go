package payroll

import (
	"bytes"
	"fmt"
	"strings"

	"go-payroll/internal/payslip"
)

// renderPayslipPDF menuangkan dokumen slip gaji jadi PDF satu halaman.
// Cukup teks monospace sederhana, tidak butuh library PDF penuh.
func renderPayslipPDF(doc payslip.Document) ([]byte, error) {
	lines := []string{
		"PAYSLIP",
		fmt.Sprintf("%s (%s)", doc.Header.EmployeeName, doc.Header.EmployeeNumber),
	}
	if doc.Header.Position != "" || doc.Header.Department != "" {
		lines = append(lines, strings.TrimSpace(doc.Header.Position+" "+doc.Header.Department))
	}
	lines = append(lines,
		fmt.Sprintf("Period: %s", doc.Header.PeriodLabel),
		fmt.Sprintf("Payment date: %s", doc.Header.PaymentDate),
		"",
	)

	for _, day := range doc.Days {
		lines = append(lines, fmt.Sprintf("%s  %-10s %10s %10s", day.Date, day.Status, day.Amount, day.Adjustment))
	}

	lines = append(lines, "", fmt.Sprintf("Gross Pay: %s", doc.GrossPay), "Deductions:")
	for _, d := range doc.Deductions {
		lines = append(lines, fmt.Sprintf("  %-12s %10s", d.Label, d.Amount))
	}
	lines = append(lines,
		fmt.Sprintf("Total Deductions: %s", doc.TotalDeductions),
		fmt.Sprintf("Net Pay: %s", doc.NetPay),
		"",
		fmt.Sprintf("Generated at %s", doc.GeneratedAt.Format("2006-01-02 15:04:05 MST")),
	)

	return buildPDF(lines)
}

// buildPDF menulis PDF 1.4 minimal: satu page, satu font, satu content
// stream, xref dihitung manual.
func buildPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 10 Tf\n12 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
