package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"moneyman/internal/model"
	"moneyman/internal/repository"
)

// ReportSummary holds the totals printed at the bottom of a report.
type ReportSummary struct {
	TotalIncome   int64
	TotalExpenses int64
	Remaining     int64
}

// Summarize computes report totals over a transaction set. Remaining is
// always TotalIncome minus TotalExpenses, zero for the empty set.
func Summarize(txns []model.Transaction) ReportSummary {
	var sum ReportSummary
	for _, t := range txns {
		switch t.Type {
		case model.TypeIncome:
			sum.TotalIncome += t.Amount
		case model.TypeExpenses:
			sum.TotalExpenses += t.Amount
		}
	}
	sum.Remaining = sum.TotalIncome - sum.TotalExpenses
	return sum
}

// ReportFileName derives the download filename from the given day.
func ReportFileName(now time.Time) string {
	return fmt.Sprintf("Transaction_Report_%s.pdf", now.UTC().Format(model.DateLayout))
}

// Report page layout, in points on A4. Column offsets and the rule extent
// match the frontend's expectations for the tabular report.
const (
	pageMargin   = 30.0
	colDateX     = 50.0
	colTitleX    = 150.0
	colAmountX   = 350.0
	colTypeX     = 450.0
	ruleEndX     = 550.0
	rowHeight    = 18.0
	titleSize    = 18.0
	bodySize     = 10.0
	summaryBlock = 3 * rowHeight
)

// ReportService renders a user's transaction history into a paginated PDF.
type ReportService interface {
	Generate(ctx context.Context, userID string, w io.Writer) error
}

type reportService struct {
	repo repository.TransactionRepository
}

// NewReportService creates a new report service.
func NewReportService(repo repository.TransactionRepository) ReportService {
	return &reportService{repo: repo}
}

// Generate loads the user's transactions sorted by date ascending and streams
// the rendered document to w.
func (s *reportService) Generate(ctx context.Context, userID string, w io.Writer) error {
	txns, err := s.repo.ListByUserDateAsc(ctx, userID)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	sum := Summarize(txns)

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()

	_, pageH := pdf.GetPageSize()
	limitY := pageH - pageMargin

	pdf.SetFont("Helvetica", "BU", titleSize)
	pdf.SetY(pageMargin)
	pdf.CellFormat(0, titleSize+6, "Your Transactions Report", "", 1, "C", false, 0, "")

	y := pdf.GetY() + rowHeight
	y = drawTableHeader(pdf, y)

	pdf.SetFont("Helvetica", "", bodySize)
	for _, t := range txns {
		if y+rowHeight > limitY {
			pdf.AddPage()
			y = drawTableHeader(pdf, pageMargin)
			pdf.SetFont("Helvetica", "", bodySize)
		}
		pdf.Text(colDateX, y, displayDate(t.Date))
		pdf.Text(colTitleX, y, t.Title)
		pdf.Text(colAmountX, y, groupThousands(t.Amount))
		pdf.Text(colTypeX, y, t.Type)
		y += rowHeight
	}

	y += rowHeight
	if y+summaryBlock > limitY {
		pdf.AddPage()
		y = pageMargin + rowHeight
	}

	pdf.SetFont("Helvetica", "B", bodySize)
	for _, line := range []struct {
		label string
		value int64
	}{
		{"Total Income:", sum.TotalIncome},
		{"Total Expenses:", sum.TotalExpenses},
		{"Remaining Amount:", sum.Remaining},
	} {
		pdf.Text(colTitleX, y, line.label)
		pdf.Text(colAmountX, y, groupThousands(line.value))
		y += rowHeight
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// drawTableHeader prints the bold column captions and the horizontal rule,
// returning the y position of the first row beneath them.
func drawTableHeader(pdf *fpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", bodySize)
	pdf.Text(colDateX, y, "Date")
	pdf.Text(colTitleX, y, "Title")
	pdf.Text(colAmountX, y, "Amount (Rp)")
	pdf.Text(colTypeX, y, "Type")

	ruleY := y + rowHeight/2
	pdf.SetLineWidth(0.7)
	pdf.Line(colDateX, ruleY, ruleEndX, ruleY)

	return y + rowHeight
}

// displayDate renders a stored ISO date in the report's m/d/y form. Dates
// that fail to parse are printed as stored.
func displayDate(iso string) string {
	t, err := time.Parse(model.DateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("1/2/2006")
}

// groupThousands formats n with comma separators, e.g. -1234567 -> -1,234,567.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := ""
	if s[0] == '-' {
		neg, s = "-", s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return neg + s
}
