package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"simplecrm/internal/models"
)

// ReportGenerator рендерит отчёты по лидам в PDF.
type ReportGenerator struct{}

func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// LeadsReport — табличный список лидов организации.
func (g *ReportGenerator) LeadsReport(leads []*models.Lead) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Leads report", false)
	doc.SetAuthor("SimpleCRM", false)
	doc.SetMargins(15, 15, 15)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.Cell(0, 10, "Leads report")
	doc.Ln(8)
	doc.SetFont("Arial", "", 10)
	doc.Cell(0, 8, fmt.Sprintf("Generated at %s", time.Now().Format("2006-01-02 15:04")))
	doc.Ln(12)

	// шапка таблицы
	doc.SetFont("Arial", "B", 10)
	doc.SetFillColor(230, 230, 230)
	doc.CellFormat(50, 8, "Name", "1", 0, "L", true, 0, "")
	doc.CellFormat(55, 8, "Email", "1", 0, "L", true, 0, "")
	doc.CellFormat(35, 8, "Phone", "1", 0, "L", true, 0, "")
	doc.CellFormat(20, 8, "Assigned", "1", 0, "C", true, 0, "")
	doc.CellFormat(20, 8, "Created", "1", 1, "C", true, 0, "")

	doc.SetFont("Arial", "", 10)
	for _, lead := range leads {
		assigned := "no"
		if lead.AgentID != nil {
			assigned = "yes"
		}
		doc.CellFormat(50, 8, fmt.Sprintf("%s %s", lead.FirstName, lead.LastName), "1", 0, "L", false, 0, "")
		doc.CellFormat(55, 8, lead.Email, "1", 0, "L", false, 0, "")
		doc.CellFormat(35, 8, lead.PhoneNumber, "1", 0, "L", false, 0, "")
		doc.CellFormat(20, 8, assigned, "1", 0, "C", false, 0, "")
		doc.CellFormat(20, 8, lead.CreatedAt.Format("02.01.06"), "1", 1, "C", false, 0, "")
	}
	if len(leads) == 0 {
		doc.CellFormat(180, 8, "No leads", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render leads report: %w", err)
	}
	return buf.Bytes(), nil
}
