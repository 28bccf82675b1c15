package export

import (
	"bytes"
	"fmt"
	"os"

	"github.com/colecostanza/Anki-Automated-Quizzes/internal/models"
	"github.com/colecostanza/Anki-Automated-Quizzes/internal/service"
	"github.com/go-pdf/fpdf"
)

// GeneratePDF renders the scored session as a one-page result sheet.
func GeneratePDF(result models.QuizResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Quiz Results", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8,
		fmt.Sprintf("Deck: %s | Score: %d/%d (%d%%)",
			result.Deck, result.Right, result.Total, result.Percent()),
		"", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(70, 7, "Prompt", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Your Answer", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Correct Answer", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i, q := range result.Questions {
		if q.IsCorrect {
			pdf.SetFillColor(204, 255, 204)
		} else {
			pdf.SetFillColor(255, 204, 204)
		}
		pdf.CellFormat(10, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", true, 0, "")
		pdf.CellFormat(70, 7, service.StripHTML(q.Prompt), "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 7, service.StripHTML(q.Given), "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 7, service.StripHTML(q.Correct), "1", 1, "L", true, 0, "")
	}

	pdf.Ln(2)
	pdf.CellFormat(0, 6, "Session ID: "+result.SessionID, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePDF writes the rendered result sheet to path.
func SavePDF(path string, result models.QuizResult) error {
	data, err := GeneratePDF(result)
	if err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
