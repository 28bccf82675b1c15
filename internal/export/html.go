package export

import (
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/colecostanza/Anki-Automated-Quizzes/internal/models"
	"github.com/colecostanza/Anki-Automated-Quizzes/internal/service"
)

var resultsTmpl = template.Must(template.New("results").Funcs(template.FuncMap{
	"inc":   func(i int) int { return i + 1 },
	"strip": service.StripHTML,
}).Parse(`<h2>Quiz Results</h2>
<p>Deck: {{.Deck}} | Score: {{.Right}}/{{.Total}} ({{.Percent}}%)</p>
<table border="1" cellpadding="4">
<tr><th>#</th><th>Prompt</th><th>Your Answer</th><th>Correct Answer</th></tr>
{{- range $i, $q := .Questions}}
<tr style="background:{{if $q.IsCorrect}}#cfc{{else}}#fcc{{end}}"><td>{{inc $i}}</td><td>{{strip $q.Prompt}}</td><td>{{strip $q.Given}}</td><td>{{strip $q.Correct}}</td></tr>
{{- end}}
</table>
`))

// WriteHTML renders the scored session as a standalone results table.
func WriteHTML(w io.Writer, result models.QuizResult) error {
	if err := resultsTmpl.Execute(w, result); err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}
	return nil
}

// SaveHTML writes the rendered results to path.
func SaveHTML(path string, result models.QuizResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}

	if err := WriteHTML(f, result); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
