package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"

	"github.com/xenbackup/xenbackup/types"
)

var reportTemplate = template.Must(
	template.New("report").Funcs(templateFuncs()).Parse(reportTemplateHTML),
)

func templateFuncs() template.FuncMap {
	funcs := sprig.HtmlFuncMap()
	// Icon data arrives base64-encoded from the API; building the data URI
	// here keeps the template's URL sanitizer from mangling it.
	funcs["dataImage"] = func(b64 string) template.URL {
		return template.URL("data:image/png;base64," + b64)
	}
	return funcs
}

// Render produces the standalone HTML report for a backup document.
func Render(doc *types.ReportDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, doc); err != nil {
		return nil, errors.Wrap(err, "rendering report")
	}
	return buf.Bytes(), nil
}

// Write renders the report and writes it to path.
func Write(doc *types.ReportDocument, path string) error {
	output, err := Render(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, output, 0644); err != nil {
		return errors.Wrap(err, "writing report")
	}
	return nil
}

// Filename returns the default report filename for a host and run time.
func Filename(host string, generatedAt time.Time) string {
	return fmt.Sprintf("%s-%s.html", host, generatedAt.Format("2006-01-02-150405"))
}
