package export

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

// Formatos de exportación soportados.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXML  = "xml"
)

// allowedTables lista cerrada de tablas exportables. Cualquier otro valor se
// rechaza antes de tocar la base.
var allowedTables = map[string]bool{
	"products":        true,
	"locations":       true,
	"suppliers":       true,
	"customers":       true,
	"purchase_orders": true,
	"stock_transfers": true,
	"stock_history":   true,
	"alerts":          true,
}

// Result exportación lista para enviar: bytes, content type y nombre de archivo.
type Result struct {
	Data        []byte
	ContentType string
	Filename    string
}

// UseCase exporta tablas del tenant en json, csv o xml.
type UseCase struct {
	repo repository.ExportRepository
	now  func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ExportRepository) *UseCase {
	return &UseCase{repo: repo, now: time.Now}
}

// Export valida tabla y formato, lee las filas acotadas al tenant y serializa.
// Una exportación CSV sin filas devuelve ErrNotFound; JSON y XML devuelven el
// documento vacío.
func (uc *UseCase) Export(ctx context.Context, orgID, table, format string) (*Result, error) {
	if !allowedTables[table] {
		return nil, domain.FieldErrors{"table": "tabla no exportable"}
	}
	switch format {
	case FormatJSON, FormatCSV, FormatXML:
	default:
		return nil, domain.FieldErrors{"format": "formato desconocido"}
	}

	data, err := uc.repo.FetchTable(ctx, orgID, table)
	if err != nil {
		return nil, err
	}

	var body []byte
	var contentType string
	switch format {
	case FormatJSON:
		body, err = serializeJSON(data)
		contentType = "application/json"
	case FormatCSV:
		if len(data.Rows) == 0 {
			return nil, domain.ErrNotFound
		}
		body = serializeCSV(data)
		contentType = "text/csv"
	case FormatXML:
		body, err = serializeXML(table, data)
		contentType = "application/xml"
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Data:        body,
		ContentType: contentType,
		Filename:    fmt.Sprintf("%s_%s.%s", table, uc.now().Format("20060102"), format),
	}, nil
}

// serializeJSON arreglo de objetos columna→valor, en el orden de las filas.
func serializeJSON(data *repository.TableData) ([]byte, error) {
	out := make([]map[string]any, 0, len(data.Rows))
	for _, row := range data.Rows {
		obj := make(map[string]any, len(data.Columns))
		for i, col := range data.Columns {
			obj[col] = row[i]
		}
		out = append(out, obj)
	}
	return json.Marshal(out)
}

// serializeCSV cabecera + filas. Los valores con coma, comilla o salto de
// línea se envuelven en comillas y las comillas internas se duplican.
func serializeCSV(data *repository.TableData) []byte {
	var b strings.Builder
	writeCSVRow(&b, data.Columns)
	for _, row := range data.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = cellString(v)
		}
		writeCSVRow(&b, cells)
	}
	return []byte(b.String())
}

func writeCSVRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCSV(cell))
	}
	b.WriteByte('\n')
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// serializeXML documento etree con raíz <export table="..."> y un elemento
// <row> por fila, con un hijo por columna.
func serializeXML(table string, data *repository.TableData) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("export")
	root.CreateAttr("table", table)
	for _, row := range data.Rows {
		el := root.CreateElement("row")
		for i, col := range data.Columns {
			el.CreateElement(col).SetText(cellString(row[i]))
		}
	}
	doc.Indent(2)
	return doc.WriteToBytes()
}

// cellString representación textual estable de un valor de celda.
func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(time.RFC3339)
	case fmt.Stringer:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", t)
	}
}
