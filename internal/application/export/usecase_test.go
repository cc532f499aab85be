package export

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockpilot/internal/domain"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
)

type fakeExportRepo struct {
	data   map[string]*repository.TableData
	lastDB string
}

func (f *fakeExportRepo) FetchTable(_ context.Context, _, table string) (*repository.TableData, error) {
	f.lastDB = table
	if d, ok := f.data[table]; ok {
		return d, nil
	}
	return &repository.TableData{Columns: []string{"id"}, Rows: nil}, nil
}

func newExportUseCase(data map[string]*repository.TableData) (*UseCase, *fakeExportRepo) {
	repo := &fakeExportRepo{data: data}
	uc := NewUseCase(repo)
	uc.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }
	return uc, repo
}

func TestExport_TablaNoPermitida(t *testing.T) {
	uc, repo := newExportUseCase(nil)

	_, err := uc.Export(context.Background(), "org-1", "users", FormatJSON)

	var fields domain.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "table")
	assert.Empty(t, repo.lastDB, "no debe tocar la base con tabla inválida")
}

func TestExport_FormatoDesconocido(t *testing.T) {
	uc, _ := newExportUseCase(nil)

	_, err := uc.Export(context.Background(), "org-1", "products", "yaml")

	var fields domain.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "format")
}

func TestExport_CSVEscapado(t *testing.T) {
	uc, _ := newExportUseCase(map[string]*repository.TableData{
		"products": {
			Columns: []string{"name", "description"},
			Rows: [][]any{
				{"Tornillo, M8", `dice "premium"`},
				{"Simple", "multi\nlínea"},
			},
		},
	})

	res, err := uc.Export(context.Background(), "org-1", "products", FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(string(res.Data), "\n")
	assert.Equal(t, "name,description", lines[0])
	assert.Equal(t, `"Tornillo, M8","dice ""premium"""`, lines[1])
	// El salto de línea interno queda dentro de la celda entrecomillada.
	assert.Equal(t, `Simple,"multi`, lines[2])
	assert.Equal(t, `línea"`, lines[3])
	assert.Equal(t, "text/csv", res.ContentType)
	assert.Equal(t, "products_20260315.csv", res.Filename)
}

func TestExport_CSVSinFilas(t *testing.T) {
	uc, _ := newExportUseCase(nil)

	_, err := uc.Export(context.Background(), "org-1", "alerts", FormatCSV)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExport_JSONVacioEsValido(t *testing.T) {
	uc, _ := newExportUseCase(nil)

	res, err := uc.Export(context.Background(), "org-1", "alerts", FormatJSON)

	require.NoError(t, err)
	assert.Equal(t, "[]", string(res.Data))
}

func TestExport_XMLContieneFilas(t *testing.T) {
	uc, _ := newExportUseCase(map[string]*repository.TableData{
		"suppliers": {
			Columns: []string{"id", "name"},
			Rows:    [][]any{{"s-1", "Acme"}},
		},
	})

	res, err := uc.Export(context.Background(), "org-1", "suppliers", FormatXML)

	require.NoError(t, err)
	out := string(res.Data)
	assert.Contains(t, out, `<export table="suppliers">`)
	assert.Contains(t, out, "<name>Acme</name>")
	assert.Equal(t, "application/xml", res.ContentType)
}

func TestExport_TodasLasTablasPermitidas(t *testing.T) {
	tables := []string{
		"products", "locations", "suppliers", "customers",
		"purchase_orders", "stock_transfers", "stock_history", "alerts",
	}
	uc, _ := newExportUseCase(nil)
	for _, table := range tables {
		_, err := uc.Export(context.Background(), "org-1", table, FormatJSON)
		assert.NoError(t, err, table)
	}
}
