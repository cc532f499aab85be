package repository

import "context"

// TableData filas de una tabla exportable, con columnas en orden estable.
type TableData struct {
	Columns []string
	Rows    [][]any
}

// ExportRepository lee tablas completas (acotadas al tenant) para exportación.
// La lista de tablas permitidas la controla el caso de uso, no este puerto.
type ExportRepository interface {
	FetchTable(ctx context.Context, orgID, table string) (*TableData, error)
}
