// Package export grava as coleções carregadas numa planilha XLSX.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
	"github.com/Werneck0live/gestao-terceirizados/internal/render"
	"github.com/Werneck0live/gestao-terceirizados/internal/store"
)

// Workbook monta uma aba por kind (na ordem de models.Kinds) mais o resumo.
func Workbook(st store.State) (*excelize.File, error) {
	f := excelize.NewFile()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DBEAFE"}},
	})
	if err != nil {
		return nil, err
	}

	const resumo = "Dashboard"
	if err := f.SetSheetName("Sheet1", resumo); err != nil {
		return nil, err
	}
	if err := writeDashboard(f, resumo, st.Dashboard, header); err != nil {
		return nil, err
	}

	for _, k := range models.Kinds {
		tb, err := render.Rows(st, k)
		if err != nil {
			return nil, err
		}
		if _, err := f.NewSheet(tb.Title); err != nil {
			return nil, err
		}
		if err := writeTable(f, tb, header); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", tb.Title, err)
		}
	}
	return f, nil
}

// Write grava a planilha em w.
func Write(w io.Writer, st store.State) error {
	f, err := Workbook(st)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

func writeTable(f *excelize.File, tb render.Table, header int) error {
	sheet := tb.Title
	if err := writeRow(f, sheet, 1, tb.Headers); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(tb.Headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, header); err != nil {
		return err
	}
	for i, row := range tb.Rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(tb.Headers))
	return f.SetColWidth(sheet, "A", lastCol, 22)
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return f.SetSheetRow(sheet, cell, &vals)
}

func writeDashboard(f *excelize.File, sheet string, s models.DashboardStats, header int) error {
	rows := []struct {
		label string
		value int64
	}{
		{"Total de Funcionários", s.TotalFuncionarios},
		{"Total de Clientes", s.TotalClientes},
		{"Total de Empresas", s.TotalEmpresas},
		{"Presentes Hoje", s.FuncionariosPresentesHoje},
		{"Ausentes Hoje", s.FuncionariosAusentesHoje},
		{"Atestados Ativos", s.AtestadosAtivos},
	}
	if err := f.SetSheetRow(sheet, "A1", &[]any{"Indicador", "Valor"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", header); err != nil {
		return err
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &[]any{r.label, r.value}); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "A", 26)
}
