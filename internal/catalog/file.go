package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go_5_memory_game/internal/middleware"
	"go_5_memory_game/internal/model"

	"github.com/xuri/excelize/v2"
)

// File reads the word list from a local manifest. The format follows the extension:
// .json uses the remote manifest shape, .csv and .xlsx hold label and image ref in the
// first two columns.
type File struct {
	Path string
}

func (f *File) Entries(ctx context.Context) ([]model.CatalogEntry, error) {
	logger := middleware.GetLogger(ctx)

	var (
		entries []model.CatalogEntry
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(f.Path)); ext {
	case ".json":
		entries, err = readJSONManifest(f.Path)
	case ".csv":
		entries, err = readCSVManifest(f.Path)
	case ".xlsx":
		entries, err = readExcelManifest(f.Path)
	default:
		return nil, fmt.Errorf("%w: unsupported manifest extension %q", model.ErrInvalidInput, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", f.Path, err)
	}

	logger.Info("Catalog manifest loaded", "path", f.Path, "words", len(entries))
	return entries, nil
}

func readJSONManifest(path string) ([]model.CatalogEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return decodeManifest(file)
}

func readCSVManifest(path string) ([]model.CatalogEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}
	return rowsToEntries(rows), nil
}

// readExcelManifest reads the first sheet; row 1 is always the header.
func readExcelManifest(path string) ([]model.CatalogEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}
	return rowsToEntries(rows), nil
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "label")
}

func rowsToEntries(rows [][]string) []model.CatalogEntry {
	entries := make([]model.CatalogEntry, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		e := model.CatalogEntry{Label: row[0]}
		if len(row) > 1 {
			e.ImageRef = row[1]
		}
		entries = append(entries, e)
	}
	return dedupe(entries)
}
