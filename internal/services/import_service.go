package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/domain"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/repos"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/validate"
)

// importColumns is the exact header set a bulk upload must carry.
var importColumns = []string{"brand", "model", "storage", "color", "condition", "base_price", "stock", "tags"}

// ImportService turns tabular uploads into phone records, one validated row at
// a time, and writes inventory exports.
type ImportService struct {
	Phones *repos.PhoneRepo
}

func NewImportService(phones *repos.PhoneRepo) *ImportService {
	return &ImportService{Phones: phones}
}

type ImportResult struct {
	Added   int
	Skipped int
}

// ImportCSV reads a CSV stream with the exact expected header (case-insensitive,
// any order). Rows failing field validation are counted and skipped; valid rows
// become new phones.
func (s *ImportService) ImportCSV(r io.Reader) (ImportResult, error) {
	var res ImportResult

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return res, fmt.Errorf("read csv header: %w", err)
	}

	index := map[string]int{}
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	if !sameColumnSet(index) {
		sorted := append([]string(nil), importColumns...)
		sort.Strings(sorted)
		return res, fmt.Errorf("csv headers must be exactly: %s", strings.Join(sorted, ", "))
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read csv row: %w", err)
		}

		raw := map[string]string{}
		for _, col := range importColumns {
			if i := index[col]; i < len(row) {
				raw[col] = row[i]
			}
		}
		errs, fields := validate.PhoneInput(raw)
		if len(errs) > 0 {
			res.Skipped++
			continue
		}
		phone := domain.Phone{
			ID:        uuid.NewString(),
			Brand:     fields.Brand,
			Model:     fields.Model,
			Storage:   fields.Storage,
			Color:     fields.Color,
			Condition: domain.Condition(fields.Condition),
			BasePrice: fields.BasePrice,
			Stock:     fields.Stock,
			Tags:      fields.Tags,
		}
		if err := s.Phones.Create(phone); err != nil {
			return res, err
		}
		res.Added++
	}
	return res, nil
}

func sameColumnSet(index map[string]int) bool {
	if len(index) != len(importColumns) {
		return false
	}
	for _, col := range importColumns {
		if _, ok := index[col]; !ok {
			return false
		}
	}
	return true
}

// ExportCSV streams the whole inventory, including the raw overrides and
// listings JSON, for offline inspection.
func (s *ImportService) ExportCSV(w io.Writer) error {
	phones, err := s.Phones.List("", "")
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "brand", "model", "storage", "color", "condition", "base_price", "stock", "tags", "overrides_json", "listings_json"}); err != nil {
		return err
	}
	for _, p := range phones {
		overrides, err := json.Marshal(p.PriceOverrides)
		if err != nil {
			return err
		}
		listings, err := json.Marshal(p.Listings)
		if err != nil {
			return err
		}
		rec := []string{
			p.ID, p.Brand, p.Model, p.Storage, p.Color, string(p.Condition),
			strconv.FormatFloat(p.BasePrice, 'f', 2, 64),
			strconv.Itoa(p.Stock),
			p.Tags, string(overrides), string(listings),
		}
		if err := writer.Write(rec); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
