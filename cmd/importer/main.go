// The importer replaces the spreadsheet cleaning macro: it takes raw
// Outscraper rows (a CSV export or a live API query), runs the cleaning
// passes and upserts the survivors by name.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"datessouq/internal/config"
	"datessouq/internal/database"
	"datessouq/internal/importer"
	"datessouq/internal/logger"
	"datessouq/internal/models"
	"datessouq/internal/outscraper"
	"datessouq/internal/services"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	var (
		csvPath  = flag.String("csv", "", "path to an Outscraper CSV export")
		query    = flag.String("query", "", "live Outscraper search query (e.g. \"dates supplier Riyadh\")")
		language = flag.String("language", "en", "Outscraper result language")
		region   = flag.String("region", "SA", "Outscraper region code")
		limit    = flag.Int("limit", 100, "max results per live query")
	)
	flag.Parse()

	cfg := config.Load()
	logr := logger.New(cfg)
	defer logr.Sync()

	if (*csvPath == "") == (*query == "") {
		logr.Fatal("exactly one of -csv or -query is required")
	}

	db, err := database.New(cfg.DatabaseURL, cfg)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var rows []importer.RawRow
	if *csvPath != "" {
		rows, err = readCSV(*csvPath)
		if err != nil {
			logr.Fatal("failed to read csv", zap.Error(err), zap.String("path", *csvPath))
		}
	} else {
		if cfg.OutscraperAPIKey == "" {
			logr.Fatal("OUTSCRAPER_API_KEY is required for live queries")
		}
		client := outscraper.NewClient(cfg.OutscraperAPIKey)
		places, err := client.GoogleMapsSearch(ctx, *query, *language, *region, *limit)
		if err != nil {
			logr.Fatal("outscraper search failed", zap.Error(err), zap.String("query", *query))
		}
		rows = placesToRows(places)
	}

	batchID := uuid.New().String()
	logr.Info("import started",
		zap.String("batch_id", batchID),
		zap.Int("rows", len(rows)))

	cleaner := importer.NewCleaner(logr.Logger)
	cleaned, summary := cleaner.Clean(rows)

	listingSvc := services.NewListingService(db)

	var imported, failed int
	for _, row := range cleaned {
		req := rowToRequest(row)
		if _, err := listingSvc.Upsert(ctx, req); err != nil {
			failed++
			logr.Warn("upsert failed", zap.Error(err), zap.String("name", row.Name))
			continue
		}
		imported++
	}

	logr.Info("import finished",
		zap.String("batch_id", batchID),
		zap.Int("input", summary.Input),
		zap.Int("cleaned", summary.Kept),
		zap.Int("imported", imported),
		zap.Int("failed", failed))
}

// readCSV maps an export's columns by header name; missing columns yield
// empty fields rather than errors.
func readCSV(path string) ([]importer.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	field := func(record []string, names ...string) string {
		for _, n := range names {
			if i, ok := col[n]; ok && i < len(record) {
				return record[i]
			}
		}
		return ""
	}

	var rows []importer.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, importer.RawRow{
			Name:      field(record, "business name", "name"),
			Category:  field(record, "category", "type"),
			City:      field(record, "city"),
			Phone:     field(record, "phone"),
			Website:   field(record, "website", "site"),
			Rating:    field(record, "rating"),
			MapsURL:   field(record, "maps url"),
			Address:   field(record, "address", "full_address"),
			Latitude:  field(record, "latitude"),
			Longitude: field(record, "longitude"),
		})
	}
	return rows, nil
}

func placesToRows(places []outscraper.Place) []importer.RawRow {
	rows := make([]importer.RawRow, 0, len(places))
	for _, p := range places {
		category := p.Type
		if len(p.Subtypes) > 0 {
			category = p.Subtypes[0]
		}
		rows = append(rows, importer.RawRow{
			Name:      p.Name,
			Category:  category,
			City:      p.City,
			Phone:     p.Phone,
			Website:   p.Site,
			Rating:    floatString(p.Rating),
			MapsURL:   p.MapsURL(),
			Address:   p.FullAddress,
			Latitude:  floatString(p.Latitude),
			Longitude: floatString(p.Longitude),
		})
	}
	return rows
}

func floatString(f *float64) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%g", *f)
}

func rowToRequest(row importer.CleanRow) models.UpsertListingRequest {
	return models.UpsertListingRequest{
		Name:      row.Name,
		Category:  &row.Category,
		City:      &row.City,
		Phone:     row.Phone,
		Website:   row.Website,
		Address:   row.Address,
		MapsURL:   row.MapsURL,
		Rating:    models.NullableFloat{Value: row.Rating},
		Latitude:  models.NullableFloat{Value: row.Latitude},
		Longitude: models.NullableFloat{Value: row.Longitude},
	}
}
