package main

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"wayfinder-api/internal/config"

	"github.com/lib/pq"
)

type locationRecord struct {
	Address string
	Lat     float64
	Lon     float64
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	records, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	db, err := sql.Open("postgres", cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Ensure table exists
	if err := createTableIfNotExists(db); err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	// Bulk-insert records
	if err := insertRecords(db, records); err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	if err := verifyImport(db, len(records)); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records\n", len(records))
}

func parseCSV(filePath string) ([]locationRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []locationRecord
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 3 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 3 columns", len(record))
		}

		lat, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %s", record[1])
		}

		lon, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %s", record[2])
		}

		records = append(records, locationRecord{
			Address: record[0],
			Lat:     lat,
			Lon:     lon,
		})
	}

	return records, nil
}

func createTableIfNotExists(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS marked_locations (
			id BIGSERIAL PRIMARY KEY,
			address TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL
		)
	`)
	return err
}

func insertRecords(db *sql.DB, records []locationRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(pq.CopyIn("marked_locations", "address", "lat", "lon"))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare copy: %w", err)
	}

	for _, r := range records {
		if _, err := stmt.Exec(r.Address, r.Lat, r.Lon); err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf("failed to copy record: %w", err)
		}
	}

	// Flush the copy buffer.
	if _, err := stmt.Exec(); err != nil {
		stmt.Close()
		tx.Rollback()
		return fmt.Errorf("failed to flush copy: %w", err)
	}

	if err := stmt.Close(); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to close copy statement: %w", err)
	}

	return tx.Commit()
}

func verifyImport(db *sql.DB, expected int) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM marked_locations`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count rows: %w", err)
	}
	if count < expected {
		return fmt.Errorf("expected at least %d rows, found %d", expected, count)
	}
	fmt.Printf("Verified %d rows in marked_locations\n", count)
	return nil
}
