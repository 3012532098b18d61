package main

// Imports daily bars for one instrument from a CSV file into ClickHouse so
// the derivation worker has history to work on. Expected columns:
// date,open,high,low,close,volume,amount,p_change with an optional header
// row.
//
// Usage:
//   go run scripts/import_daily_bars.go --code 000001 --file bars.csv

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"athena/internal/adapters/clickhouse"
	"athena/internal/adapters/config"
	"athena/internal/domain/bars"
	chrepo "athena/internal/repository/clickhouse"
	"athena/pkg/logger"
)

func main() {
	code := flag.String("code", "", "Instrument code to import under")
	file := flag.String("file", "", "CSV file with daily bars")
	flag.Parse()

	if *code == "" || *file == "" {
		fmt.Println("Usage: import_daily_bars --code <instrument> --file <bars.csv>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: load config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		fmt.Printf("Error: init logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Get()

	series, err := readBars(*file, *code)
	if err != nil {
		log.Fatalf("Read %s: %v", *file, err)
	}
	if len(series) == 0 {
		log.Fatal("No rows in input file")
	}

	ch, err := clickhouse.NewClient(cfg.ClickHouse)
	if err != nil {
		log.Fatalf("Connect to ClickHouse: %v", err)
	}
	defer ch.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	repo := chrepo.NewBarRepository(ch.Conn())
	if err := repo.InsertDaily(ctx, series); err != nil {
		log.Fatalf("Insert bars: %v", err)
	}

	log.Infow("Import complete",
		"code", *code,
		"rows", len(series),
		"from", series[0].Date.Format("2006-01-02"),
		"to", series[len(series)-1].Date.Format("2006-01-02"),
	)
}

func readBars(path, code string) ([]bars.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 8

	var series []bars.Bar
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		date, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			if line == 1 {
				// Header row
				continue
			}
			return nil, fmt.Errorf("line %d: bad date %q", line, record[0])
		}

		values := make([]float64, 7)
		for i := 0; i < 7; i++ {
			values[i], err = strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad number %q", line, record[i+1])
			}
		}

		series = append(series, bars.Bar{
			Code:          code,
			Date:          date,
			Open:          values[0],
			High:          values[1],
			Low:           values[2],
			Close:         values[3],
			Volume:        values[4],
			Amount:        values[5],
			PercentChange: values[6],
		})
	}
	return series, nil
}
