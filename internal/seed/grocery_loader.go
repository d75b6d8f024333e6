package seed

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// LoadGroceries ingests a CSV catalog into the groceries table. Rows are
// keyed by item code: existing codes are refreshed, new ones inserted.
// Expected columns: code, name, mfg_date, exp_date, quantity, cost_price,
// sale_price. The first row is treated as a header and skipped.
func LoadGroceries(db *sqlx.DB, csvPath string) {
	file, err := os.Open(csvPath)
	if err != nil {
		log.Printf("unable to load grocery catalog %s: %v", csvPath, err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Printf("unable to read grocery header: %v", err)
		return
	}

	tx, err := db.Beginx()
	if err != nil {
		log.Printf("unable to start grocery transaction: %v", err)
		return
	}

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("unable to read grocery row: %v", err)
			continue
		}
		if len(record) < 7 {
			continue
		}
		code := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		mfg := strings.TrimSpace(record[2])
		exp := strings.TrimSpace(record[3])
		qty, _ := strconv.ParseInt(strings.TrimSpace(record[4]), 10, 64)
		cost, _ := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
		sale, _ := strconv.ParseFloat(strings.TrimSpace(record[6]), 64)

		if code == "" || name == "" {
			continue
		}

		updated, err := tx.Exec(
			`UPDATE groceries SET name = ?, mfg_date = ?, exp_date = ?, quantity = ?, cost_price = ?, sale_price = ?, updated_at = CURRENT_TIMESTAMP
             WHERE code = ?`,
			name, mfg, exp, qty, cost, sale, code)
		if err != nil {
			log.Printf("unable to refresh grocery %s: %v", code, err)
			continue
		}
		if n, _ := updated.RowsAffected(); n == 0 {
			if _, err := tx.Exec(
				`INSERT INTO groceries (code, name, mfg_date, exp_date, quantity, cost_price, sale_price)
                 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				code, name, mfg, exp, qty, cost, sale); err != nil {
				log.Printf("unable to insert grocery %s: %v", code, err)
				continue
			}
		}
		rows++
	}

	if err := tx.Commit(); err != nil {
		log.Printf("unable to commit grocery seed: %v", err)
	} else {
		log.Printf("seeded grocery catalog with %d rows", rows)
	}
}
