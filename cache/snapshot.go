// ABOUTME: Snapshot read/write operations for the property list
// ABOUTME: ReplaceAll swaps the cached list atomically, LoadAll restores it
package cache

import (
	"database/sql"
	"fmt"
	"time"

	"imovia/models"
)

// ReplaceAll swaps the cached property list for the given one. The whole
// snapshot is replaced in one transaction so a crash can never leave a mix
// of two server states behind.
func ReplaceAll(db *sql.DB, items []models.PropertyListItem) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM property_snapshot"); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO property_snapshot (
			position, id, name, description, property_type, property_status,
			lat, lng, matricula, current_tenant, current_rent_value,
			current_contract_end, current_contract_status, iptu_status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare snapshot insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range items {
		_, err := stmt.Exec(i, p.ID, p.Name, p.Description, p.Type, p.Status,
			p.Lat, p.Lng, p.Matricula, p.CurrentTenant, p.CurrentRentValue,
			p.CurrentContractEndDate, p.CurrentContractStatus, p.IptuStatus)
		if err != nil {
			return fmt.Errorf("failed to insert snapshot row %s: %w", p.ID, err)
		}
	}

	_, err = tx.Exec(`INSERT INTO snapshot_meta (key, value) VALUES ('saved_at', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to stamp snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// LoadAll returns the cached property list in its saved order. An empty
// cache yields an empty slice, not an error.
func LoadAll(db *sql.DB) ([]models.PropertyListItem, error) {
	rows, err := db.Query(`
		SELECT id, name, description, property_type, property_status,
			lat, lng, matricula, current_tenant, current_rent_value,
			current_contract_end, current_contract_status, iptu_status
		FROM property_snapshot ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer rows.Close()

	var items []models.PropertyListItem
	for rows.Next() {
		var p models.PropertyListItem
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Type, &p.Status,
			&p.Lat, &p.Lng, &p.Matricula, &p.CurrentTenant, &p.CurrentRentValue,
			&p.CurrentContractEndDate, &p.CurrentContractStatus, &p.IptuStatus)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// SavedAt returns when the snapshot was last written, or the zero time if
// nothing has been cached yet.
func SavedAt(db *sql.DB) (time.Time, error) {
	var value string
	err := db.QueryRow("SELECT value FROM snapshot_meta WHERE key = 'saved_at'").Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read snapshot stamp: %w", err)
	}
	return time.Parse(time.RFC3339, value)
}
