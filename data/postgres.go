// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

package data

import (
	"database/sql"

	_ "github.com/lib/pq"
)

type postgres_driver struct {
}

func init() {
	RegisterDBDriver("postgres", postgres_driver{})
}

func (postgres postgres_driver) OpenDatabase(db *sql.DB) error {
	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS readings (
		id          serial PRIMARY KEY,
		run         text,
		seq         integer,
		timestamp   text,
		field       text,
		value       double precision
	)`); err != nil {
		db.Close()
		return err
	}

	if _, err := db.Exec(`
	CREATE INDEX IF NOT EXISTS i_readings ON readings (
		run,
		seq
	)`); err != nil {
		db.Close()
		return err
	}

	return nil
}

func (postgres postgres_driver) Close(db *sql.DB) {
}

func (postgres postgres_driver) InsertRow(db *sql.DB, run string, seq int, timestamp string, field string, value float64) error {
	stmt := `INSERT INTO readings (
		run,
		seq,
		timestamp,
		field,
		value
	) VALUES ($1, $2, $3, $4, $5)`

	_, err := db.Exec(stmt, run, seq, timestamp, field, value)
	return err
}

func (postgres postgres_driver) QueryRun(db *sql.DB, run string) (*sql.Rows, error) {
	stmt := `SELECT seq,timestamp,field,value FROM readings
		WHERE
			run = $1
		ORDER BY seq, id`
	return db.Query(stmt, run)
}
