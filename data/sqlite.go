package data

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3" // Load SQLite DB driver
)

type sqlite_driver struct {
}

func init() {
	RegisterDBDriver("sqlite3", sqlite_driver{})
}

func (sqlite sqlite_driver) OpenDatabase(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS readings (
		run         text,
		seq         integer,
		timestamp   text,
		field       text,
		value       real
	)`)
	if err != nil {
		db.Close()
		return err
	}

	return nil
}

func (sqlite sqlite_driver) Close(db *sql.DB) {
}

func (sqlite sqlite_driver) InsertRow(db *sql.DB, run string, seq int, timestamp string, field string, value float64) error {
	stmt := `INSERT INTO readings (
		run,
		seq,
		timestamp,
		field,
		value
	) VALUES (?, ?, ?, ?, ?)`

	_, err := db.Exec(stmt, run, seq, timestamp, field, value)
	return err
}

func (sqlite sqlite_driver) QueryRun(db *sql.DB, run string) (*sql.Rows, error) {
	stmt := `SELECT seq,timestamp,field,value FROM readings
		WHERE
			run = ?
		ORDER BY seq, rowid`
	return db.Query(stmt, run)
}
