// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

package data

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
)

type mysql_driver struct {
}

func init() {
	RegisterDBDriver("mysql", mysql_driver{})
}

func (mysql mysql_driver) OpenDatabase(db *sql.DB) error {
	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS readings (
		id          integer AUTO_INCREMENT PRIMARY KEY,
		run         varchar(64),
		seq         integer,
		timestamp   varchar(128),
		field       varchar(128),
		value       double
	)`); err != nil {
		db.Close()
		return err
	}

	row := db.QueryRow(`
	SELECT COUNT(1) IndexIsThere FROM INFORMATION_SCHEMA.STATISTICS WHERE
		table_schema=DATABASE() AND
		table_name='readings' AND
		index_name='i_readings';
	`)
	var result int
	err := row.Scan(&result)
	if err != nil {
		db.Close()
		return err
	}

	if result == 0 {
		if _, err := db.Exec(`
		CREATE INDEX i_readings ON readings (
			run,
			seq
		)`); err != nil {
			db.Close()
			return err
		}
	}

	return nil
}

func (mysql mysql_driver) Close(db *sql.DB) {
}

func (mysql mysql_driver) InsertRow(db *sql.DB, run string, seq int, timestamp string, field string, value float64) error {
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

func (mysql mysql_driver) QueryRun(db *sql.DB, run string) (*sql.Rows, error) {
	stmt := `SELECT seq,timestamp,field,value FROM readings
		WHERE
			run = ?
		ORDER BY seq, id`
	return db.Query(stmt, run)
}
