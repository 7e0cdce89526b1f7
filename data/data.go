package data

import (
	"database/sql"
	"fmt"
	"sort"

	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"github.com/mattleung10/PicoLog-Thermocouple-Converter/batch"
)

// Database archives converted collections.
type Database struct {
	db     *sql.DB
	driver DBdriver
}

// Row is one archived field value.
type Row struct {
	Seq       int
	Timestamp string
	Field     string
	Value     float64
}

var drivers map[string]DBdriver

type DBdriver interface {
	OpenDatabase(db *sql.DB) error
	Close(db *sql.DB)
	InsertRow(db *sql.DB, run string, seq int, timestamp string, field string, value float64) error
	QueryRun(db *sql.DB, run string) (*sql.Rows, error)
}

func init() {
	drivers = make(map[string]DBdriver)
}

func RegisterDBDriver(name string, driver DBdriver) {
	drivers[name] = driver
}

func DBDrivers() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OpenDatabase opens the database named by the "dbDriver" and "database"
// settings and creates the archive table if needed.
func OpenDatabase() (*Database, error) {
	name := viper.GetString("dbDriver")
	driver, ok := drivers[name]
	if !ok {
		return nil, fmt.Errorf("unknown database driver %q", name)
	}

	db, err := sql.Open(name, viper.GetString("database"))
	if err != nil {
		return nil, err
	}
	if err := driver.OpenDatabase(db); err != nil {
		return nil, err
	}

	return &Database{db, driver}, nil
}

func (database *Database) Close() {
	database.driver.Close(database.db)
	database.db.Close()
}

func (database *Database) InsertRow(run string, seq int, timestamp string, field string, value float64) error {
	return database.driver.InsertRow(database.db, run, seq, timestamp, field, value)
}

// InsertCollection archives every converted field of c under run. The
// timestamp column is stored with each value rather than as a field.
func (database *Database) InsertCollection(run string, c *batch.Collection) error {
	ts := c.Timestamp()
	for seq, r := range c.Records {
		for _, f := range c.Fields {
			if f == ts {
				continue
			}
			value, err := batch.ParseFloat(r[f])
			if err != nil {
				return &batch.FieldError{Record: seq, Field: f, Err: err}
			}
			if err := database.InsertRow(run, seq, r[ts], f, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// QueryRun streams the rows archived under run in record order. The
// channel is closed after the last row, or early if a row cannot be read.
func (database *Database) QueryRun(run string) (<-chan Row, error) {
	rows, err := database.driver.QueryRun(database.db, run)
	if err != nil {
		return nil, err
	}

	ch := make(chan Row, 64)
	go func() {
		defer close(ch)
		defer rows.Close()
		for rows.Next() {
			var row Row
			if err := rows.Scan(&row.Seq, &row.Timestamp, &row.Field, &row.Value); err != nil {
				jww.ERROR.Println("Reading run", run, err)
				return
			}
			ch <- row
		}
		if err := rows.Err(); err != nil {
			jww.ERROR.Println("Reading run", run, err)
		}
	}()

	return ch, nil
}
