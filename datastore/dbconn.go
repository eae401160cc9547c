package datastore

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	_ "github.com/lib/pq"
)

// NoRowsError reports a lookup that matched nothing.
type NoRowsError struct {
	NoRows bool
	Err    error
}

func (nr NoRowsError) Error() string {
	return fmt.Sprintf("%v: no rows returned for scan: %v", nr.NoRows, nr.Err)
}

func (nr NoRowsError) Unwrap() error {
	return nr.Err
}

// IsNoRows reports whether err is a NoRowsError.
func IsNoRows(err error) bool {
	var nr NoRowsError
	return errors.As(err, &nr)
}

// scanErr maps sql.ErrNoRows onto NoRowsError and passes anything else
// through.
func scanErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return NoRowsError{true, err}
	}
	return err
}

// NewDB opens a connection pool for dbtype and verifies it with a ping.
func NewDB(dbtype string, connstr string) (*sql.DB, error) {
	db, openError := sql.Open(dbtype, connstr)
	if openError != nil {
		return nil, fmt.Errorf("error opening connection -> %v", openError)
	}

	if pingError := db.Ping(); pingError != nil {
		db.Close()
		return nil, fmt.Errorf("could not establish connection with database -> %v", pingError)
	}

	return db, nil
}

// BuildDBConnStr builds a PostgreSQL connection string
func BuildDBConnStr(host, password, user, dbname, sslmode string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     host,
		Path:     dbname,
		RawQuery: url.Values{"sslmode": {sslmode}}.Encode(),
	}
	return u.String()
}
