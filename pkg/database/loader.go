package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"
	"time"

	"ads-daily-report/pkg/models"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

var tableNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Open accepts mariadb://, mysql://, postgres://, postgresql://, sqlite://
// URLs; anything else is handed to the MySQL driver as a native DSN.
// It returns the driver name and the DSN actually used.
func Open(dsn string) (*sql.DB, string, error) {
	driver, native, err := toDriverDSN(dsn)
	if err != nil {
		return nil, "", err
	}
	db, err := sql.Open(driver, native)
	if err != nil {
		return nil, "", eris.Wrapf(err, "open %s", driver)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, driver, nil
}

func toDriverDSN(dsn string) (driver, native string, err error) {
	switch {
	case strings.HasPrefix(dsn, "mariadb://"), strings.HasPrefix(dsn, "mysql://"):
		native, err = toMySQLDSN(dsn)
		return "mysql", native, err
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "pgx", dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return "", "", eris.New("sqlite dsn without path")
		}
		return "sqlite", path, nil
	}
	return "mysql", dsn, nil
}

func toMySQLDSN(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", eris.Wrap(err, "parse dsn")
	}
	user := ""
	pass := ""
	if u.User != nil {
		user = u.User.Username()
		pw, _ := u.User.Password()
		pass = pw
	}
	host := u.Host
	db := strings.TrimPrefix(u.Path, "/")
	if user == "" || host == "" || db == "" {
		return "", eris.New("incomplete dsn (user/host/db)")
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&interpolateParams=true",
		user, pass, host, db), nil
}

// LoadTable reads a whole table laid out like the report sheet: column names
// are the header, every value is read as text and NULL becomes "".
func LoadTable(ctx context.Context, db *sql.DB, tableName string) (models.RawTable, error) {
	if !tableNameRe.MatchString(tableName) {
		return models.RawTable{}, eris.Errorf("invalid table name %q", tableName)
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM %s`, tableName))
	if err != nil {
		return models.RawTable{}, eris.Wrapf(err, "select %s", tableName)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return models.RawTable{}, eris.Wrap(err, "columns")
	}
	out := models.RawTable{Header: cols}

	for rows.Next() {
		cells := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return models.RawTable{}, eris.Wrap(err, "scan")
		}
		row := make([]string, len(cols))
		for i, c := range cells {
			if c.Valid {
				row[i] = c.String
			}
		}
		out.Rows = append(out.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return models.RawTable{}, eris.Wrap(err, "rows")
	}

	log.Printf("[DEBUG] table=%s columns=%d rows=%d", tableName, len(cols), len(out.Rows))
	return out, nil
}

// Source reads the report table from a SQL database.
type Source struct {
	DSN   string
	Table string
}

// Fetch opens the database, loads the table and closes the connection.
func (s Source) Fetch(ctx context.Context) (models.RawTable, error) {
	db, driver, err := Open(s.DSN)
	if err != nil {
		return models.RawTable{}, err
	}
	defer db.Close()
	log.Printf("[INFO] connected driver=%s table=%s", driver, s.Table)
	return LoadTable(ctx, db, s.Table)
}
