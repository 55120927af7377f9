package sqldb

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// dateColumn scans a calendar date stored as TEXT (sqlite) or DATE (postgres).
type dateColumn struct {
	civil.Date
}

func (d *dateColumn) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Date = civil.DateOf(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		return fmt.Errorf("date column is null")
	default:
		return fmt.Errorf("unsupported date column type %T", src)
	}
}

func (d *dateColumn) parse(s string) error {
	// postgres text output and some sqlite drivers append a time part
	if len(s) > 10 {
		s = s[:10]
	}
	date, err := civil.ParseDate(s)
	if err != nil {
		return fmt.Errorf("failed to parse date column %q: %w", s, err)
	}
	d.Date = date
	return nil
}
