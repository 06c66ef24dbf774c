package dataset

import (
	"bufio"
	"bytes"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/csv"

	"github.com/ManuelReschke/CoronaDash/app/models"
)

const csvChunkRows = 4096

// caseSchema fixes the column order: country,date,confirmed,deaths,recovered.
var caseSchema = arrow.NewSchema([]arrow.Field{
	{Name: "country", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "date", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "confirmed", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "deaths", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	{Name: "recovered", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
}, nil)

var headerAliases = map[string]string{
	"country_region": "country",
	"country/region": "country",
}

// ReadCSV parses a case CSV and hands every validated record to fn.
// Empty counter cells read as zero.
func ReadCSV(r io.Reader, fn func(models.CaseRecord) error) error {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || header == "") {
		return fmt.Errorf("%w: read header: %v", ErrMalformed, err)
	}
	if err := checkHeader(header); err != nil {
		return err
	}

	// arrow panics on rows whose width differs from the schema, so every
	// row is checked before it reaches the columnar reader
	body, err := io.ReadAll(br)
	if err != nil {
		return fmt.Errorf("%w: read rows: %v", ErrMalformed, err)
	}
	if err := checkFieldCounts(body, len(caseSchema.Fields())); err != nil {
		return err
	}

	rdr := csv.NewReader(bytes.NewReader(body), caseSchema,
		csv.WithChunk(csvChunkRows),
		csv.WithNullReader(true, ""),
	)
	defer rdr.Release()

	row := 0
	for rdr.Next() {
		rec := rdr.Record()
		countries := rec.Column(0).(*array.String)
		dates := rec.Column(1).(*array.String)
		confirmed := rec.Column(2).(*array.Int64)
		deaths := rec.Column(3).(*array.Int64)
		recovered := rec.Column(4).(*array.Int64)

		for i := 0; i < int(rec.NumRows()); i++ {
			row++
			if countries.IsNull(i) {
				return fmt.Errorf("%w: row %d: missing country", ErrMalformed, row)
			}
			if dates.IsNull(i) {
				return fmt.Errorf("%w: row %d: missing date", ErrMalformed, row)
			}
			day, err := time.Parse(models.DateLayout, strings.TrimSpace(dates.Value(i)))
			if err != nil {
				return fmt.Errorf("%w: row %d: %v", ErrMalformed, row, err)
			}

			cr := models.CaseRecord{
				// arrow hands out views into its buffers
				Country:   strings.Clone(strings.TrimSpace(countries.Value(i))),
				Date:      day,
				Confirmed: int64OrZero(confirmed, i),
				Deaths:    int64OrZero(deaths, i),
				Recovered: int64OrZero(recovered, i),
			}
			if err := cr.Validate(); err != nil {
				return fmt.Errorf("%w: row %d: %v", ErrMalformed, row, err)
			}
			if err := fn(cr); err != nil {
				return err
			}
		}
	}
	if err := rdr.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func int64OrZero(col *array.Int64, i int) int64 {
	if col.IsNull(i) {
		return 0
	}
	return col.Value(i)
}

// checkFieldCounts reports the first row whose field count is not n.
// Line numbers count the header as line 1.
func checkFieldCounts(body []byte, n int) error {
	r := stdcsv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = n
	r.ReuseRecord = true
	for {
		_, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var pe *stdcsv.ParseError
			if errors.As(err, &pe) {
				return fmt.Errorf("%w: line %d: %v", ErrMalformed, pe.Line+1, pe.Err)
			}
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
}

func checkHeader(line string) error {
	line = strings.TrimPrefix(strings.TrimRight(line, "\r\n"), "\ufeff")
	got := strings.Split(line, ",")
	want := caseSchema.Fields()
	if len(got) != len(want) {
		return fmt.Errorf("%w: header has %d columns, want %d", ErrMalformed, len(got), len(want))
	}
	for i, name := range got {
		name = strings.ToLower(strings.Trim(strings.TrimSpace(name), `"`))
		if alias, ok := headerAliases[name]; ok {
			name = alias
		}
		if name != want[i].Name {
			return fmt.Errorf("%w: header column %d is %q, want %q", ErrMalformed, i+1, name, want[i].Name)
		}
	}
	return nil
}
