package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/couchcryptid/meteoraid/internal/domain"
)

// CountHeader is the header row of the count table.
var CountHeader = []string{"Shower", "Date", "Start", "End", "Sol Long", "Teff", "RA", "Dec", "F", "Lm", "Number"}

// DistributionHeader is the header row of the distribution table: four
// identifying columns followed by one column per whole magnitude.
var DistributionHeader = func() []string {
	h := []string{"Shower", "Date", "Start", "End"}
	for m := domain.MinMagnitudeBin; m <= domain.MaxMagnitudeBin; m++ {
		h = append(h, strconv.Itoa(m))
	}
	return h
}()

// WriteCountCSV writes the count table for s to w.
func WriteCountCSV(w io.Writer, s domain.Session, dateLayout string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CountHeader); err != nil {
		return fmt.Errorf("write count header: %w", err)
	}
	for _, r := range CountRows(s, dateLayout) {
		sol := ""
		if r.HasSolarLongitude {
			sol = formatFloat(r.SolarLongitude, 3)
		}
		record := []string{
			r.Shower.Code(),
			r.Date,
			r.Start.String(),
			r.End.String(),
			sol,
			formatFloat(r.Teff, 3),
			formatFloat(r.Field.RA, -1),
			formatFloat(r.Field.Dec, -1),
			formatFloat(r.CloudFactor, 2),
			formatFloat(r.LimitingMagnitude, 2),
			strconv.Itoa(r.Number),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write count row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDistributionCSV writes the magnitude distribution table for s to w.
// Bins hold meteor counts and may be halves.
func WriteDistributionCSV(w io.Writer, s domain.Session) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(DistributionHeader); err != nil {
		return fmt.Errorf("write distribution header: %w", err)
	}
	for _, r := range DistributionRows(s) {
		record := []string{r.Shower.Code(), r.Date, r.Start.String(), r.End.String()}
		for m := domain.MinMagnitudeBin; m <= domain.MaxMagnitudeBin; m++ {
			record = append(record, formatFloat(r.Distribution.Count(m), -1))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write distribution row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CountCSV renders the count table to a string.
func CountCSV(s domain.Session, dateLayout string) (string, error) {
	var buf bytes.Buffer
	if err := WriteCountCSV(&buf, s, dateLayout); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DistributionCSV renders the distribution table to a string.
func DistributionCSV(s domain.Session) (string, error) {
	var buf bytes.Buffer
	if err := WriteDistributionCSV(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
