package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"pad/internal/models"
	"pad/internal/providers"
	"pad/internal/structures"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

type PresenceLoaderInterface interface {
	Load() (models.PresenceData, error)
}

// PresenceLoader reads the presence CSV export. Rows without exactly four
// fields are header or footer noise and are skipped silently; rows with an
// unparsable id, date or time are skipped with a warning. A later row for
// the same (user, date) overwrites the earlier one. Paths ending in .gz
// are decompressed while reading.
type PresenceLoader struct {
	path   string
	logger providers.Logger
}

func NewPresenceLoader(conf *structures.Config, logger providers.Logger) PresenceLoaderInterface {
	return &PresenceLoader{
		path:   conf.Sources.PresenceCSV,
		logger: logger,
	}
}

func (l *PresenceLoader) Load() (models.PresenceData, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open presence source: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(l.path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("open compressed presence source: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	data := make(models.PresenceData)
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	line := 0
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read presence source: %w", err)
		}
		line++
		if len(row) != 4 {
			// header and footer lines
			continue
		}

		userID, date, entry, err := parseRow(row)
		if err != nil {
			l.logger.Warnf(providers.TypeApp, "Skipping presence line %d: %s", line, err)
			continue
		}

		if _, ok := data[userID]; !ok {
			data[userID] = make(models.UserPresence)
		}
		data[userID][date] = entry
	}
	return data, nil
}

func parseRow(row []string) (int, models.Date, models.Entry, error) {
	userID, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return 0, models.Date{}, models.Entry{}, fmt.Errorf("user id %q: %w", row[0], err)
	}
	day, err := time.Parse(dateLayout, row[1])
	if err != nil {
		return 0, models.Date{}, models.Entry{}, fmt.Errorf("date %q: %w", row[1], err)
	}
	start, err := parseClock(row[2])
	if err != nil {
		return 0, models.Date{}, models.Entry{}, fmt.Errorf("start time %q: %w", row[2], err)
	}
	end, err := parseClock(row[3])
	if err != nil {
		return 0, models.Date{}, models.Entry{}, fmt.Errorf("end time %q: %w", row[3], err)
	}

	date := models.NewDate(day.Year(), day.Month(), day.Day())
	return userID, date, models.Entry{Start: start, End: end}, nil
}

func parseClock(s string) (models.Clock, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return models.Clock{}, err
	}
	return models.Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}
