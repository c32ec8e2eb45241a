package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"simpleinv/internal/engine"
	"simpleinv/internal/model"
	"simpleinv/internal/report"
)

var (
	weatherCities = []string{"Delhi", "Mumbai", "Chennai", "Bengaluru", "Kolkata", "Hyderabad"}
	weatherYears  = []int{2022, 2023, 2024, 2025}

	weatherSeed = []model.WeatherRecord{
		{Date: "01/01/2022", City: "Delhi", Temperature: 24.5},
		{Date: "01/01/2022", City: "Mumbai", Temperature: 28.3},
		{Date: "01/01/2023", City: "Chennai", Temperature: 31.2},
		{Date: "01/01/2023", City: "Bengaluru", Temperature: 22.7},
		{Date: "01/01/2024", City: "Kolkata", Temperature: 26.5},
		{Date: "01/01/2024", City: "Hyderabad", Temperature: 27.1},
		{Date: "01/01/2025", City: "Delhi", Temperature: 29.0},
		{Date: "01/01/2025", City: "Mumbai", Temperature: 30.2},
	}
)

const invalidKeyLine = "Invalid city or year!"

// Weather wraps engine.Weather and writes a status line for every call.
type Weather struct {
	ws *engine.Weather
	w  io.Writer
}

func NewWeather(w io.Writer, cities []string, years []int, logger zerolog.Logger) *Weather {
	return &Weather{ws: engine.NewWeather(cities, years, logger), w: w}
}

func (d *Weather) Store() *engine.Weather { return d.ws }

func (d *Weather) Insert(rec model.WeatherRecord) bool {
	year, err := engine.YearOf(rec.Date)
	if err != nil {
		d.printf("Invalid date %q!\n", rec.Date)
		return false
	}
	if err := d.ws.Insert(rec.City, year, rec.Temperature); err != nil {
		d.printf("%s\n", invalidKeyLine)
		return false
	}
	d.printf("Inserted: %s %d -> %g°C\n", rec.City, year, rec.Temperature)
	return true
}

func (d *Weather) Delete(city string, year int) bool {
	if err := d.ws.Delete(city, year); err != nil {
		d.printf("%s\n", invalidKeyLine)
		return false
	}
	d.printf("Deleted record for %s in %d\n", city, year)
	return true
}

func (d *Weather) Retrieve(city string, year int) (float64, bool) {
	temp, err := d.ws.Retrieve(city, year)
	switch {
	case errors.Is(err, engine.ErrNoData):
		d.printf("No data available for %s in %d\n", city, year)
		return 0, false
	case err != nil:
		d.printf("%s\n", invalidKeyLine)
		return 0, false
	}
	d.printf("Temperature for %s in %d = %g°C\n", city, year, temp)
	return temp, true
}

func (d *Weather) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(d.w, format, args...)
}

// RunWeather plays the weather script against a fresh grid.
func RunWeather(w io.Writer, logger zerolog.Logger) error {
	logger = logger.With().Str("demo", "weather").Logger()
	logger.Info().Int("cities", len(weatherCities)).Int("years", len(weatherYears)).Msg("starting demo")

	d := NewWeather(w, weatherCities, weatherYears, logger)
	for _, rec := range weatherSeed {
		d.Insert(rec)
	}

	section(w, "Retrieve Example")
	d.Retrieve("Delhi", 2025)
	d.Retrieve("Chennai", 2023)

	section(w, "Row Major Access")
	report.PrintRowMajor(w, d.Store())

	section(w, "Column Major Access")
	report.PrintColumnMajor(w, d.Store())

	section(w, "Sparse Data")
	report.PrintSparse(w, d.Store())

	section(w, "Efficiency Comparison")
	timing := report.CompareTraversal(w, d.Store())
	logger.Debug().Dur("row_major", timing.RowMajor).Dur("column_major", timing.ColumnMajor).Msg("traversal timing")

	section(w, "Complexity Analysis")
	report.PrintWeatherComplexity(w)

	section(w, "Delete Example")
	d.Delete("Mumbai", 2025)
	d.Retrieve("Mumbai", 2025)

	logger.Info().Int("readings", len(d.Store().Present())).Msg("demo finished")
	return nil
}

func section(w io.Writer, name string) {
	_, _ = fmt.Fprintln(w)
	report.Heading(w, " "+name+" :")
}
