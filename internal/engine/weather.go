package engine

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"simpleinv/internal/model"
)

// MissingTemperature marks a grid cell with no reading.
const MissingTemperature = -999.0

const (
	dateYearOffset = 6
	dateYearLen    = 4
)

// Weather is a years x cities temperature grid. Rows are years, columns cities.
type Weather struct {
	cities []string
	years  []int
	data   [][]float64
	logger zerolog.Logger
}

func NewWeather(cities []string, years []int, logger zerolog.Logger) *Weather {
	data := make([][]float64, len(years))
	for i := range data {
		row := make([]float64, len(cities))
		for j := range row {
			row[j] = MissingTemperature
		}
		data[i] = row
	}
	return &Weather{
		cities: append([]string(nil), cities...),
		years:  append([]int(nil), years...),
		data:   data,
		logger: logger,
	}
}

// Insert stores temp for (city, year), overwriting any previous reading.
func (w *Weather) Insert(city string, year int, temp float64) error {
	row, col, err := w.cell(city, year)
	if err != nil {
		return err
	}
	w.data[row][col] = temp
	w.logger.Debug().Str("city", city).Int("year", year).Float64("temperature", temp).Msg("reading inserted")
	return nil
}

// Populate inserts each record, taking the year from the DD/MM/YYYY date.
// It stops at the first record that cannot be stored.
func (w *Weather) Populate(records []model.WeatherRecord) error {
	for _, rec := range records {
		year, err := YearOf(rec.Date)
		if err != nil {
			return err
		}
		if err := w.Insert(rec.City, year, rec.Temperature); err != nil {
			return err
		}
	}
	return nil
}

// Delete resets the (city, year) cell to MissingTemperature.
func (w *Weather) Delete(city string, year int) error {
	row, col, err := w.cell(city, year)
	if err != nil {
		return err
	}
	w.data[row][col] = MissingTemperature
	w.logger.Debug().Str("city", city).Int("year", year).Msg("reading deleted")
	return nil
}

func (w *Weather) Retrieve(city string, year int) (float64, error) {
	row, col, err := w.cell(city, year)
	if err != nil {
		return 0, err
	}
	temp := w.data[row][col]
	if temp == MissingTemperature {
		return 0, eris.Wrapf(ErrNoData, "%s in %d", city, year)
	}
	return temp, nil
}

// RowMajor visits every cell year by year.
func (w *Weather) RowMajor() []model.Cell {
	out := make([]model.Cell, 0, len(w.years)*len(w.cities))
	for i := range w.years {
		for j := range w.cities {
			out = append(out, w.at(i, j))
		}
	}
	return out
}

// ColumnMajor visits every cell city by city.
func (w *Weather) ColumnMajor() []model.Cell {
	out := make([]model.Cell, 0, len(w.years)*len(w.cities))
	for j := range w.cities {
		for i := range w.years {
			out = append(out, w.at(i, j))
		}
	}
	return out
}

// Present lists the cells holding a reading, in row-major order.
func (w *Weather) Present() []model.Cell {
	var out []model.Cell
	for _, c := range w.RowMajor() {
		if !c.Missing {
			out = append(out, c)
		}
	}
	return out
}

// YearOf extracts YYYY from a DD/MM/YYYY date.
func YearOf(date string) (int, error) {
	if len(date) < dateYearOffset+dateYearLen {
		return 0, eris.Wrapf(ErrInvalidDate, "%q", date)
	}
	year, err := strconv.Atoi(date[dateYearOffset : dateYearOffset+dateYearLen])
	if err != nil {
		return 0, eris.Wrapf(ErrInvalidDate, "%q", date)
	}
	return year, nil
}

func (w *Weather) at(i, j int) model.Cell {
	temp := w.data[i][j]
	return model.Cell{
		Year:        w.years[i],
		City:        w.cities[j],
		Temperature: temp,
		Missing:     temp == MissingTemperature,
	}
}

func (w *Weather) cell(city string, year int) (int, int, error) {
	row := w.yearIndex(year)
	col := w.cityIndex(city)
	if row == -1 || col == -1 {
		return 0, 0, eris.Wrapf(ErrInvalidKey, "%s/%d", city, year)
	}
	return row, col, nil
}

func (w *Weather) cityIndex(city string) int {
	for i, c := range w.cities {
		if c == city {
			return i
		}
	}
	return -1
}

func (w *Weather) yearIndex(year int) int {
	for i, y := range w.years {
		if y == year {
			return i
		}
	}
	return -1
}
