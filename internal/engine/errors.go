package engine

import "github.com/rotisserie/eris"

var (
	ErrDuplicateID = eris.New("item id already exists")
	ErrNotFound    = eris.New("item not found")
	ErrInvalidKey  = eris.New("invalid city or year")
	ErrNoData      = eris.New("no data available")
	ErrInvalidDate = eris.New("invalid date")
)
