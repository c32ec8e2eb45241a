package model

// Item is a single inventory record.
type Item struct {
	ID       int
	Name     string
	Quantity int
	Price    float64
}

func NewItem(id int, name string, qty int, price float64) Item {
	return Item{ID: id, Name: name, Quantity: qty, Price: price}
}

// WeatherRecord is one dated temperature reading. Date is DD/MM/YYYY.
type WeatherRecord struct {
	Date        string
	City        string
	Temperature float64
}

// Cell is one position of the weather grid as visited by a traversal.
type Cell struct {
	Year        int
	City        string
	Temperature float64
	Missing     bool
}
