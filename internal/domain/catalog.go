package domain

// ModeProfile - базовые цена/CO2/время для вида транспорта на референсной дистанции
type ModeProfile struct {
	Name      string  `json:"name"`
	Price     int64   `json:"price"`
	CO2Kg     float64 `json:"co2"`
	Duration  string  `json:"time"`
	Available bool    `json:"available"`
}

// Destination - направление из каталога
type Destination struct {
	Name                string      `json:"name"`
	Coordinate          Coordinate  `json:"coords"`
	ReferenceDistanceKm float64     `json:"distance"`
	Flight              ModeProfile `json:"flight"`
	Train               ModeProfile `json:"train"`
	Bus                 ModeProfile `json:"bus"`
}

// Profile returns the baseline profile for a per-traveler mode.
func (d *Destination) Profile(mode TransportMode) (ModeProfile, bool) {
	switch mode {
	case TransportFlight:
		return d.Flight, true
	case TransportTrain:
		return d.Train, true
	case TransportBus:
		return d.Bus, true
	}
	return ModeProfile{}, false
}

// City - точка отправления
type City struct {
	Name       string     `json:"name"`
	Coordinate Coordinate `json:"coords"`
}

// Option - вариант проживания (цена за день) или питания (цена за день на человека).
// Exclusive options (e.g. "With Relatives") never mix with regular ones in a combination.
type Option struct {
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	CO2Kg       float64 `json:"co2"`
	BookingLink string  `json:"booking_link"`
	Exclusive   bool    `json:"exclusive"`
}

// Catalog - неизменяемые справочные данные, загружаются один раз при старте
type Catalog struct {
	Version        string
	destinations   []Destination
	cities         []City
	accommodations []Option
	foods          []Option

	destinationIdx   map[string]int
	cityIdx          map[string]int
	accommodationIdx map[string]int
	foodIdx          map[string]int
}

// NewCatalog indexes the given slices. Order is preserved and drives
// deterministic iteration; duplicate names keep the first entry.
func NewCatalog(version string, destinations []Destination, cities []City, accommodations, foods []Option) *Catalog {
	c := &Catalog{
		Version:        version,
		destinations:   append([]Destination(nil), destinations...),
		cities:         append([]City(nil), cities...),
		accommodations: append([]Option(nil), accommodations...),
		foods:          append([]Option(nil), foods...),
	}

	c.destinationIdx = make(map[string]int, len(c.destinations))
	for i, d := range c.destinations {
		if _, ok := c.destinationIdx[d.Name]; !ok {
			c.destinationIdx[d.Name] = i
		}
	}
	c.cityIdx = make(map[string]int, len(c.cities))
	for i, city := range c.cities {
		if _, ok := c.cityIdx[city.Name]; !ok {
			c.cityIdx[city.Name] = i
		}
	}
	c.accommodationIdx = indexOptions(c.accommodations)
	c.foodIdx = indexOptions(c.foods)

	return c
}

func indexOptions(opts []Option) map[string]int {
	idx := make(map[string]int, len(opts))
	for i, o := range opts {
		if _, ok := idx[o.Name]; !ok {
			idx[o.Name] = i
		}
	}
	return idx
}

func (c *Catalog) Destination(name string) (Destination, bool) {
	i, ok := c.destinationIdx[name]
	if !ok {
		return Destination{}, false
	}
	return c.destinations[i], true
}

func (c *Catalog) City(name string) (City, bool) {
	i, ok := c.cityIdx[name]
	if !ok {
		return City{}, false
	}
	return c.cities[i], true
}

func (c *Catalog) Accommodation(name string) (Option, bool) {
	i, ok := c.accommodationIdx[name]
	if !ok {
		return Option{}, false
	}
	return c.accommodations[i], true
}

func (c *Catalog) Food(name string) (Option, bool) {
	i, ok := c.foodIdx[name]
	if !ok {
		return Option{}, false
	}
	return c.foods[i], true
}

// Destinations returns a copy in catalog order.
func (c *Catalog) Destinations() []Destination {
	return append([]Destination(nil), c.destinations...)
}

// Cities returns a copy in catalog order.
func (c *Catalog) Cities() []City {
	return append([]City(nil), c.cities...)
}

// Accommodations returns a copy in catalog order.
func (c *Catalog) Accommodations() []Option {
	return append([]Option(nil), c.accommodations...)
}

// Foods returns a copy in catalog order.
func (c *Catalog) Foods() []Option {
	return append([]Option(nil), c.foods...)
}
