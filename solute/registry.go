package solute

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WaterID is the builtin neutral solute.
const WaterID = "water"

var waterColor = RGB(224, 255, 255)

// The builtin table. Built once, never mutated; Registry overlays
// custom entries without touching it.
var builtins = []Solute{
	{ID: "drain-cleaner", Name: "Drain Cleaner", PH: 13.0, StockColor: RGB(255, 255, 0), DiluteColor: waterColor},
	{ID: "hand-soap", Name: "Hand Soap", PH: 10.0, StockColor: RGB(224, 141, 242), DiluteColor: waterColor},
	{ID: "blood", Name: "Blood", PH: 7.4, StockColor: RGB(211, 79, 68), DiluteColor: waterColor},
	{ID: "spit", Name: "Spit", PH: 7.4, StockColor: RGB(202, 240, 239), DiluteColor: waterColor},
	{ID: WaterID, Name: "Water", PH: 7.0, StockColor: waterColor, DiluteColor: waterColor},
	{ID: "milk", Name: "Milk", PH: 6.5, StockColor: RGB(250, 250, 250), DiluteColor: waterColor},
	{ID: "chicken-soup", Name: "Chicken Soup", PH: 5.8, StockColor: RGB(255, 240, 104), DiluteColor: waterColor},
	{ID: "coffee", Name: "Coffee", PH: 5.0, StockColor: RGB(164, 99, 7), DiluteColor: waterColor},
	{ID: "orange-juice", Name: "Orange Juice", PH: 3.5, StockColor: RGB(255, 180, 0), DiluteColor: waterColor},
	{ID: "soda", Name: "Soda Pop", PH: 2.5, StockColor: RGB(204, 255, 102), DiluteColor: waterColor,
		Stop: &ColorStop{Color: RGB(232, 255, 178), Ratio: 0.25}},
	{ID: "vomit", Name: "Vomit", PH: 2.0, StockColor: RGB(255, 171, 120), DiluteColor: waterColor},
	{ID: "battery-acid", Name: "Battery Acid", PH: 1.0, StockColor: RGB(255, 255, 0), DiluteColor: waterColor,
		Stop: &ColorStop{Color: RGB(255, 224, 204), Ratio: 0.25}},
}

// NotExistsError reports a lookup of an unknown solute.
type NotExistsError struct{ id string }

func (n NotExistsError) Error() string {
	return fmt.Sprintf("no such solute: '%s'", n.id)
}

// Registry resolves solutes by ID. The builtins are always present;
// custom entries loaded from YAML shadow builtins with the same ID.
type Registry struct {
	order []string
	byID  map[string]Solute
}

// NewRegistry builds a registry holding only the builtin solutes.
func NewRegistry() *Registry {
	r := &Registry{byID: make(map[string]Solute, len(builtins))}
	for _, s := range builtins {
		r.put(s)
	}
	return r
}

func (r *Registry) put(s Solute) {
	if _, ok := r.byID[s.ID]; !ok {
		r.order = append(r.order, s.ID)
	}
	r.byID[s.ID] = s
}

// Get returns the solute with the given ID.
func (r *Registry) Get(id string) (Solute, error) {
	s, ok := r.byID[id]
	if !ok {
		return Solute{}, NotExistsError{id}
	}
	return s, nil
}

// Water returns the builtin neutral solute.
func (r *Registry) Water() Solute {
	return r.byID[WaterID]
}

// All returns the solutes in registration order.
func (r *Registry) All() []Solute {
	l := make([]Solute, 0, len(r.order))
	for _, id := range r.order {
		l = append(l, r.byID[id])
	}
	return l
}

type yamlStop struct {
	Color string  `yaml:"color"`
	Ratio float64 `yaml:"ratio"`
}

type yamlSolute struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	PH          float64   `yaml:"ph"`
	StockColor  string    `yaml:"stock_color"`
	DiluteColor string    `yaml:"dilute_color"`
	Stop        *yamlStop `yaml:"color_stop"`
}

type yamlFile struct {
	Solutes []yamlSolute `yaml:"solutes"`
}

// LoadFile overlays custom solutes from a YAML file.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := r.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Load overlays custom solutes from YAML. Entries are validated;
// a single bad entry rejects the whole document and leaves the
// registry unchanged.
func (r *Registry) Load(reader io.Reader) error {
	dec := yaml.NewDecoder(reader)
	dec.KnownFields(true)

	var file yamlFile
	if err := dec.Decode(&file); err != nil {
		return fmt.Errorf("invalid solute file: %w", err)
	}

	parsed := make([]Solute, 0, len(file.Solutes))
	for _, y := range file.Solutes {
		s, err := y.solute()
		if err != nil {
			return err
		}
		parsed = append(parsed, s)
	}
	for _, s := range parsed {
		r.put(s)
	}
	return nil
}

func (y yamlSolute) solute() (Solute, error) {
	s := Solute{ID: y.ID, Name: y.Name, PH: y.PH}
	if s.Name == "" {
		s.Name = s.ID
	}

	var err error
	if s.StockColor, err = ParseColor(y.StockColor); err != nil {
		return s, fmt.Errorf("solute '%s': stock color: %w", y.ID, err)
	}
	s.DiluteColor = waterColor
	if y.DiluteColor != "" {
		if s.DiluteColor, err = ParseColor(y.DiluteColor); err != nil {
			return s, fmt.Errorf("solute '%s': dilute color: %w", y.ID, err)
		}
	}
	if y.Stop != nil {
		stop := &ColorStop{Ratio: y.Stop.Ratio}
		if stop.Color, err = ParseColor(y.Stop.Color); err != nil {
			return s, fmt.Errorf("solute '%s': color stop: %w", y.ID, err)
		}
		s.Stop = stop
	}

	return s, s.validate()
}
