package config

import "github.com/kilianp07/vehicleinfo/core/vehicle"

// VehicleConfig carries the vehicle identity. Empty fields are treated as
// not supplied. Quote numeric looking values in YAML ("1.10") so they are
// not reformatted by the parser.
type VehicleConfig struct {
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      string `json:"year"`
	Trim      string `json:"trim"`
	Geography string `json:"geography"`
	Version   string `json:"version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	Language  string `json:"language"`
}

func (c *VehicleConfig) field(k vehicle.PropertyKind) *string {
	switch k {
	case vehicle.Make:
		return &c.Make
	case vehicle.Model:
		return &c.Model
	case vehicle.Year:
		return &c.Year
	case vehicle.Trim:
		return &c.Trim
	case vehicle.Geography:
		return &c.Geography
	case vehicle.Version:
		return &c.Version
	case vehicle.OperatingSystem:
		return &c.OS
	case vehicle.HardwareArch:
		return &c.Arch
	case vehicle.Language:
		return &c.Language
	}
	panic("config: no field for vehicle property " + k.String())
}

// Set stores value for kind.
func (c *VehicleConfig) Set(kind vehicle.PropertyKind, value string) {
	*c.field(kind) = value
}

// Get returns the value for kind.
func (c *VehicleConfig) Get(kind vehicle.PropertyKind) string {
	return *c.field(kind)
}

// Properties returns the non-empty fields in declaration order.
func (c VehicleConfig) Properties() []vehicle.Property {
	var props []vehicle.Property
	for _, k := range vehicle.Kinds() {
		if v := c.Get(k); v != "" {
			props = append(props, vehicle.NewProperty(k, v))
		}
	}
	return props
}
