// Package vehicle turns vehicle identity properties into the "vehicle.info"
// block of the engine configuration.
//
// Example usage:
//
//	cfg := vehicle.CreateVehicleInfoConfig(
//	    vehicle.NewProperty(vehicle.Make, "Acme"),
//	    vehicle.NewProperty(vehicle.Model, "Roadster"),
//	    vehicle.NewProperty(vehicle.Year, "2024"),
//	)
//	mk, _ := cfg.String("vehicle.info.make")
package vehicle
