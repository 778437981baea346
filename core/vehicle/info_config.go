package vehicle

import "github.com/kilianp07/vehicleinfo/core/engineconfig"

const (
	// ConfigRoot is the top level configuration key of the vehicle service.
	ConfigRoot = "vehicle"
	// InfoSection holds the vehicle identity inside ConfigRoot.
	InfoSection = "info"
	// InfoPath is the delimited path of the info block.
	InfoPath = ConfigRoot + engineconfig.Delim + InfoSection
)

// CreateVehicleInfoConfig builds the configuration equivalent to
//
//	{
//	  "vehicle": {
//	    "info": {
//	      "make": "<MAKE>",
//	      "model": "<MODEL>",
//	      "year": "<YEAR>",
//	      "trim": "<TRIM>",
//	      "geography": "<GEOGRAPHY>",
//	      "version": "<SOFTWARE_VERSION>",
//	      "os": "<OPERATING_SYSTEM>",
//	      "arch": "<HARDWARE_ARCH>",
//	      "language": "<LANGUAGE>"
//	    }
//	  }
//	}
//
// Only supplied kinds appear. When a kind is repeated the last value wins.
// Keys are written in declaration order whatever the input order, so the
// serialized form is reproducible. Values are copied verbatim; only the JSON
// form replaces invalid UTF-8 bytes with U+FFFD.
func CreateVehicleInfoConfig(props ...Property) *engineconfig.Configuration {
	var (
		values [kindCount]string
		set    [kindCount]bool
	)
	for _, p := range props {
		if !p.Kind.Valid() {
			panic("vehicle: no key for property " + p.Kind.String())
		}
		values[p.Kind] = p.Value
		set[p.Kind] = true
	}

	info := engineconfig.NewObject()
	for k := PropertyKind(0); k < kindCount; k++ {
		if set[k] {
			info.Set(k.Key(), values[k])
		}
	}
	root := engineconfig.NewObject().Set(ConfigRoot, engineconfig.NewObject().Set(InfoSection, info))
	return engineconfig.New(root)
}
