// Package engineconfig holds the configuration payload handed to the engine
// configuration loader. A Configuration is built once from an ordered Object
// tree and never changes afterwards, so it can be shared between readers.
//
// The loader side is not part of this package. Any koanf based loader can
// consume a Configuration directly because it implements koanf.Provider:
//
//	k := koanf.New(".")
//	if err := k.Load(cfg, nil); err != nil {
//	    return err
//	}
//	make := k.String("vehicle.info.make")
package engineconfig
