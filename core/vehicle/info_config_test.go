package vehicle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func infoBlock(t *testing.T, props ...Property) map[string]any {
	t.Helper()
	v, ok := CreateVehicleInfoConfig(props...).Lookup(InfoPath)
	require.True(t, ok, "info block missing")
	info, ok := v.(map[string]any)
	require.True(t, ok, "info block is %T", v)
	return info
}

func TestCreateVehicleInfoConfig_SingleKind(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			info := infoBlock(t, NewProperty(k, "v"))
			assert.Equal(t, map[string]any{k.Key(): "v"}, info)
		})
	}
}

func TestCreateVehicleInfoConfig_Empty(t *testing.T) {
	cfg := CreateVehicleInfoConfig()
	info := infoBlock(t)
	assert.Empty(t, info)

	out, err := cfg.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"vehicle":{"info":{}}}`, string(out))
}

func TestCreateVehicleInfoConfig_OrderIndependent(t *testing.T) {
	a := CreateVehicleInfoConfig(NewProperty(Make, "a"), NewProperty(Model, "b"))
	b := CreateVehicleInfoConfig(NewProperty(Model, "b"), NewProperty(Make, "a"))

	ra, err := a.Read()
	require.NoError(t, err)
	rb, err := b.Read()
	require.NoError(t, err)
	assert.Equal(t, ra, rb)

	ja, err := a.JSON()
	require.NoError(t, err)
	jb, err := b.JSON()
	require.NoError(t, err)
	assert.Equal(t, string(ja), string(jb), "serialized form should not depend on input order")
	assert.Equal(t, `{"vehicle":{"info":{"make":"a","model":"b"}}}`, string(ja))
}

func TestCreateVehicleInfoConfig_LastWins(t *testing.T) {
	info := infoBlock(t, NewProperty(Make, "a"), NewProperty(Model, "m"), NewProperty(Make, "b"))
	assert.Equal(t, "b", info["make"])
	assert.Equal(t, "m", info["model"])
	assert.Len(t, info, 2)
}

func allProperties() []Property {
	return []Property{
		NewProperty(Make, "Acme"),
		NewProperty(Model, "Roadster"),
		NewProperty(Year, "2024"),
		NewProperty(Trim, "Sport"),
		NewProperty(Geography, "US"),
		NewProperty(Version, "4.2.0"),
		NewProperty(OperatingSystem, "Linux 6.1"),
		NewProperty(HardwareArch, "aarch64"),
		NewProperty(Language, "en-US"),
	}
}

func TestCreateVehicleInfoConfig_FullCoverage(t *testing.T) {
	props := allProperties()
	info := infoBlock(t, props...)
	require.Len(t, info, 9)
	for _, p := range props {
		assert.Equal(t, p.Value, info[p.Kind.Key()], p.Kind.String())
	}
	for _, key := range []string{"make", "model", "year", "trim", "geography", "version", "os", "arch", "language"} {
		assert.Contains(t, info, key)
	}
}

func TestCreateVehicleInfoConfig_JSONRoundTrip(t *testing.T) {
	props := allProperties()
	props = append(props, NewProperty(Trim, ` "quoted" \ tab	 ünïcode `))
	cfg := CreateVehicleInfoConfig(props...)

	data, err := cfg.JSON()
	require.NoError(t, err)
	var doc map[string]map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))

	info := doc["vehicle"]["info"]
	assert.Equal(t, "Acme", info["make"])
	assert.Equal(t, "2024", info["year"])
	assert.Equal(t, ` "quoted" \ tab	 ünïcode `, info["trim"])
	assert.Equal(t, "Linux 6.1", info["os"])
	assert.Equal(t, "en-US", info["language"])
}

func TestCreateVehicleInfoConfig_YAMLRoundTrip(t *testing.T) {
	cfg := CreateVehicleInfoConfig(NewProperty(Year, "2024"), NewProperty(Version, "1.0"), NewProperty(Make, "yes"))

	data, err := cfg.YAML()
	require.NoError(t, err)
	var doc map[string]map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))

	info := doc["vehicle"]["info"]
	assert.Equal(t, "2024", info["year"], "numeric looking values stay strings")
	assert.Equal(t, "1.0", info["version"])
	assert.Equal(t, "yes", info["make"])
}

func TestCreateVehicleInfoConfig_DeclarationOrder(t *testing.T) {
	props := allProperties()
	reversed := make([]Property, len(props))
	for i, p := range props {
		reversed[len(props)-1-i] = p
	}
	k, err := CreateVehicleInfoConfig(reversed...).Koanf()
	require.NoError(t, err)
	assert.Equal(t, "aarch64", k.String("vehicle.info.arch"))

	data, err := CreateVehicleInfoConfig(reversed...).JSON()
	require.NoError(t, err)
	want := `{"vehicle":{"info":{"make":"Acme","model":"Roadster","year":"2024","trim":"Sport",` +
		`"geography":"US","version":"4.2.0","os":"Linux 6.1","arch":"aarch64","language":"en-US"}}}`
	assert.Equal(t, want, string(data))
}

func TestCreateVehicleInfoConfig_InvalidKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		CreateVehicleInfoConfig(NewProperty(kindCount, "x"))
	})
	assert.Panics(t, func() {
		CreateVehicleInfoConfig(NewProperty(PropertyKind(-1), "x"))
	})
}

func TestCreateVehicleInfoConfig_IndependentResults(t *testing.T) {
	a := CreateVehicleInfoConfig(NewProperty(Make, "a"))
	b := CreateVehicleInfoConfig(NewProperty(Make, "b"))
	m, _ := a.String("vehicle.info.make")
	assert.Equal(t, "a", m)
	m, _ = b.String("vehicle.info.make")
	assert.Equal(t, "b", m)
}

func TestCreateVehicleInfoConfig_InvalidUTF8(t *testing.T) {
	cfg := CreateVehicleInfoConfig(NewProperty(Make, "Acme\xff"))

	got, ok := cfg.String("vehicle.info.make")
	require.True(t, ok)
	assert.Equal(t, "Acme\xff", got, "in-memory value is verbatim")

	data, err := cfg.JSON()
	require.NoError(t, err)
	var doc map[string]map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Acme�", doc["vehicle"]["info"]["make"])
}
