package homeassistant

// Kind identifies the Home Assistant entity family a channel resolves to.
type Kind int

// Entity kinds, one per supported channel icon family. KindNone marks
// channels the converter has no mapping for.
const (
	KindNone Kind = iota
	KindLight
	KindCover
	KindTemperatureSensor
	KindClimate
	KindWeather
)

// String returns the collection key the kind is emitted under.
func (k Kind) String() string {
	switch k {
	case KindLight:
		return "light"
	case KindCover:
		return "cover"
	case KindTemperatureSensor:
		return "sensor"
	case KindClimate:
		return "climate"
	case KindWeather:
		return "weather"
	default:
		return "none"
	}
}

// Channel icons assigned by the easy configuration tool.
const (
	iconShutter           = "icon-shutter"
	iconLight             = "icon-light"
	iconDimmer            = "icon-dimmer"
	iconIndoorTemperature = "icon-indoor_temperature"
	iconHeatRegulation    = "icon-heat_regul"
	iconDayNight          = "icon-day_night"
)

// KindForIcon classifies a channel icon. Unrecognised icons, including the
// empty string, map to KindNone.
func KindForIcon(icon string) Kind {
	switch icon {
	case iconShutter:
		return KindCover
	case iconLight, iconDimmer:
		return KindLight
	case iconIndoorTemperature:
		return KindTemperatureSensor
	case iconHeatRegulation:
		return KindClimate
	case iconDayNight:
		return KindWeather
	default:
		return KindNone
	}
}

// Entity is one resolved Home Assistant entity. The set of implementations
// is closed over the five kinds above.
type Entity interface {
	Kind() Kind

	// Valid reports whether every field the kind requires was resolved.
	Valid() bool

	// applyDatapoint maps one named datapoint address onto the entity
	// field it addresses and reports whether the name is part of the
	// kind's mapping.
	applyDatapoint(name string, address int) bool
}

// Light is a switchable, optionally dimmable light.
type Light struct {
	Name                   string
	Address                int
	BrightnessAddress      *int
	StateAddress           int
	BrightnessStateAddress *int
}

// Kind returns KindLight.
func (Light) Kind() Kind { return KindLight }

// Valid requires the name, the switch address and its state address.
func (l Light) Valid() bool {
	return l.Name != "" && l.Address != 0 && l.StateAddress != 0
}

func (l *Light) applyDatapoint(name string, address int) bool {
	switch name {
	case "On/Off":
		l.Address = address
	case "Dim value":
		l.BrightnessAddress = &address
	case "On/Off status":
		l.StateAddress = address
	case "Dim value status":
		l.BrightnessStateAddress = &address
	default:
		return false
	}
	return true
}

// Cover is a positionable cover with slat angle control. All addresses are
// required: partially wired covers are not usable.
type Cover struct {
	Name                 string
	MoveLongAddress      int
	StopAddress          int
	PositionAddress      int
	AngleAddress         int
	PositionStateAddress int
	AngleStateAddress    int
}

// Kind returns KindCover.
func (Cover) Kind() Kind { return KindCover }

// Valid requires the name and all six addresses.
func (c Cover) Valid() bool {
	return c.Name != "" &&
		c.MoveLongAddress != 0 &&
		c.StopAddress != 0 &&
		c.PositionAddress != 0 &&
		c.AngleAddress != 0 &&
		c.PositionStateAddress != 0 &&
		c.AngleStateAddress != 0
}

func (c *Cover) applyDatapoint(name string, address int) bool {
	switch name {
	case "Up/Down":
		c.MoveLongAddress = address
	case "Step/Stop":
		c.StopAddress = address
	case "Position control":
		c.PositionAddress = address
	case "Slat angle control":
		c.AngleAddress = address
	case "Position control status":
		c.PositionStateAddress = address
	case "Slat angle control status":
		c.AngleStateAddress = address
	default:
		return false
	}
	return true
}

// TemperatureSensor is a read-only indoor temperature measurement.
type TemperatureSensor struct {
	Name         string
	StateAddress int
}

// Kind returns KindTemperatureSensor.
func (TemperatureSensor) Kind() Kind { return KindTemperatureSensor }

// Valid requires the name and the state address.
func (t TemperatureSensor) Valid() bool {
	return t.Name != "" && t.StateAddress != 0
}

func (t *TemperatureSensor) applyDatapoint(name string, address int) bool {
	if name != "Indoor temperature" {
		return false
	}
	t.StateAddress = address
	return true
}

// Climate is a room temperature controller. TemperatureAddress is never set
// from the climate channel's own datapoints; it comes from the paired
// temperature sensor channel sharing the product serial number.
type Climate struct {
	Name                          string
	TemperatureAddress            int
	TargetTemperatureStateAddress int
	SetpointShiftAddress          *int
	SetpointShiftStateAddress     *int
	OperationModeAddress          *int
	OperationModeStateAddress     *int
	HeatCoolAddress               *int
	HeatCoolStateAddress          *int
	OnOffAddress                  *int
}

// Kind returns KindClimate.
func (Climate) Kind() Kind { return KindClimate }

// Valid requires the name, the borrowed temperature address and the target
// temperature state address.
func (c Climate) Valid() bool {
	return c.Name != "" &&
		c.TemperatureAddress != 0 &&
		c.TargetTemperatureStateAddress != 0
}

func (c *Climate) applyDatapoint(name string, address int) bool {
	switch name {
	case "Room temperature":
		c.TargetTemperatureStateAddress = address
	case "Setpoint shift":
		c.SetpointShiftAddress = &address
	case "Setpoint shift status":
		c.SetpointShiftStateAddress = &address
	case "Mode":
		c.OperationModeAddress = &address
	case "Mode status":
		c.OperationModeStateAddress = &address
	case "Heat/Cool":
		c.HeatCoolAddress = &address
	case "Heat/Cool status":
		c.HeatCoolStateAddress = &address
	case "On/Off":
		c.OnOffAddress = &address
	default:
		return false
	}
	return true
}

// Weather is a weather station channel. Only the outdoor temperature is
// required; the alarms and wind speed depend on the installed sensors.
type Weather struct {
	Name               string
	AddressTemperature int
	AddressWindSpeed   *int
	AddressRainAlarm   *int
	AddressFrostAlarm  *int
	AddressWindAlarm   *int
	AddressDayNight    *int
}

// Kind returns KindWeather.
func (Weather) Kind() Kind { return KindWeather }

// Valid requires the name and the outdoor temperature address.
func (w Weather) Valid() bool {
	return w.Name != "" && w.AddressTemperature != 0
}

func (w *Weather) applyDatapoint(name string, address int) bool {
	switch name {
	case "Outdoor temperature":
		w.AddressTemperature = address
	case "Wind speed":
		w.AddressWindSpeed = &address
	case "Rain alarm":
		w.AddressRainAlarm = &address
	case "Frost alarm":
		w.AddressFrostAlarm = &address
	case "Wind alarm 1":
		w.AddressWindAlarm = &address
	case "Day/Night":
		w.AddressDayNight = &address
	default:
		return false
	}
	return true
}
