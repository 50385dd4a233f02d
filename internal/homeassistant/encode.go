package homeassistant

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Fixed metadata emitted for every temperature sensor.
const (
	sensorType       = "temperature"
	sensorStateClass = "measurement"
)

// Encode renders the entities in the Home Assistant KNX configuration form:
// the five kind collections in fixed order, every string double-quoted,
// absent optional addresses omitted.
func Encode(w io.Writer, entities *Entities) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(documentNode(entities)); err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	return enc.Close()
}

// WriteFile encodes the entities into the file at path, replacing any
// existing content.
func WriteFile(path string, entities *Entities) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(f, entities); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func documentNode(entities *Entities) *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	appendPair(doc, "light", sequenceNode(lo.Map(entities.Lights, lightNode)))
	appendPair(doc, "cover", sequenceNode(lo.Map(entities.Covers, coverNode)))
	appendPair(doc, "sensor", sequenceNode(lo.Map(entities.Sensors, sensorNode)))
	appendPair(doc, "climate", sequenceNode(lo.Map(entities.Climates, climateNode)))
	appendPair(doc, "weather", sequenceNode(lo.Map(entities.Weathers, weatherNode)))
	return doc
}

func lightNode(l Light, _ int) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	appendPair(m, "name", stringNode(l.Name))
	appendPair(m, "address", intNode(l.Address))
	appendOptional(m, "brightness_address", l.BrightnessAddress)
	appendPair(m, "state_address", intNode(l.StateAddress))
	appendOptional(m, "brightness_state_address", l.BrightnessStateAddress)
	return m
}

func coverNode(c Cover, _ int) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	appendPair(m, "name", stringNode(c.Name))
	appendPair(m, "move_long_address", intNode(c.MoveLongAddress))
	appendPair(m, "stop_address", intNode(c.StopAddress))
	appendPair(m, "position_address", intNode(c.PositionAddress))
	appendPair(m, "angle_address", intNode(c.AngleAddress))
	appendPair(m, "position_state_address", intNode(c.PositionStateAddress))
	appendPair(m, "angle_state_address", intNode(c.AngleStateAddress))
	return m
}

func sensorNode(s TemperatureSensor, _ int) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	appendPair(m, "name", stringNode(s.Name))
	appendPair(m, "state_address", intNode(s.StateAddress))
	appendPair(m, "type", stringNode(sensorType))
	appendPair(m, "state_class", stringNode(sensorStateClass))
	return m
}

func climateNode(c Climate, _ int) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	appendPair(m, "name", stringNode(c.Name))
	appendPair(m, "temperature_address", intNode(c.TemperatureAddress))
	appendPair(m, "target_temperature_state_address", intNode(c.TargetTemperatureStateAddress))
	appendOptional(m, "setpoint_shift_address", c.SetpointShiftAddress)
	appendOptional(m, "setpoint_shift_state_address", c.SetpointShiftStateAddress)
	appendOptional(m, "operation_mode_address", c.OperationModeAddress)
	appendOptional(m, "operation_mode_state_address", c.OperationModeStateAddress)
	appendOptional(m, "heat_cool_address", c.HeatCoolAddress)
	appendOptional(m, "heat_cool_state_address", c.HeatCoolStateAddress)
	appendOptional(m, "on_off_address", c.OnOffAddress)
	return m
}

func weatherNode(w Weather, _ int) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	appendPair(m, "name", stringNode(w.Name))
	appendPair(m, "address_temperature", intNode(w.AddressTemperature))
	appendOptional(m, "address_wind_speed", w.AddressWindSpeed)
	appendOptional(m, "address_rain_alarm", w.AddressRainAlarm)
	appendOptional(m, "address_frost_alarm", w.AddressFrostAlarm)
	appendOptional(m, "address_wind_alarm", w.AddressWindAlarm)
	appendOptional(m, "address_day_night", w.AddressDayNight)
	return m
}

func sequenceNode(items []*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Content: items}
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Style: yaml.DoubleQuotedStyle,
		Tag:   "!!str",
		Value: value,
	}
}

func intNode(value int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(value)}
}

// appendPair adds a key/value pair to a mapping node. Keys stay plain;
// only string values carry the double-quoted style.
func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
}

// appendOptional adds an integer pair only when the value is present.
func appendOptional(m *yaml.Node, key string, value *int) {
	if value == nil {
		return
	}
	appendPair(m, key, intNode(*value))
}
