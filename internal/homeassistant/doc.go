// Package homeassistant resolves parsed easy projects into typed Home
// Assistant KNX entities and renders them in the strict YAML configuration
// form.
//
// Channels are classified by their icon into one of five entity kinds
// (light, cover, temperature sensor, climate, weather). Each kind maps a
// fixed set of datapoint names onto its address fields, always taking the
// datapoint's lowest group address. Climate entities do not read their room
// temperature from their own channel: the address is borrowed from the
// temperature sensor channel sharing the product serial number. Entities
// still missing required addresses after mapping are dropped.
//
// # Usage
//
//	converter := homeassistant.NewConverter()
//	result := converter.Convert("export.txa", project)
//	result.Entities.Sort()
//	err := homeassistant.WriteFile("knx.yaml", &result.Entities)
//
// # Output Form
//
// The emitted document carries the five kind collections in a fixed order
// (light, cover, sensor, climate, weather), each present even when empty.
// Every string scalar is double-quoted; absent optional addresses are
// omitted entirely, never rendered as null.
package homeassistant
