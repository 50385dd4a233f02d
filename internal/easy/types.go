package easy

import "github.com/samber/lo"

// Datapoint is a named bus value with its discovered group addresses.
type Datapoint struct {
	// Name is the datapoint name from the export (e.g. "On/Off").
	Name string

	// GroupAddresses holds integer group addresses in document order.
	// Duplicates are kept as discovered.
	GroupAddresses []int
}

// Valid reports whether the datapoint has a name and at least one address.
func (d Datapoint) Valid() bool {
	return d.Name != "" && len(d.GroupAddresses) > 0
}

// LowestAddress returns the numerically lowest group address, or 0 when the
// datapoint has none. By convention the lowest value designates the primary
// address.
func (d Datapoint) LowestAddress() int {
	return lo.Min(d.GroupAddresses)
}

// Channel is one logical device function block from Channels.xml.
type Channel struct {
	// Name is the user-facing channel name. May be empty.
	Name string

	// Icon is the device type tag (e.g. "icon-light"). May be empty.
	Icon string

	// SerialNumber links the channel to a Product and to sibling channels
	// on the same physical device.
	SerialNumber string

	// Datapoints holds the channel's datapoints in document order.
	Datapoints []Datapoint
}

// Valid reports whether the channel yielded at least one datapoint.
// Channels without datapoints carry nothing convertible.
func (c Channel) Valid() bool {
	return len(c.Datapoints) > 0
}

// Product is one entry of the product directory from Products.xml.
type Product struct {
	// Name is the product name.
	Name string

	// SerialNumber is the cross-reference key. May be empty, in which case
	// the product cannot be referenced.
	SerialNumber string
}

// Project is the intermediate representation of an easy export: channels and
// the product directory, both in document order. It carries no entity
// semantics.
type Project struct {
	Channels []Channel
	Products []Product
}

// ProductIndex returns the products keyed by serial number. Later duplicates
// silently overwrite earlier entries; products without a serial number are
// excluded.
func (p *Project) ProductIndex() map[string]Product {
	usable := lo.Filter(p.Products, func(prod Product, _ int) bool {
		return prod.SerialNumber != ""
	})
	return lo.KeyBy(usable, func(prod Product) string {
		return prod.SerialNumber
	})
}
