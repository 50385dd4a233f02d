package easy

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Config element names with dedicated parsing rules.
const (
	configParameters = "Parameters"
	configDatapoints = "datapoints"
	configAddresses  = "groupAddresses"
	configContext    = "Context"
	configBlocks     = "FunctionalBlocks"
)

// Property keys used by the export.
const (
	propChannelName   = "Name"
	propChannelIcon   = "Icon"
	propDatapointName = "name"
	propContextSerial = "product.serialNumber"
	propProductSerial = "SerialNumber"
	propProductName   = "product.name"
)

// Logger defines the logging interface used by the Parser.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// xmlProperty is one <property> element: a key/value attribute pair.
type xmlProperty struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

// xmlConfig is one <config> element. The grammar is recursive: a config
// carries properties and further configs.
type xmlConfig struct {
	Name       string        `xml:"name,attr"`
	Properties []xmlProperty `xml:"property"`
	Children   []xmlConfig   `xml:"config"`
}

// property returns the value of the first property with the given key and
// whether one was present.
func (c xmlConfig) property(key string) (string, bool) {
	for _, p := range c.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// xmlDocument is the document element of Channels.xml or Products.xml.
// The root element's own name is not significant; its top-level configs are.
type xmlDocument struct {
	XMLName xml.Name
	Configs []xmlConfig `xml:"config"`
}

// Parser builds the Project model from easy configuration documents.
type Parser struct {
	logger      Logger
	maxFileSize int64
}

// NewParser creates a parser with default limits and logging disabled.
func NewParser() *Parser {
	return &Parser{
		logger:      noopLogger{},
		maxFileSize: MaxFileSize,
	}
}

// SetLogger sets the logger used for parse progress and skip diagnostics.
func (p *Parser) SetLogger(logger Logger) {
	p.logger = logger
}

// SetMaxFileSize overrides the size cap applied to the archive and its
// members. Values below one are ignored.
func (p *Parser) SetMaxFileSize(limit int64) {
	if limit > 0 {
		p.maxFileSize = limit
	}
}

// ParseChannels extracts the channel list from a Channels.xml document.
// Each top-level config element is one channel; nested configs are walked
// with the descent contract implemented by walkConfig.
func (p *Parser) ParseChannels(data []byte) ([]Channel, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	channels := make([]Channel, 0, len(doc.Configs))
	for _, cfg := range doc.Configs {
		channels = append(channels, p.parseChannel(cfg))
	}
	return channels, nil
}

// ParseProducts extracts the product directory from a Products.xml document.
func (p *Parser) ParseProducts(data []byte) ([]Product, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(doc.Configs))
	for _, cfg := range doc.Configs {
		products = append(products, p.parseProduct(cfg))
	}
	return products, nil
}

// parseChannel builds one Channel from a top-level config element.
func (p *Parser) parseChannel(cfg xmlConfig) Channel {
	var channel Channel
	channel.Name, _ = cfg.property(propChannelName)
	channel.Icon, _ = cfg.property(propChannelIcon)

	p.logger.Debug("parsing channel",
		"config", cfg.Name,
		"name", channel.Name,
		"icon", channel.Icon,
	)

	for _, child := range cfg.Children {
		p.walkConfig(child, &channel, nil)
	}
	return channel
}

// walkConfig dispatches one config element of a channel subtree. The channel
// and the datapoint under construction are passed explicitly; dp is nil
// until a datapoints block opens one.
func (p *Parser) walkConfig(cfg xmlConfig, channel *Channel, dp *Datapoint) {
	switch {
	case cfg.Name == configParameters:
		p.logger.Debug("skipping parameters block")

	case cfg.Name == configDatapoints:
		p.parseDatapoints(cfg, channel)

	case cfg.Name == configAddresses:
		p.parseGroupAddresses(cfg, dp)

	case cfg.Name == configContext:
		p.parseContext(cfg, channel)

	case cfg.Name == configBlocks || isNumericName(cfg.Name):
		for _, child := range cfg.Children {
			p.walkConfig(child, channel, dp)
		}

	default:
		p.logger.Warn("skipping unhandled config", "config", cfg.Name)
	}
}

// parseDatapoints appends one Datapoint per child config and recurses into
// the child with the new datapoint as the accumulation target. The datapoint
// is appended even when it stays unnamed or without addresses: its presence
// alone makes the channel valid, the datapoint's own validity is judged
// during conversion.
func (p *Parser) parseDatapoints(cfg xmlConfig, channel *Channel) {
	for _, child := range cfg.Children {
		var dp Datapoint
		dp.Name, _ = child.property(propDatapointName)

		for _, grandchild := range child.Children {
			p.walkConfig(grandchild, channel, &dp)
		}

		p.logger.Debug("datapoint parsed",
			"name", dp.Name,
			"addresses", len(dp.GroupAddresses),
		)
		channel.Datapoints = append(channel.Datapoints, dp)
	}
}

// parseGroupAddresses appends each child config's name attribute, read as a
// base-10 integer, to the current datapoint. Unparseable addresses are
// skipped and logged; extraction is best-effort and never fatal.
func (p *Parser) parseGroupAddresses(cfg xmlConfig, dp *Datapoint) {
	if dp == nil {
		p.logger.Warn("group addresses outside a datapoint", "count", len(cfg.Children))
		return
	}

	for _, child := range cfg.Children {
		address, err := strconv.Atoi(strings.TrimSpace(child.Name))
		if err != nil {
			p.logger.Warn("skipping invalid group address", "address", child.Name)
			continue
		}
		dp.GroupAddresses = append(dp.GroupAddresses, address)
	}
}

// parseContext reads the channel serial number from a Context element. The
// first product.serialNumber property wins; later matches never overwrite.
func (p *Parser) parseContext(cfg xmlConfig, channel *Channel) {
	if channel.SerialNumber != "" {
		return
	}

	if serial, ok := cfg.property(propContextSerial); ok && serial != "" {
		channel.SerialNumber = serial
		p.logger.Debug("channel serial number set", "serial_number", serial)
	}
}

// parseProduct reads one product entry. Products without a serial number are
// still recorded; they just cannot be cross-referenced.
func (p *Parser) parseProduct(cfg xmlConfig) Product {
	var product Product
	product.SerialNumber, _ = cfg.property(propProductSerial)
	product.Name, _ = cfg.property(propProductName)

	if product.SerialNumber == "" {
		p.logger.Warn("product without serial number", "config", cfg.Name)
	} else {
		p.logger.Info("product found",
			"name", product.Name,
			"serial_number", product.SerialNumber,
		)
	}
	return product
}

// decodeDocument unmarshals a validated export document.
func decodeDocument(data []byte) (*xmlDocument, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedXML, err)
	}
	return &doc, nil
}

// isNumericName reports whether a config name is purely numeric, optionally
// prefixed with minus signs. Such configs are transparent containers and are
// recursed into.
func isNumericName(name string) bool {
	trimmed := strings.TrimLeft(name, "-")
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
