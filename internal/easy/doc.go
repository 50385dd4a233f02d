// Package easy provides extraction of KNX easy project exports.
//
// An easy export (typically a .txa file) is a ZIP archive produced by the
// vendor's configuration tool. The archive carries a configuration/ directory
// with two XML documents: Channels.xml, describing the device channels with
// their datapoints and group addresses, and Products.xml, the directory of
// installed products keyed by serial number.
//
// Both documents share one loosely-structured grammar: nested <config>
// elements identified by a name attribute, each carrying <property> elements
// with key/value attributes. This package validates that structure, walks it,
// and builds the intermediate Project model. The model is format-agnostic:
// it knows channels, datapoints, integer group addresses and products, but
// nothing about lights or covers — entity semantics live in the
// homeassistant package.
//
// # Usage
//
//	parser := easy.NewParser()
//	project, err := parser.ParseArchive("export.txa")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, channel := range project.Channels {
//	    fmt.Printf("%s (%s): %d datapoints\n",
//	        channel.Name, channel.Icon, len(channel.Datapoints))
//	}
//
// # Failure Semantics
//
// File-level problems are fatal: a missing or unreadable archive, a missing
// configuration XML, or a document failing structural validation abort the
// parse with a sentinel error. Element-level anomalies never do — an
// unparseable group address or an unrecognised config name is logged and
// skipped, and the walk continues. The export format is vendor-controlled;
// new blocks appear between tool versions and must not abort extraction.
package easy
