package easy

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Element and attribute names of the export grammar.
const (
	elemConfig   = "config"
	elemProperty = "property"

	attrName  = "name"
	attrKey   = "key"
	attrValue = "value"
)

// ValidateStructure checks that a document follows the config/property
// grammar of easy configuration exports: one document element containing
// only <config> and <property> elements, every <config> carrying a name
// attribute, every <property> carrying key and value attributes and no
// children.
//
// Documents that pass are structurally safe for the parser's recursive
// descent. Violations are fatal (the export is rejected before any channel
// is built) and reported with the line:column of the offending element.
func ValidateStructure(data []byte) error {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	depth := 0
	rootSeen := false
	propertyDepth := 0 // depth of the innermost open <property>, 0 when none

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedXML, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			line, col := decoder.InputPos()

			if depth == 1 {
				if rootSeen {
					return fmt.Errorf("%w: second document element <%s> at %d:%d",
						ErrSchemaViolation, t.Name.Local, line, col)
				}
				rootSeen = true
				continue
			}

			if propertyDepth > 0 {
				return fmt.Errorf("%w: <property> must be empty, found <%s> at %d:%d",
					ErrSchemaViolation, t.Name.Local, line, col)
			}

			switch t.Name.Local {
			case elemConfig:
				if !hasAttr(t, attrName) {
					return fmt.Errorf("%w: <config> without name attribute at %d:%d",
						ErrSchemaViolation, line, col)
				}
			case elemProperty:
				if !hasAttr(t, attrKey) || !hasAttr(t, attrValue) {
					return fmt.Errorf("%w: <property> without key/value attributes at %d:%d",
						ErrSchemaViolation, line, col)
				}
				propertyDepth = depth
			default:
				return fmt.Errorf("%w: unexpected element <%s> at %d:%d",
					ErrSchemaViolation, t.Name.Local, line, col)
			}

		case xml.EndElement:
			if depth == propertyDepth {
				propertyDepth = 0
			}
			depth--
		}
	}

	if !rootSeen {
		return fmt.Errorf("%w: document contains no elements", ErrMalformedXML)
	}

	return nil
}

func hasAttr(el xml.StartElement, name string) bool {
	for _, attr := range el.Attr {
		if attr.Name.Local == name {
			return true
		}
	}
	return false
}
