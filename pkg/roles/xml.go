package roles

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/talentops/rolecheck/pkg/errors"
)

// roleElement is the XML element whose text content names a role.
const roleElement = "role"

// ParseXML extracts raw role strings from an XML document. Every
// <role> element is collected regardless of nesting depth, in
// document order, matching an XPath of //role/text().
func ParseXML(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var out []string
	depth := 0 // nesting depth inside a <role> element
	var text strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("xml", "", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == roleElement {
				if depth == 0 {
					text.Reset()
				}
				depth++
			}
		case xml.EndElement:
			if t.Name.Local == roleElement && depth > 0 {
				depth--
				if depth == 0 {
					if s := strings.TrimSpace(text.String()); s != "" {
						out = append(out, s)
					}
				}
			}
		case xml.CharData:
			if depth > 0 {
				text.Write(t)
			}
		}
	}

	return out, nil
}

// LoadXML reads role definitions from an XML file.
func LoadXML(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	out, err := ParseXML(f)
	if err != nil {
		return nil, errors.NewParseError("xml", path, err.Error(), err)
	}
	return out, nil
}
