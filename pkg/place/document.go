// Package place rewrites Roblox place documents for legacy client
// compatibility.
//
// Documents are processed in their XML form. Instance properties are kept
// as raw XML fragments and only the property kinds the conversion passes
// touch are interpreted, everything else round-trips untouched.
package place

import (
	"bytes"
	"encoding/hex"
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ErrBinaryPlace is returned for inputs in the binary place format, only
// the XML format can be processed.
var ErrBinaryPlace = errors.New("binary place format is not supported")

// binaryMagic is the signature opening binary format place files.
var binaryMagic = []byte{
	0x3c, 0x72, 0x6f, 0x62, 0x6c, 0x6f, 0x78, 0x21,
	0x89, 0xff, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00,
}

// IsBinary reports whether data starts with the binary place signature.
func IsBinary(data []byte) bool {
	return bytes.HasPrefix(data, binaryMagic)
}

// Document is a parsed place file.
type Document struct {
	XMLName xml.Name   `xml:"roblox"`
	Attrs   []xml.Attr `xml:",any,attr"`

	Metas    []Meta       `xml:"Meta"`
	External []string     `xml:"External"`
	Items    []*Item      `xml:"Item"`
	Rest     []rawElement `xml:",any"`
}

// Meta is a top level metadata entry.
type Meta struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// rawElement carries top level elements the converter has no interest in,
// such as SharedStrings, through a load and save cycle.
type rawElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Inner   string     `xml:",innerxml"`
}

// Item is one serialized instance.
type Item struct {
	Class    string     `xml:"class,attr"`
	Referent string     `xml:"referent,attr"`
	Attrs    []xml.Attr `xml:",any,attr"`

	Properties *Properties `xml:"Properties"`
	Items      []*Item     `xml:"Item"`
}

// Properties is the property bag of an instance.
type Properties struct {
	Props []Property `xml:",any"`
}

// Property is a single typed instance property. The element name carries
// the property type, the body stays raw XML.
type Property struct {
	XMLName xml.Name
	Name    string     `xml:"name,attr"`
	Attrs   []xml.Attr `xml:",any,attr"`
	Inner   string     `xml:",innerxml"`
}

// Load parses place XML. Binary format input is rejected with
// ErrBinaryPlace.
func Load(data []byte) (*Document, error) {
	if IsBinary(data) {
		return nil, ErrBinaryPlace
	}

	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse place xml: %w", err)
	}

	return &doc, nil
}

// Save renders the document back to place XML.
func (d *Document) Save() ([]byte, error) {
	out, err := xml.MarshalIndent(d, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("encode place xml: %w", err)
	}

	return append(out, '\n'), nil
}

// Descendants returns every item of the document in depth-first order.
// The slice is a snapshot, items attached afterwards are not included.
func (d *Document) Descendants() []*Item {
	var out []*Item

	var rec func(items []*Item)
	rec = func(items []*Item) {
		for _, it := range items {
			out = append(out, it)
			rec(it.Items)
		}
	}
	rec(d.Items)

	return out
}

// Prop returns the named property of the item, or nil.
func (it *Item) Prop(name string) *Property {
	if it.Properties == nil {
		return nil
	}
	for i := range it.Properties.Props {
		if it.Properties.Props[i].Name == name {
			return &it.Properties.Props[i]
		}
	}
	return nil
}

// SetProp replaces the property sharing p's name or appends p.
func (it *Item) SetProp(p Property) {
	if it.Properties == nil {
		it.Properties = new(Properties)
	}
	for i := range it.Properties.Props {
		if it.Properties.Props[i].Name == p.Name {
			it.Properties.Props[i] = p
			return
		}
	}
	it.Properties.Props = append(it.Properties.Props, p)
}

// RemoveProp drops every property with the given name.
func (it *Item) RemoveProp(name string) {
	if it.Properties == nil {
		return
	}
	kept := it.Properties.Props[:0]
	for _, p := range it.Properties.Props {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	it.Properties.Props = kept
}

// Name returns the instance name stored in the Name string property.
func (it *Item) Name() string {
	if p := it.Prop("Name"); p != nil && p.XMLName.Local == "string" {
		return p.Text()
	}
	return ""
}

// Text returns the decoded character data of the property body.
func (p *Property) Text() string {
	var body struct {
		Text string `xml:",chardata"`
	}
	if err := xml.Unmarshal([]byte("<x>"+p.Inner+"</x>"), &body); err != nil {
		return p.Inner
	}
	return body.Text
}

// Vector3 reads the property as a Vector3. It reports false for nil
// properties and other property kinds.
func (p *Property) Vector3() ([3]float32, bool) {
	if p == nil || p.XMLName.Local != "Vector3" {
		return [3]float32{}, false
	}

	var body struct {
		X float32 `xml:"X"`
		Y float32 `xml:"Y"`
		Z float32 `xml:"Z"`
	}
	if err := xml.Unmarshal([]byte("<x>"+p.Inner+"</x>"), &body); err != nil {
		return [3]float32{}, false
	}

	return [3]float32{body.X, body.Y, body.Z}, true
}

// numericValue reads the property as a whole number, accepting the float,
// double, int and int64 property forms. Fractions truncate toward zero.
func (p *Property) numericValue() (int64, bool) {
	switch p.XMLName.Local {
	case "int", "int64":
		v, err := strconv.ParseInt(p.Text(), 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	case "float", "double":
		v, err := strconv.ParseFloat(p.Text(), 64)
		if err != nil {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}

// contentURI extracts the uri of a Content property body, reporting false
// when the body holds no url element.
func (p *Property) contentURI() (string, bool) {
	if p.XMLName.Local != "Content" {
		return "", false
	}

	var body struct {
		URL *string `xml:"url"`
	}
	if err := xml.Unmarshal([]byte("<x>"+p.Inner+"</x>"), &body); err != nil || body.URL == nil {
		return "", false
	}

	return *body.URL, true
}

// setContentURI replaces the property body with a single url element.
func (p *Property) setContentURI(uri string) {
	var b bytes.Buffer
	b.WriteString("<url>")
	_ = xml.EscapeText(&b, []byte(uri))
	b.WriteString("</url>")
	p.Inner = b.String()
}

// NewReferent returns a fresh instance referent in the place file form.
func NewReferent() string {
	id := uuid.New()
	return "RBX" + strings.ToUpper(hex.EncodeToString(id[:]))
}

func stringProp(name, value string) Property {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(value))
	return Property{XMLName: xml.Name{Local: "string"}, Name: name, Inner: b.String()}
}

func tokenProp(name string, value uint32) Property {
	return Property{XMLName: xml.Name{Local: "token"}, Name: name, Inner: strconv.FormatUint(uint64(value), 10)}
}

func vector3Prop(name string, v [3]float32) Property {
	return Property{
		XMLName: xml.Name{Local: "Vector3"},
		Name:    name,
		Inner: fmt.Sprintf("<X>%s</X><Y>%s</Y><Z>%s</Z>",
			formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2])),
	}
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
