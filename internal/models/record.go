package models

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Record is a music record. ID is nil until the record has been stored.
// A single record is encoded as a <record> element.
type Record struct {
	ID     *int   `xml:"id,omitempty" json:"id"`
	Title  string `xml:"title" json:"title"`
	Artist string `xml:"artist,omitempty" json:"artist,omitempty"`
	Year   int    `xml:"year,omitempty" json:"year,omitempty"`
}

// UnmarshalXML decodes a <record> element. An empty <id/> leaves ID nil.
func (r *Record) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		ID     *string `xml:"id"`
		Title  string  `xml:"title"`
		Artist string  `xml:"artist"`
		Year   int     `xml:"year"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}

	*r = Record{Title: raw.Title, Artist: raw.Artist, Year: raw.Year}
	if raw.ID == nil {
		return nil
	}
	s := strings.TrimSpace(*raw.ID)
	if s == "" {
		return nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid record id %q: %w", s, err)
	}
	r.ID = &id
	return nil
}

// RecordElement is the XML start element of a single record.
var RecordElement = xml.StartElement{Name: xml.Name{Local: "record"}}

// Records is the XML envelope for a list of records.
type Records struct {
	XMLName xml.Name `xml:"records"`
	Items   []Record `xml:"record"`
}
