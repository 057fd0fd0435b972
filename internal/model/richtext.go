package model

import "strings"

// SegmentStyle selects how a RichText segment is presented.
type SegmentStyle int

const (
	StylePlain SegmentStyle = iota
	StyleBold
	StyleCode
)

// Segment is a run of text with a single style.
type Segment struct {
	Text  string       `json:"text"`
	Style SegmentStyle `json:"style"`
}

// RichText is an ordered list of styled segments. It never carries raw markup.
type RichText []Segment

// Plain returns a plain segment.
func Plain(s string) Segment { return Segment{Text: s, Style: StylePlain} }

// Bold returns a bold segment.
func Bold(s string) Segment { return Segment{Text: s, Style: StyleBold} }

// Code returns an inline code segment.
func Code(s string) Segment { return Segment{Text: s, Style: StyleCode} }

// String flattens the text without styling.
func (r RichText) String() string {
	var b strings.Builder
	for _, s := range r {
		b.WriteString(s.Text)
	}
	return b.String()
}
