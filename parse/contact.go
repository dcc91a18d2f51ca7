package parse

import (
	"strings"

	"github.com/jkoval/driftex"
)

var _ driftex.RawParser[driftex.Contact] = (*ContactParser)(nil)

// ContactParser maps pre-segmented raw blocks from a contact-details panel
// into contact records. Item boundaries in that panel are labeled blocks
// rather than repeated list items, so this parser is raw-capable; Parse
// remains available as the degraded path when only generic inputs exist.
type ContactParser struct{}

// NewContactParser creates a new ContactParser.
func NewContactParser() *ContactParser {
	return &ContactParser{}
}

// ParseRaw produces zero-to-many contact records per block and removes
// exact (type, value) duplicates across the whole section. A differing
// label on an otherwise identical pair does not prevent deduplication: the
// first label wins.
func (p *ContactParser) ParseRaw(blocks []driftex.RawBlock) []driftex.Contact {
	var out []driftex.Contact
	seen := make(map[[2]string]bool)

	for _, block := range blocks {
		for _, c := range parseBlock(block) {
			key := [2]string{c.Type, c.Value}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, c)
		}
	}
	return out
}

// Parse is the degraded path for contact inputs synthesized from generic
// extraction: the first field is treated as the heading, the value comes
// from the first matching anchor or the second field.
func (p *ContactParser) Parse(input driftex.ParseInput) (driftex.Contact, bool) {
	if len(input.Texts) == 0 {
		return driftex.Contact{}, false
	}
	block := driftex.RawBlock{Heading: input.Texts[0]}
	if len(input.Texts) > 1 {
		block.Text = strings.Join(input.Texts, "\n")
	}
	for _, l := range input.Links {
		block.Anchors = append(block.Anchors, driftex.Anchor{Href: l.URL, Text: l.Text})
	}
	contacts := parseBlock(block)
	if len(contacts) == 0 {
		return driftex.Contact{}, false
	}
	return contacts[0], true
}

// Validate reports whether the contact entry is acceptable.
func (p *ContactParser) Validate(record driftex.Contact) bool {
	return record.Validate()
}

// parseBlock maps one raw block to its contact records.
func parseBlock(block driftex.RawBlock) []driftex.Contact {
	typ := classifyHeading(block.Heading)
	if typ == "" {
		return nil
	}

	label := firstLabel(block.Labels)

	switch typ {
	case driftex.ContactEmail:
		return anchorContacts(block, typ, "mailto:", label)
	case driftex.ContactPhone:
		return anchorContacts(block, typ, "tel:", label)
	case driftex.ContactProfile, driftex.ContactWebsite:
		var out []driftex.Contact
		for _, a := range block.Anchors {
			if a.Href == "" {
				continue
			}
			out = append(out, driftex.Contact{Type: typ, Value: a.Href, Label: label})
		}
		return out
	default:
		// Label-only fields (birthday, address, connected): the value is
		// the block text with the heading stripped.
		value := strings.TrimSpace(strings.TrimPrefix(block.Text, block.Heading))
		if value == "" {
			return nil
		}
		return []driftex.Contact{{Type: typ, Value: value, Label: label}}
	}
}

// anchorContacts extracts contacts from anchors carrying a scheme prefix,
// falling back to any anchor whose text is non-empty.
func anchorContacts(block driftex.RawBlock, typ, scheme, label string) []driftex.Contact {
	var out []driftex.Contact
	for _, a := range block.Anchors {
		switch {
		case strings.HasPrefix(a.Href, scheme):
			out = append(out, driftex.Contact{Type: typ, Value: strings.TrimPrefix(a.Href, scheme), Label: label})
		case a.Text != "":
			out = append(out, driftex.Contact{Type: typ, Value: strings.TrimSpace(a.Text), Label: label})
		}
	}
	return out
}

// classifyHeading maps a block heading to a contact record type by keyword.
// The profile heading maps to the canonical identity-link type.
func classifyHeading(heading string) string {
	h := strings.ToLower(heading)
	switch {
	case strings.Contains(h, "profile"):
		return driftex.ContactProfile
	case strings.Contains(h, "email"):
		return driftex.ContactEmail
	case strings.Contains(h, "phone"):
		return driftex.ContactPhone
	case strings.Contains(h, "website"), strings.Contains(h, "site"):
		return driftex.ContactWebsite
	case strings.Contains(h, "birthday"), strings.Contains(h, "born"):
		return driftex.ContactBirthday
	case strings.Contains(h, "address"):
		return driftex.ContactAddress
	case strings.Contains(h, "connected"):
		return driftex.ContactConnected
	}
	return ""
}

// firstLabel returns the first label with any wrapping parentheses removed.
func firstLabel(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	return strings.Trim(strings.TrimSpace(labels[0]), "()")
}
