package vahan

import "strings"

// Section headings on the detail page.
const (
	HeadingOwnership = "Ownership Details"
	HeadingVehicle   = "Vehicle Details"
	HeadingInsurance = "Insurance Information"
	HeadingValidity  = "Important Dates"
	HeadingPUC       = "PUC Details"
	HeadingOther     = "Other Information"
)

// sectionLabels lists the field labels looked up within each section.
// Spelling variants observed in the wild (Financer/Financier,
// Tax Upto/Tax Paid Upto) are listed as separate labels; the assembler
// coalesces them.
var sectionLabels = map[string][]string{
	HeadingOwnership: {"Owner Name", "Father's Name", "Owner Serial No", "Registration Number", "Registered RTO"},
	HeadingVehicle:   {"Model Name", "Maker Model", "Vehicle Class", "Fuel Type", "Fuel Norms", "Cubic Capacity", "Seating Capacity"},
	HeadingInsurance: {"Insurance Company", "Insurance No", "Insurance Expiry", "Insurance Upto"},
	HeadingValidity:  {"Registration Date", "Vehicle Age", "Fitness Upto", "Insurance Upto", "Insurance Expiry In", "Tax Upto", "Tax Paid Upto"},
	HeadingPUC:       {"PUC No", "PUC Upto"},
	HeadingOther:     {"Financer Name", "Financier Name", "Cubic Capacity", "Seating Capacity", "Permit Type", "Blacklist Status", "NOC Details"},
}

// Extraction holds every raw field resolved from a Document before
// assembly. Summary fields come from the top-of-page cards; section
// maps are keyed by the lowercased label with spaces replaced by
// underscores (e.g. "Owner Serial No" -> "owner_serial_no").
type Extraction struct {
	Registration string

	// Summary fields (card-body strategy, standalone-label fallback).
	ModelName string
	OwnerName string
	City      string
	Phone     string
	Address   string

	Ownership map[string]string
	Vehicle   map[string]string
	Insurance map[string]string
	Validity  map[string]string
	PUC       map[string]string
	Other     map[string]string

	// Expired reports whether the page showed an insurance-expired
	// alert with a parseable day count; ExpiredDays carries the count.
	Expired     bool
	ExpiredDays int
}

// Extract resolves all known fields from doc. rc is used as the
// registration number when the page carries no heading. Extraction is
// pure: every lookup failure propagates as an absent field, never an
// error.
func Extract(doc Document, rc string) *Extraction {
	x := &Extraction{Registration: CanonicalRC(rc)}

	if title, ok := doc.Title(); ok {
		x.Registration = title
	}

	x.ModelName = summaryValue(doc, "Model Name")
	x.OwnerName = summaryValue(doc, "Owner Name")
	x.City = summaryValue(doc, "City Name")
	x.Phone = summaryValue(doc, "Phone")
	x.Address = summaryValue(doc, "Address")

	x.Ownership = sectionValues(doc, HeadingOwnership)
	x.Vehicle = sectionValues(doc, HeadingVehicle)
	x.Insurance = sectionValues(doc, HeadingInsurance)
	x.Validity = sectionValues(doc, HeadingValidity)
	x.PUC = sectionValues(doc, HeadingPUC)
	x.Other = sectionValues(doc, HeadingOther)

	if alert, ok := doc.ExpiredAlert(); ok {
		if days, ok := firstNumber(alert); ok {
			x.Expired = true
			x.ExpiredDays = days
		}
	}

	return x
}

// summaryValue resolves a top-of-page field: card-body scan first,
// then an exact standalone-label lookup for layout variants that
// render the summary outside the card list.
func summaryValue(doc Document, label string) string {
	if v, ok := doc.CardValue(label); ok {
		return v
	}
	if v, ok := doc.LabelValue(label, true); ok {
		return v
	}
	return ""
}

// sectionValues looks up every known label within the named section.
// A missing section yields an empty map.
func sectionValues(doc Document, heading string) map[string]string {
	out := make(map[string]string)
	sec, ok := doc.Section(heading)
	if !ok {
		return out
	}
	for _, label := range sectionLabels[heading] {
		if v, ok := sec.Value(label); ok && v != "" {
			out[fieldKey(label)] = v
		}
	}
	return out
}

// fieldKey converts a display label into a section map key.
func fieldKey(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}

// firstNumber returns the first run of ASCII digits in s as an
// integer. Values too long to matter (10+ digits) are rejected.
func firstNumber(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return parseDigits(s[start:i])
		}
	}
	if start >= 0 {
		return parseDigits(s[start:])
	}
	return 0, false
}

func parseDigits(s string) (int, bool) {
	if len(s) == 0 || len(s) > 9 {
		return 0, false
	}
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n, true
}
