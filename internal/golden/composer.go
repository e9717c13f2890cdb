// Package golden loads the golden-source reference dataset and builds the
// immutable in-memory index the matcher resolves against.
package golden

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/models"
)

// Golden-source column names consumed by the composer. Every column is
// optional per record.
const (
	ColFullAddress       = "Full Address"
	ColFullAddressNumber = "Full Address Number"
	ColPrefix            = "Prefix"
	ColStreetName        = "Street Name"
	ColStreetType        = "Street Type"
	ColSuffix            = "Suffix"
	ColAddressUnitType   = "Address Unit Type"
	ColAddressUnitNumber = "Address Unit Number"
	ColMunicipalityName  = "Municipality Name"
	ColMailingCity       = "Mailing City"
	ColPlaceName         = "Place Name"
	ColZipcode           = "Zipcode"
	ColState             = "State"
)

// Compose xây dựng chuỗi địa chỉ so sánh được từ một record golden source.
//
// A pre-composed "Full Address" wins when present; otherwise the street
// line is assembled from the discrete columns, with the unit type/number
// pair appended only when at least one of the two is set. Locality falls
// back Municipality Name -> Mailing City -> Place Name, the state column
// falls back to defaultState, and the zipcode is zero-padded to 5 digits.
// Never fails and never returns padding around the joined parts.
func Compose(rec models.Record, defaultState string) string {
	base := rec.Get(ColFullAddress).TrimmedText()
	if base == "" {
		number := rec.Get(ColFullAddressNumber).TrimmedText()
		prefix := rec.Get(ColPrefix).TrimmedText()
		streetName := rec.Get(ColStreetName).TrimmedText()
		streetType := rec.Get(ColStreetType).TrimmedText()
		suffix := rec.Get(ColSuffix).TrimmedText()
		unitType := rec.Get(ColAddressUnitType).TrimmedText()
		unitNumber := rec.Get(ColAddressUnitNumber).TrimmedText()

		parts := []string{number, prefix, streetName, streetType, suffix}
		if unitType != "" || unitNumber != "" {
			parts = append(parts, unitType, unitNumber)
		}
		base = joinNonEmpty(parts)
	}

	locality := rec.Get(ColMunicipalityName).TrimmedText()
	if locality == "" {
		locality = rec.Get(ColMailingCity).TrimmedText()
	}
	if locality == "" {
		locality = rec.Get(ColPlaceName).TrimmedText()
	}

	state := rec.Get(ColState).TrimmedText()
	if state == "" {
		state = defaultState
	}

	return joinNonEmpty([]string{base, locality, state, FormatZip(rec.Get(ColZipcode))})
}

// FormatZip renders a zipcode value as a zero-padded 5-digit string.
// Spreadsheet numerics arrive as floats; non-numeric values pass through
// trimmed, preserving the source system's tolerance for dirty rows.
func FormatZip(v models.Value) string {
	switch v.Kind() {
	case models.KindNull:
		return ""
	case models.KindInt:
		return fmt.Sprintf("%05d", v.Int64())
	case models.KindFloat:
		return fmt.Sprintf("%05d", int64(math.Trunc(v.Float64())))
	}

	s := v.TrimmedText()
	if s == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fmt.Sprintf("%05d", int64(math.Trunc(f)))
	}
	return s
}

func joinNonEmpty(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
