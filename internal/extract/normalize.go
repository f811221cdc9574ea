package extract

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/wasteexperts/pdf-extractor/internal/brokers"
	apperrors "github.com/wasteexperts/pdf-extractor/internal/errors"
)

// cleanResponse strips markdown code fences the model sometimes adds
// despite being told not to. When the text contains a fence and a JSON
// object, only the first-{ to last-} region survives.
func cleanResponse(raw string) string {
	payload := strings.TrimSpace(raw)
	if strings.Contains(payload, "```") {
		start := strings.Index(payload, "{")
		end := strings.LastIndex(payload, "}")
		if start >= 0 && end > start {
			payload = payload[start : end+1]
		}
	}
	return payload
}

// asString coerces a parsed JSON value into a usable field value.
// Null, empty, and non-scalar values collapse to "".
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// fieldOrSentinel returns the coerced value for key, or the sentinel when
// the key is absent or empty.
func fieldOrSentinel(m map[string]any, key string) string {
	if s := asString(m[key]); s != "" {
		return s
	}
	return Sentinel
}

// Normalize parses the raw completion text and produces the canonical
// 19-field payload: fences stripped, supplier validated against the broker
// directory, missing fields set to the sentinel, unknown keys discarded.
// It performs no semantic validation of dates, postcodes, or currency;
// value correctness belongs to the human reviewer.
func Normalize(raw string) (Payload, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(cleanResponse(raw)), &m); err != nil {
		return Payload{}, apperrors.Wrap(err, apperrors.ErrUnparsableResponse.Code, apperrors.ErrUnparsableResponse.Message)
	}
	return normalizeMap(m), nil
}

// NormalizePayload re-runs normalization over an already-shaped payload,
// e.g. one edited in the review UI. Idempotent.
func NormalizePayload(p Payload) Payload {
	raw, _ := json.Marshal(p)
	var m map[string]any
	_ = json.Unmarshal(raw, &m)
	return normalizeMap(m)
}

func normalizeMap(m map[string]any) Payload {
	p := Payload{
		AccountName:                fieldOrSentinel(m, "account_name"),
		Supplier:                   fieldOrSentinel(m, "supplier"),
		PurchaseOrderNumber:        fieldOrSentinel(m, "purchase_order_number"),
		SiteContact:                fieldOrSentinel(m, "site_contact"),
		SiteContactNumber:          fieldOrSentinel(m, "site_contact_number"),
		SiteContactEmail:           fieldOrSentinel(m, "site_contact_email"),
		SecondarySiteContact:       fieldOrSentinel(m, "secondary_site_contact"),
		SecondarySiteContactNumber: fieldOrSentinel(m, "secondary_site_contact_number"),
		SecondarySiteContactEmail:  fieldOrSentinel(m, "secondary_site_contact_email"),
		SiteName:                   fieldOrSentinel(m, "site_name"),
		SiteAddress:                fieldOrSentinel(m, "site_address"),
		SitePostcode:               fieldOrSentinel(m, "site_postcode"),
		OpeningTimes:               fieldOrSentinel(m, "opening_times"),
		Access:                     fieldOrSentinel(m, "access"),
		SiteRestrictions:           fieldOrSentinel(m, "site_restrictions"),
		SpecialInstructions:        fieldOrSentinel(m, "special_instructions"),
		DocumentType:               fieldOrSentinel(m, "document_type"),
		SupplierAddress:            fieldOrSentinel(m, "supplier_address"),
	}

	if entry, ok := brokers.Lookup(p.Supplier); ok {
		p.Supplier = entry.Name
		p.SupplierFound = true
		if p.SupplierAddress == Sentinel && entry.Address != "" {
			p.SupplierAddress = entry.Address
		}
	}

	return p
}
