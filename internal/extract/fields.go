// Package extract turns an uploaded purchase-order PDF into the fixed
// 19-field review payload via an external completion service.
package extract

// Sentinel marks a field the extraction could not populate. It signals
// "needs human review" and is never treated as a real value.
const Sentinel = "Not found"

// Payload is the normalized extraction result. JSON field order is the
// canonical display order and must not change: the review UI and the PDF
// renderer both rely on it.
type Payload struct {
	AccountName                string `json:"account_name"`
	Supplier                   string `json:"supplier"`
	PurchaseOrderNumber        string `json:"purchase_order_number"`
	SiteContact                string `json:"site_contact"`
	SiteContactNumber          string `json:"site_contact_number"`
	SiteContactEmail           string `json:"site_contact_email"`
	SecondarySiteContact       string `json:"secondary_site_contact"`
	SecondarySiteContactNumber string `json:"secondary_site_contact_number"`
	SecondarySiteContactEmail  string `json:"secondary_site_contact_email"`
	SiteName                   string `json:"site_name"`
	SiteAddress                string `json:"site_address"`
	SitePostcode               string `json:"site_postcode"`
	OpeningTimes               string `json:"opening_times"`
	Access                     string `json:"access"`
	SiteRestrictions           string `json:"site_restrictions"`
	SpecialInstructions        string `json:"special_instructions"`
	DocumentType               string `json:"document_type"`
	SupplierAddress            string `json:"supplier_address"`
	SupplierFound              bool   `json:"supplier_found"`
}

// FieldCount is the number of recognized payload keys.
const FieldCount = 19

// Field is one label/value pair in canonical order, for rendering.
type Field struct {
	Label string
	Value string
}

// Empty returns a payload with every string field set to the sentinel.
func Empty() Payload {
	return Payload{
		AccountName:                Sentinel,
		Supplier:                   Sentinel,
		PurchaseOrderNumber:        Sentinel,
		SiteContact:                Sentinel,
		SiteContactNumber:          Sentinel,
		SiteContactEmail:           Sentinel,
		SecondarySiteContact:       Sentinel,
		SecondarySiteContactNumber: Sentinel,
		SecondarySiteContactEmail:  Sentinel,
		SiteName:                   Sentinel,
		SiteAddress:                Sentinel,
		SitePostcode:               Sentinel,
		OpeningTimes:               Sentinel,
		Access:                     Sentinel,
		SiteRestrictions:           Sentinel,
		SpecialInstructions:        Sentinel,
		DocumentType:               Sentinel,
		SupplierAddress:            Sentinel,
		SupplierFound:              false,
	}
}

// Fields returns every payload field as label/value pairs in canonical
// order. SupplierFound is rendered as Yes/No.
func (p Payload) Fields() []Field {
	found := "No"
	if p.SupplierFound {
		found = "Yes"
	}
	return []Field{
		{"Account Name", p.AccountName},
		{"Supplier", p.Supplier},
		{"Purchase Order Number", p.PurchaseOrderNumber},
		{"Site Contact", p.SiteContact},
		{"Site Contact Number", p.SiteContactNumber},
		{"Site Contact Email", p.SiteContactEmail},
		{"Secondary Site Contact", p.SecondarySiteContact},
		{"Secondary Site Contact Number", p.SecondarySiteContactNumber},
		{"Secondary Site Contact Email", p.SecondarySiteContactEmail},
		{"Site Name", p.SiteName},
		{"Site Address", p.SiteAddress},
		{"Site Postcode", p.SitePostcode},
		{"Opening Times", p.OpeningTimes},
		{"Access", p.Access},
		{"Site Restrictions", p.SiteRestrictions},
		{"Special Instructions", p.SpecialInstructions},
		{"Document Type", p.DocumentType},
		{"Supplier Address", p.SupplierAddress},
		{"Supplier Found", found},
	}
}
