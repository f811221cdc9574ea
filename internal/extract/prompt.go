package extract

import (
	"fmt"

	"github.com/wasteexperts/pdf-extractor/internal/brokers"
)

const promptTemplate = `You are extracting data from a supplier purchase order PDF sent to Waste Logics.

STEP 1 — IDENTIFY THE SUPPLIER
Scan the ENTIRE document and match supplier against this approved account list:
%s

STEP 2 — Return ONLY valid JSON with this shape:
{
  "account_name": "Account/client/supplier name from approved list, or null",
  "supplier": "Best matching supplier from approved list, or null",
  "purchase_order_number": "PO/order reference, or null",
  "site_contact": "Primary contact, or null",
  "site_contact_number": "Primary contact number, or null",
  "site_contact_email": "Primary contact email, or null",
  "secondary_site_contact": "Secondary contact, or null",
  "secondary_site_contact_number": "Secondary contact number, or null",
  "secondary_site_contact_email": "Secondary contact email, or null",
  "site_name": "Site name, or null",
  "site_address": "Site address excluding postcode, newline separated, or null",
  "site_postcode": "Site postcode, or null",
  "opening_times": "Opening hours, or null",
  "access": "Access details, or null",
  "site_restrictions": "Site restrictions, or null",
  "special_instructions": "Special instructions/notes, or null",
  "document_type": "Consignment Note or Waste Transfer Note if explicitly stated, else null"
}

RULES:
- Use null when a value is genuinely not found.
- Return JSON only. No markdown. No explanation.`

// BuildPrompt returns the extraction instruction with the approved broker
// list embedded for name-normalization hinting.
func BuildPrompt() string {
	return fmt.Sprintf(promptTemplate, brokers.PromptList())
}
