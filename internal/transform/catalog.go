package transform

// MetaFieldKeys lists the string metadata fields carried on every flattened
// record. Missing values surface as null, never as absent keys.
var MetaFieldKeys = []string{
	"sepa_cc",
	"sepa_ct_op",
	"sepa_ct_id",
	"sepa_db",
	"sepa_country",
	"sepa_ep",
	"sepa_ci",
	"sepa_batch_id",
	"internal_reference",
	"bunq_payment_id",
	"import_hash",
	"import_hash_v2",
	"external_id",
	"original_source",
}

// MetaDateKeys lists the date metadata fields, rendered as RFC 3339 or null.
var MetaDateKeys = []string{
	"interest_date",
	"book_date",
	"process_date",
	"due_date",
	"payment_date",
	"invoice_date",
}

// metaLookupKey maps a record field to the key its value is stored under.
// The sepa_db value has always been written under "sepa_ddb"; switching the
// lookup to the spelled-right key would blank the field for every existing
// row, so the historical spelling stays.
func metaLookupKey(field string) string {
	if field == "sepa_db" {
		return "sepa_ddb"
	}
	return field
}
