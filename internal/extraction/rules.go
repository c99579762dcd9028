package extraction

import "regexp"

// The targeted rule tables below mirror the phrasing conventions of US
// real-estate paperwork. For each field the patterns are tried in order
// and the first match wins.

func compileAll(exprs []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		res[i] = regexp.MustCompile(e)
	}
	return res
}

type fieldRule struct {
	field    string
	patterns []*regexp.Regexp
}

func newFieldRule(field string, exprs ...string) fieldRule {
	return fieldRule{field: field, patterns: compileAll(exprs)}
}

var partyRules = []fieldRule{
	newFieldRule("buyer",
		`(?i)buyer:?\s*([^,\n\r\.]{3,50})`,
		`(?i)purchaser:?\s*([^,\n\r\.]{3,50})`,
		`(?i)HEREINAFTER\s+(?:called|referred to as)[^,\n\r]*"?(?:buyer|purchaser)"?[^,\n\r]*,\s*([^,\n\r\.]{3,50})`,
	),
	newFieldRule("seller",
		`(?i)seller:?\s*([^,\n\r\.]{3,50})`,
		`(?i)vendor:?\s*([^,\n\r\.]{3,50})`,
		`(?i)HEREINAFTER\s+(?:called|referred to as)[^,\n\r]*"?(?:seller|vendor)"?[^,\n\r]*,\s*([^,\n\r\.]{3,50})`,
	),
	newFieldRule("lender",
		`(?i)lender:?\s*([^,\n\r\.]{3,50})`,
		`(?i)mortgagee:?\s*([^,\n\r\.]{3,50})`,
		`(?i)HEREINAFTER\s+(?:called|referred to as)[^,\n\r]*"?(?:lender|mortgagee)"?[^,\n\r]*,\s*([^,\n\r\.]{3,50})`,
	),
	newFieldRule("borrower",
		`(?i)borrower:?\s*([^,\n\r\.]{3,50})`,
		`(?i)mortgagor:?\s*([^,\n\r\.]{3,50})`,
		`(?i)HEREINAFTER\s+(?:called|referred to as)[^,\n\r]*"?(?:borrower|mortgagor)"?[^,\n\r]*,\s*([^,\n\r\.]{3,50})`,
	),
	newFieldRule("lessor",
		`(?i)lessor:?\s*([^,\n\r\.]{3,50})`,
		`(?i)landlord:?\s*([^,\n\r\.]{3,50})`,
		`(?i)HEREINAFTER\s+(?:called|referred to as)[^,\n\r]*"?(?:lessor|landlord)"?[^,\n\r]*,\s*([^,\n\r\.]{3,50})`,
	),
	newFieldRule("lessee",
		`(?i)lessee:?\s*([^,\n\r\.]{3,50})`,
		`(?i)tenant:?\s*([^,\n\r\.]{3,50})`,
		`(?i)HEREINAFTER\s+(?:called|referred to as)[^,\n\r]*"?(?:lessee|tenant)"?[^,\n\r]*,\s*([^,\n\r\.]{3,50})`,
	),
}

var dateRules = []fieldRule{
	newFieldRule("agreement_date",
		`(?i)(?:THIS\s+AGREEMENT|THIS\s+CONTRACT)[^.]*?dated\s+(?:as of\s+)?([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`,
		`(?i)(?:THIS\s+AGREEMENT|THIS\s+CONTRACT)[^.]*?dated\s+(?:as of\s+)?(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
		`(?i)DATED:?\s*([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`,
		`(?i)DATED:?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
		`(?i)dated\s+(?:as of\s+)?(?:the\s+)?(\d{1,2}(?:st|nd|rd|th)?\s+day\s+of\s+[A-Za-z]+,?\s+\d{4})`,
	),
	newFieldRule("effective_date",
		`(?i)effective\s+(?:date|as of)(?:\s+the)?\s+(?:date\s+of\s+)?([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`,
		`(?i)effective\s+(?:date|as of)(?:\s+the)?\s+(?:date\s+of\s+)?(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
		`(?i)effective\s+(?:date|as of)(?:\s+the)?\s+(?:date\s+of\s+)?(?:the\s+)?(\d{1,2}(?:st|nd|rd|th)?\s+day\s+of\s+[A-Za-z]+,?\s+\d{4})`,
	),
	newFieldRule("closing_date",
		`(?i)closing\s+date:?\s*([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`,
		`(?i)closing\s+date:?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
		`(?i)date\s+of\s+closing:?\s*([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`,
		`(?i)date\s+of\s+closing:?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
	),
	newFieldRule("execution_date",
		`(?i)executed\s+(?:on|as of)(?:\s+the)?\s+(?:date\s+of\s+)?([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`,
		`(?i)executed\s+(?:on|as of)(?:\s+the)?\s+(?:date\s+of\s+)?(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
		`(?i)executed\s+(?:on|as of)(?:\s+the)?\s+(?:date\s+of\s+)?(?:the\s+)?(\d{1,2}(?:st|nd|rd|th)?\s+day\s+of\s+[A-Za-z]+,?\s+\d{4})`,
	),
}

var moneyRules = []fieldRule{
	newFieldRule("purchase_price",
		`(?i)purchase\s+price:?\s*\$?([0-9,]+\.[0-9]{2})`,
		`(?i)purchase\s+price:?\s*\$?([0-9,]+)`,
		`(?i)total\s+consideration:?\s*\$?([0-9,]+\.[0-9]{2})`,
		`(?i)total\s+consideration:?\s*\$?([0-9,]+)`,
		`(?i)sales\s+price:?\s*\$?([0-9,]+\.[0-9]{2})`,
		`(?i)sales\s+price:?\s*\$?([0-9,]+)`,
	),
	newFieldRule("loan_amount",
		`(?i)loan\s+amount:?\s*\$?([0-9,]+\.[0-9]{2})`,
		`(?i)loan\s+amount:?\s*\$?([0-9,]+)`,
		`(?i)principal\s+(?:sum|amount):?\s*\$?([0-9,]+\.[0-9]{2})`,
		`(?i)principal\s+(?:sum|amount):?\s*\$?([0-9,]+)`,
		`(?i)mortgage\s+amount:?\s*\$?([0-9,]+\.[0-9]{2})`,
		`(?i)mortgage\s+amount:?\s*\$?([0-9,]+)`,
	),
	newFieldRule("deposit_amount",
		`(?i)deposit:?\s*\$?([0-9,]+\.[0-9]{2})`,
		`(?i)deposit:?\s*\$?([0-9,]+)`,
		`(?i)earnest\s+money:?\s*\$?([0-9,]+\.[0-9]{2})`,
		`(?i)earnest\s+money:?\s*\$?([0-9,]+)`,
	),
	newFieldRule("monthly_payment",
		`(?i)monthly\s+payment:?\s*\$?([0-9,]+\.[0-9]{2})`,
		`(?i)monthly\s+payment:?\s*\$?([0-9,]+)`,
		`(?i)monthly\s+rent:?\s*\$?([0-9,]+\.[0-9]{2})`,
		`(?i)monthly\s+rent:?\s*\$?([0-9,]+)`,
	),
	newFieldRule("interest_rate",
		`(?i)interest\s+rate:?\s*([0-9\.]+)%`,
		`(?i)interest\s+rate:?\s*([0-9\.]+)\s+percent`,
		`(?i)at\s+(?:the\s+)?(?:annual\s+)?(?:rate\s+)?(?:of\s+)?([0-9\.]+)%\s+(?:interest|per\s+annum)`,
		`(?i)at\s+(?:the\s+)?(?:annual\s+)?(?:rate\s+)?(?:of\s+)?([0-9\.]+)\s+percent\s+(?:interest|per\s+annum)`,
	),
}

var propertyRules = []fieldRule{
	newFieldRule("address",
		`(?i)property\s+address:?\s*([^,\n\r\.]{3,100}(?:,\s*[^,\n\r\.]{3,50}){1,3})`,
		`(?i)real\s+property\s+located\s+at:?\s*([^,\n\r\.]{3,100}(?:,\s*[^,\n\r\.]{3,50}){1,3})`,
		`(?i)premises\s+located\s+at:?\s*([^,\n\r\.]{3,100}(?:,\s*[^,\n\r\.]{3,50}){1,3})`,
		`(?i)property\s+commonly\s+known\s+as:?\s*([^,\n\r\.]{3,100}(?:,\s*[^,\n\r\.]{3,50}){1,3})`,
	),
	newFieldRule("legal_description",
		// Counted repeats nest here, so the inner bound stays at 100 to
		// keep the expanded size within the regexp package's limit.
		`(?i)legal\s+description:?\s*\n*((?:[^\n\r]{3,100}\n*){1,10})`,
	),
	newFieldRule("property_type",
		`(?i)property\s+type:?\s*([^,\n\r\.]{3,50})`,
		`(?i)type\s+of\s+property:?\s*([^,\n\r\.]{3,50})`,
	),
	newFieldRule("parcel_number",
		`(?i)(?:parcel|tax|assessor(?:'s)?)\s+(?:id|identification|number):?\s*([^,\n\r\.]{3,50})`,
		`(?i)APN:?\s*([^,\n\r\.]{3,50})`,
	),
	newFieldRule("square_footage",
		`(?i)(?:square\s+feet|sq\.\s*ft\.|sf):?\s*([0-9,]+)`,
		`(?i)(?:approximately|approx\.)\s+([0-9,]+)\s+(?:square\s+feet|sq\.\s*ft\.|sf)`,
	),
}

// allMoneyPattern matches every dollar amount in the text, used to
// collect the "other amounts" list.
var allMoneyPattern = regexp.MustCompile(`\$([0-9,]+(?:\.[0-9]{2})?)`)

// vagueDatePattern filters non-specific date mentions out of the
// recognizer's date bucket.
var vagueDatePattern = regexp.MustCompile(`(?i)^(today|now|current|present|annually|monthly|yearly|daily)`)
