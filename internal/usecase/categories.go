package usecase

// Category keyword tables. All entries are in normalized form (see
// NormalizeText). Built once at process start and never mutated.

// colorTokens contains the recognized color terms
var colorTokens = map[string]bool{
	"sari": true, "kirmizi": true, "yesil": true, "mavi": true,
	"beyaz": true, "siyah": true, "turuncu": true, "mor": true,
}

// voltageTokens contains the recognized voltage terms. Bare numbers and
// unit-suffixed forms are independent entries; "24" and "24v" are different
// tokens and each must appear literally in a query to be classified.
var voltageTokens = map[string]bool{
	"220v": true, "24v": true, "12v": true, "110v": true, "380v": true,
	"220": true, "24": true, "12": true, "110": true, "380": true,
}

// productTypeTokens contains the recognized product type terms
var productTypeTokens = map[string]bool{
	"led": true, "ledi": true, "ledli": true, "kontaktor": true,
	"role": true, "sensor": true, "buton": true, "lamba": true,
	"isik": true,
}

// relatedTerms maps a canonical product type to the tokens treated as
// equivalent during soft matching. Not every product type has an expansion;
// types without one never earn the synonym credit.
var relatedTerms = map[string][]string{
	"led":       {"led", "ledi", "ledli"},
	"kontaktor": {"kontaktor", "contactor"},
	"role":      {"role", "rele", "relay"},
	"lamba":     {"lamba", "isik", "light"},
}
