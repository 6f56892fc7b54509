package usecase

// tokenGroups is a partition of query tokens into semantic categories.
// Every token belongs to exactly one group.
type tokenGroups struct {
	colors       []string
	voltages     []string
	productTypes []string
	other        []string
}

// classifyTokens partitions normalized query tokens by category table
// membership, checked in order: color, voltage, product type, else other.
func classifyTokens(tokens []string) tokenGroups {
	var groups tokenGroups

	for _, token := range tokens {
		switch {
		case colorTokens[token]:
			groups.colors = append(groups.colors, token)
		case voltageTokens[token]:
			groups.voltages = append(groups.voltages, token)
		case productTypeTokens[token]:
			groups.productTypes = append(groups.productTypes, token)
		case len(token) > 1:
			groups.other = append(groups.other, token)
		}
	}

	return groups
}
