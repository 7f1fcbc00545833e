// Package datafile reads and writes the file formats shared by the
// command-line tools: raw track listings, event CSVs, fleet JSON,
// assignment exports and scenario summaries. Readers are forgiving about
// layout where the formats historically allowed it; writers always emit the
// canonical form.
package datafile

import "strconv"

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
