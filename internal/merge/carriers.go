package merge

import (
	"strings"

	"github.com/harper-global/coi-cli/internal/model"
)

// carrierLetters are assigned to the merged carrier list in order. Forms
// only render six insurer rows; overflow carriers keep letters past F so
// nothing is silently dropped from the document.
var carrierLetters = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// unionCarriers merges the carrier lists of all sources. Carriers are
// deduplicated by normalized legal name and assigned fresh letters in
// first-seen order. The returned rename maps translate each source's
// original letters into the merged letters and must be applied to that
// source's documents before any field-level merging.
func unionCarriers(sources []Source) ([]model.Carrier, []map[string]string) {
	var merged []model.Carrier
	index := make(map[string]int)
	renames := make([]map[string]string, len(sources))

	for i, src := range sources {
		renames[i] = make(map[string]string)
		if src.Doc == nil {
			continue
		}
		for _, c := range src.Doc.Carriers {
			key := normalizeCarrierName(c.Name)
			if key == "" {
				continue
			}
			pos, seen := index[key]
			if !seen {
				pos = len(merged)
				index[key] = pos
				letter := ""
				if pos < len(carrierLetters) {
					letter = carrierLetters[pos]
				}
				merged = append(merged, model.Carrier{Letter: letter, Name: c.Name, NAIC: c.NAIC})
			} else if merged[pos].NAIC == "" && c.NAIC != "" {
				merged[pos].NAIC = c.NAIC
			}
			if c.Letter != "" {
				renames[i][strings.ToUpper(c.Letter)] = merged[pos].Letter
			}
		}
	}
	return merged, renames
}

func normalizeCarrierName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// rewriteLetters rewrites every insurerLetter reference in d through the
// rename map so coverage sections keep pointing at the same carrier after
// the merged list reassigns letters.
func rewriteLetters(d *model.Document, rename map[string]string) {
	if d == nil || len(rename) == 0 {
		return
	}
	fix := func(letter *string) {
		if *letter == "" {
			return
		}
		if to, ok := rename[strings.ToUpper(*letter)]; ok {
			*letter = to
		}
	}
	if d.Liability != nil {
		fix(&d.Liability.GL.InsurerLetter)
		fix(&d.Liability.Auto.InsurerLetter)
		fix(&d.Liability.Umbrella.InsurerLetter)
		fix(&d.Liability.WorkersComp.InsurerLetter)
	}
	if d.Property != nil {
		fix(&d.Property.InsurerLetter)
	}
	if d.Garage != nil {
		fix(&d.Garage.InsurerLetter)
		fix(&d.Garage.Umbrella.InsurerLetter)
		fix(&d.Garage.WorkersComp.InsurerLetter)
	}
}
