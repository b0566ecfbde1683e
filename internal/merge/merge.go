package merge

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/harper-global/coi-cli/internal/model"
)

// Source is one extracted document together with the file it came from.
type Source struct {
	File string
	Doc  *model.Document
}

// Reconcile merges the coverage documents extracted from multiple source
// certificates. Each coverage block is based on its most complete source
// and backfilled from the rest; carriers are unioned under fresh letters;
// endorsement flags survive if any source confirms them. Reconcile never
// fails: if merging panics it falls back to the first source document.
func Reconcile(sources []Source) (doc *model.Document) {
	var present []Source
	for _, s := range sources {
		if s.Doc != nil {
			present = append(present, s)
		}
	}
	if len(present) == 0 {
		return &model.Document{}
	}
	if len(present) == 1 {
		return present[0].Doc
	}

	defer func() {
		if r := recover(); r != nil {
			zap.L().Warn("merge: reconciliation failed, keeping first source",
				zap.String("file", present[0].File),
				zap.Any("panic", r),
			)
			doc = fallback(present)
		}
	}()

	docs := make([]*model.Document, len(present))
	for i, s := range present {
		docs[i] = clone(s.Doc)
	}

	carriers, renames := unionCarriers(sourcesOf(present, docs))
	for i, d := range docs {
		rewriteLetters(d, renames[i])
	}

	out := &model.Document{Carriers: carriers}
	var filled []string

	out.Producer = *mostComplete(producers(docs))
	for _, d := range docs {
		Backfill(&out.Producer, &d.Producer, &filled)
	}
	out.Insured = *mostComplete(insureds(docs))
	for _, d := range docs {
		Backfill(&out.Insured, &d.Insured, &filled)
	}

	out.Liability = mergeBlock(liabilityBlocks(docs), &filled)
	out.Property = mergeBlock(propertyBlocks(docs), &filled)
	out.Garage = mergeBlock(garageBlocks(docs), &filled)

	for _, d := range docs {
		if d.HasPropertySchedule() {
			out.PropertySchedule = d.PropertySchedule
			break
		}
	}

	names := make([]string, len(present))
	for i, s := range present {
		names[i] = s.File
		out.Notes = append(out.Notes, s.Doc.Notes...)
	}
	out.Notes = append(out.Notes, reconciliationNote(names, filled))

	zap.L().Info("merge: documents reconciled",
		zap.Int("sources", len(present)),
		zap.Int("carriers", len(carriers)),
		zap.Int("backfilled", len(filled)),
	)
	return out
}

// fallback keeps the first source, backfilled from the rest. The base is
// cloned so the caller's document stays untouched.
func fallback(present []Source) *model.Document {
	out := clone(present[0].Doc)
	for _, s := range present[1:] {
		Backfill(out, s.Doc, nil)
	}
	return out
}

// maxNotedFields caps how many backfilled paths the reconciliation note
// spells out.
const maxNotedFields = 12

// reconciliationNote names the sources and the fields that had to be
// filled from a non-base source.
func reconciliationNote(names, filled []string) string {
	note := fmt.Sprintf("reconciled from %d documents (%s)", len(names), strings.Join(names, ", "))
	if len(filled) == 0 {
		return note + "; no fields backfilled"
	}
	listed := filled
	if len(listed) > maxNotedFields {
		listed = listed[:maxNotedFields]
	}
	note += "; backfilled " + strings.Join(listed, ", ")
	if extra := len(filled) - len(listed); extra > 0 {
		note += fmt.Sprintf(" and %d more", extra)
	}
	return note
}

// mergeBlock bases the merged block on the most complete candidate and
// backfills it from every other candidate in source order. A block absent
// from every source stays absent.
func mergeBlock[T any](candidates []*T, filled *[]string) *T {
	base := mostComplete(candidates)
	if base == nil {
		return nil
	}
	for _, c := range candidates {
		if c != nil && c != base {
			Backfill(base, c, filled)
		}
	}
	return base
}

// mostComplete picks the candidate with the highest leaf count, earlier
// sources winning ties.
func mostComplete[T any](candidates []*T) *T {
	var best *T
	bestScore := -1
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if score := countLeaves(*c); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// clone deep-copies a document through its JSON codec so merging never
// mutates caller-owned data.
func clone(d *model.Document) *model.Document {
	raw, err := json.Marshal(d)
	if err != nil {
		panic(err)
	}
	var out model.Document
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return &out
}

func sourcesOf(present []Source, docs []*model.Document) []Source {
	out := make([]Source, len(present))
	for i := range present {
		out[i] = Source{File: present[i].File, Doc: docs[i]}
	}
	return out
}

func producers(docs []*model.Document) []*model.Producer {
	out := make([]*model.Producer, len(docs))
	for i, d := range docs {
		out[i] = &d.Producer
	}
	return out
}

func insureds(docs []*model.Document) []*model.Party {
	out := make([]*model.Party, len(docs))
	for i, d := range docs {
		out[i] = &d.Insured
	}
	return out
}

func liabilityBlocks(docs []*model.Document) []*model.LiabilityBlock {
	out := make([]*model.LiabilityBlock, len(docs))
	for i, d := range docs {
		out[i] = d.Liability
	}
	return out
}

func propertyBlocks(docs []*model.Document) []*model.PropertyBlock {
	out := make([]*model.PropertyBlock, len(docs))
	for i, d := range docs {
		out[i] = d.Property
	}
	return out
}

func garageBlocks(docs []*model.Document) []*model.GarageBlock {
	out := make([]*model.GarageBlock, len(docs))
	for i, d := range docs {
		out[i] = d.Garage
	}
	return out
}
