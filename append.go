package textsearchgo

import "github.com/google/uuid"

// Append ingests each item (a raw string or a Document, mixable) per
// §4.3. Fails fast: if item i fails, items before it remain indexed —
// batching is a convenience, not a transaction. Callers needing
// all-or-nothing semantics must pre-validate (e.g. check for id
// collisions themselves before calling Append).
func (idx *Index) Append(items ...Item) error {
	for _, item := range items {
		doc, err := itemToDocument(item)
		if err != nil {
			return err
		}
		if err := idx.appendOne(doc); err != nil {
			return err
		}
	}
	return nil
}

func (idx *Index) appendOne(doc Document) error {
	tokens := idx.tokenizer.Tokenize(doc.Text)
	doc.normalized = idx.normalize(tokens)

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	} else if _, exists := idx.docs[doc.ID]; exists {
		return &DuplicateIngestError{ID: doc.ID}
	}

	stored := doc
	idx.docs[doc.ID] = &stored

	for pos, token := range doc.normalized {
		idx.inverted[token] = append(idx.inverted[token], doc.ID)

		byDoc, ok := idx.positional[token]
		if !ok {
			byDoc = make(map[string][]int)
			idx.positional[token] = byDoc
		}
		byDoc[doc.ID] = append(byDoc[doc.ID], pos)
	}

	return nil
}
