package textsearchgo

// Delete removes the union of identifiers resolved from docs and ids
// (filtered to those present in the store), per §4.4. At least one of
// docs or ids must be non-empty. Returns the count of documents
// actually deleted.
func (idx *Index) Delete(docs []Document, ids []string) (int, error) {
	if len(docs) == 0 && len(ids) == 0 {
		return 0, &InvalidArgumentError{Message: "delete: at least one of docs or ids must be supplied"}
	}

	resolved := make(map[string]struct{})
	for _, d := range docs {
		resolved[d.ID] = struct{}{}
	}
	for _, id := range ids {
		resolved[id] = struct{}{}
	}

	deleted := 0
	for id := range resolved {
		if idx.deleteOne(id) {
			deleted++
		}
	}
	return deleted, nil
}

func (idx *Index) deleteOne(id string) bool {
	doc, ok := idx.docs[id]
	if !ok {
		return false
	}

	for _, token := range doc.normalized {
		idx.inverted[token] = removeOnce(idx.inverted[token], id)
		if len(idx.inverted[token]) == 0 {
			delete(idx.inverted, token)
		}

		if byDoc, ok := idx.positional[token]; ok {
			delete(byDoc, id)
			if len(byDoc) == 0 {
				delete(idx.positional, token)
			}
		}
	}

	delete(idx.docs, id)
	return true
}

// removeOnce removes exactly one occurrence of id from list,
// preserving the relative order of the rest. The inverted index
// keeps one entry per token occurrence, so a document whose token
// appeared twice still has one entry removed per scan of its
// normalized token list — appendOne appends once per occurrence, so
// a single pass over the document's tokens removes exactly as many
// entries as were added for it.
func removeOnce(list []string, id string) []string {
	for i, v := range list {
		if v == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
