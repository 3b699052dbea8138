package textsearchgo

// Document is a piece of text held in the index, per §3. Text is the
// required payload; ID is assigned on Append (caller-supplied or a
// fresh random UUID). normalized is the token sequence produced by
// the configured tokenizer and normalizer chain at ingest time — it
// is fixed once the document is indexed and is never recomputed.
type Document struct {
	ID   string
	Text string

	normalized []string
}

// Item is anything Append accepts: a raw string or a Document with an
// optional pre-assigned ID. Passing any other type is an
// InvalidArgumentError.
type Item interface{}

func itemToDocument(item Item) (Document, error) {
	switch v := item.(type) {
	case string:
		return Document{Text: v}, nil
	case Document:
		return v, nil
	case *Document:
		return *v, nil
	default:
		return Document{}, &InvalidArgumentError{Message: "append: item must be a string or Document"}
	}
}
