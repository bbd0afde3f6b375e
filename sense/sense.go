package sense

// Sense is one meaning of a word as stored in the sense inventory.
type Sense struct {
	// Id identifies the sense in its inventory, f.ex. "08420278-n" for
	// WordNet (offset and POS letter).
	Id string `json:"id"`

	Class Class `json:"class"`

	// The words of the synonym set, the first one is the canonical lemma
	Lemmas []string `json:"lemmas,omitempty"`

	Definition string `json:"definition"`

	// Usage example sentences, in inventory order
	Examples []string `json:"examples,omitempty"`
}

// Entry is the ordered list of senses of a lemma for one Class.
type Entry struct {
	Lemma  string  `json:"lemma"`
	Class  Class   `json:"class"`
	Senses []Sense `json:"senses"`
}

// Exception maps an irregular inflected form to its base forms, f.ex.
// "geese" -> ["goose"].
type Exception struct {
	Form  string   `json:"form"`
	Class Class    `json:"class"`
	Bases []string `json:"bases"`
}

// Token represents a word of the sentence, with POS and the annotations
// added by the definition lookup.
type Token struct {
	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`

	// The unmodified word
	Text string `json:"text"`

	// The tag given by the tagger (Penn Treebank), f.ex. "NN", "VBD"
	Tag string `json:"tag"`

	Punct bool `json:"punct"`
	Stop  bool `json:"stop"`

	// The following fields are only set when the word has senses for the
	// class of its tag.

	// The lemma of the word
	Lemma string `json:"lemma,omitempty"`

	// Human readable POS label, f.ex. "Noun"
	Label string `json:"label,omitempty"`

	// All definitions of the word for its class, joined by "; \n"
	Definitions string `json:"definitions,omitempty"`
}

// Annotated reports whether the definition lookup found senses for the
// token.
func (t Token) Annotated() bool {
	return t.Definitions != ""
}
