package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/wordsense/disambig"
	"github.com/revelaction/wordsense/sense"
)

// JSON writes results as one JSON object per line.
type JSON struct {
	W io.Writer
}

// compile-time interface check
var _ Renderer = (*JSON)(nil)

func NewJSON(w io.Writer) *JSON {
	return &JSON{W: w}
}

// Result is the JSON document of a disambiguation.
type Result struct {
	disambig.Result
	Definitions []string `json:"definitions"`
	Text        string   `json:"text"`
}

func NewResult(res disambig.Result) Result {
	return Result{Result: res, Definitions: res.Definitions(), Text: res.Text()}
}

func (r *JSON) Render(res disambig.Result) error {
	return json.NewEncoder(r.W).Encode(NewResult(res))
}

func (r *JSON) Senses(senses []sense.Sense) error {
	if senses == nil {
		senses = []sense.Sense{}
	}
	return json.NewEncoder(r.W).Encode(senses)
}

func (r *JSON) Tokens(tokens []sense.Token) error {
	if tokens == nil {
		tokens = []sense.Token{}
	}
	return json.NewEncoder(r.W).Encode(tokens)
}
