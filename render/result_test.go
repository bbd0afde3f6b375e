package render

import (
	"github.com/revelaction/wordsense/disambig"
	"github.com/revelaction/wordsense/sense"
)

func tiedResult() disambig.Result {
	return disambig.Result{
		Sentence:  "I sat on the bank",
		Index:     4,
		Position:  4,
		Word:      "bank",
		Class:     sense.Noun,
		Signature: "-PRP-VBD-IN-DT-WORD-",
		Method:    disambig.MethodContext,
		Senses: []sense.Sense{
			{Id: "n1", Class: sense.Noun, Definition: "sloping land"},
			{Id: "n2", Class: sense.Noun, Definition: "a financial institution"},
		},
		Tokens: []sense.Token{
			{Index: 0, Text: "I", Tag: "PRP", Stop: true},
			{Index: 1, Text: "sat", Tag: "VBD"},
			{Index: 2, Text: "on", Tag: "IN", Stop: true},
			{Index: 3, Text: "the", Tag: "DT", Stop: true},
			{Index: 4, Text: "bank", Tag: "NN"},
		},
		Trace: []disambig.Comparison{
			{SenseId: "n1", Signature: "-PRP-VBD-DT-NN-RP-IN-DT-WORD-", Common: "-IN-DT-WORD-", Accepted: true},
			{SenseId: "v1", Signature: "-WRB-VBP-PRP-WORD-IN-DT-NN-.-", Common: "D-IN-DT-"},
		},
	}
}

func bestResult() disambig.Result {
	return disambig.Result{
		Sentence:  "I sat on the bank",
		Index:     1,
		Position:  1,
		Word:      "sat",
		Class:     sense.Verb,
		Signature: "-PRP-WORD-IN-DT-NN-",
		Method:    disambig.MethodFrequency,
		Senses:    []sense.Sense{{Id: "sit", Class: sense.Verb, Definition: "be seated"}},
	}
}
