package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/revelaction/wordsense/sense"
)

func TestJSONRenderTies(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSON(&buf)
	if err := r.Render(tiedResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var got struct {
		Word        string   `json:"word"`
		Class       string   `json:"class"`
		Method      string   `json:"method"`
		Definitions []string `json:"definitions"`
		Text        string   `json:"text"`
		Trace       []struct {
			Accepted bool `json:"accepted"`
		} `json:"trace"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if got.Word != "bank" || got.Class != "n" || got.Method != "context" {
		t.Errorf("unexpected header fields %+v", got)
	}

	if len(got.Definitions) != 2 || got.Text != "sloping land\n\na financial institution" {
		t.Errorf("unexpected definitions %+v", got)
	}

	if len(got.Trace) != 2 || !got.Trace[0].Accepted {
		t.Errorf("unexpected trace %+v", got.Trace)
	}
}

func TestJSONRenderBestSense(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSON(&buf).Render(bestResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if got["method"] != "frequency" || got["text"] != "be seated" {
		t.Errorf("unexpected result %v", got)
	}

	if _, ok := got["trace"]; ok {
		t.Errorf("expected empty trace to be omitted")
	}
}

func TestJSONSensesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSON(&buf).Senses(nil); err != nil {
		t.Fatalf("Senses: %v", err)
	}

	var senses []sense.Sense
	if err := json.Unmarshal(buf.Bytes(), &senses); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if senses == nil || len(senses) != 0 {
		t.Fatalf("expected empty array, got %s", buf.String())
	}
}
