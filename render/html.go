package render

import (
	"html/template"
	"io"

	"github.com/revelaction/wordsense/disambig"
)

const (
	DefaultTitle      = "Word Sense Disambiguation"
	DefaultStylesheet = "bootstrap.min.css"
)

const pageTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="{{.Stylesheet}}">
  </head>
  <body>
    <form class="wsd" action="{{.Action}}" method="post">
      <input type="text" name="sent" value="{{.Sentence}}">
      <input type="number" name="index" value="{{.Index}}">
      <button type="submit">Disambiguate</button>
    </form>
{{- if .HasResult}}
    <p class="sentence">Sentence : {{.Sentence}}</p>
    <p class="index">Index : {{.Index}}</p>
{{- if .Error}}
    <p class="error">Error : {{.Error}}</p>
{{- else}}
    <p class="sense" style="white-space: pre-line">Best Sense : {{.Sense}}</p>
{{- end}}
{{- end}}
  </body>
</html>
`

var page = template.Must(template.New("page").Parse(pageTemplate))

// Page holds the values of the web form page.
type Page struct {
	Title      string
	Stylesheet string
	Action     string

	Sentence string
	Index    int

	HasResult bool
	Sense     string
	Error     string
}

// HTML writes the web form page.
type HTML struct {
	W          io.Writer
	Title      string
	Stylesheet string
	Action     string
}

var _ Renderer = (*HTML)(nil)

func NewHTML(w io.Writer) *HTML {
	return &HTML{W: w, Title: DefaultTitle, Stylesheet: DefaultStylesheet, Action: "/wsd"}
}

func (r *HTML) page() Page {
	return Page{Title: r.Title, Stylesheet: r.Stylesheet, Action: r.Action}
}

// Form writes the page with an empty form.
func (r *HTML) Form(sentence string, index int) error {
	p := r.page()
	p.Sentence = sentence
	p.Index = index
	return page.Execute(r.W, p)
}

func (r *HTML) Render(res disambig.Result) error {
	return r.Result(res.Sentence, res.Index, res)
}

// Result writes the page for res, echoing sentence and index as requested.
func (r *HTML) Result(sentence string, index int, res disambig.Result) error {
	p := r.page()
	p.Sentence = sentence
	p.Index = index
	p.HasResult = true
	p.Sense = res.Text()
	return page.Execute(r.W, p)
}

// Error writes the page with err in place of the sense.
func (r *HTML) Error(sentence string, index int, err error) error {
	p := r.page()
	p.Sentence = sentence
	p.Index = index
	p.HasResult = true
	p.Error = err.Error()
	return page.Execute(r.W, p)
}
