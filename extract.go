package cssloc

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/stylekit/go-cssloc/scss"
)

// Embedded is a stylesheet found inside a host document, together with the
// byte offset at which its text begins there.
type Embedded struct {
	Text   string
	Offset int
}

// ExtractHTML returns the contents of every <style> element of an HTML
// document. Offsets are byte offsets into the document as read. Raw
// tokenizer output is used verbatim, so entity references inside style text
// stay unexpanded and lengths line up with the input.
func ExtractHTML(r io.Reader) ([]Embedded, error) {
	z := html.NewTokenizer(r)
	var (
		out     []Embedded
		offset  int
		inStyle bool
	)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() == io.EOF {
				return out, nil
			}
			return out, z.Err()
		}
		raw := z.Raw()
		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			inStyle = strings.EqualFold(string(name), "style")
		case html.TextToken:
			if inStyle {
				out = append(out, Embedded{Text: string(raw), Offset: offset})
			}
		case html.EndTagToken, html.SelfClosingTagToken:
			inStyle = false
		}
		offset += len(raw)
	}
}

// ParseEmbedded parses an embedded stylesheet and rebases its offsets into
// the host document, whose full text must be given. The returned
// Stylesheet slices against the host.
func ParseEmbedded(e Embedded, host string) (*Stylesheet, error) {
	st, err := Parse(e.Text)
	if err != nil {
		return nil, err
	}
	scss.ShiftOffsets(st.Root, e.Offset)
	st.Text = host
	return st, nil
}
