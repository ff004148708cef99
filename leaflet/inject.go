package leaflet

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	ErrNoScriptBlock = errors.New("rendered document has no inline script block")
	ErrUnsafeScript  = errors.New("script fragment contains a closing script tag")
)

// InjectScript appends the fragments to the end of the document's last inline
// script block. Rendered maps always contain one; a document without any is an
// internal error.
func InjectScript(document []byte, fragments ...string) ([]byte, error) {
	for _, fragment := range fragments {
		if strings.Contains(strings.ToLower(fragment), "</script") {
			return nil, ErrUnsafeScript
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("parse rendered document: %w", err)
	}

	inline := doc.Find("script").FilterFunction(func(_ int, s *goquery.Selection) bool {
		_, hasSrc := s.Attr("src")
		return !hasSrc
	})

	if inline.Length() == 0 {
		return nil, ErrNoScriptBlock
	}

	target := inline.Last().Nodes[0]
	target.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: "\n" + strings.Join(fragments, "\n") + "\n",
	})

	var buf bytes.Buffer
	if err := html.Render(&buf, doc.Nodes[0]); err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}

	return buf.Bytes(), nil
}
