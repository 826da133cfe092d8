package analyzer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const headingSelector = "h1, h2, h3, h4, h5, h6"

// invisibleSelector matches body elements whose text is never rendered
const invisibleSelector = "script, style, noscript, template"

// Extract parses raw HTML into a PageDocument. Parsing is best effort;
// malformed markup is repaired by the HTML5 parser rather than rejected.
func Extract(body []byte) (*PageDocument, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return &PageDocument{
		Title:           extractTitle(doc),
		MetaDescription: extractMetaDescription(doc),
		Headings:        extractHeadings(doc),
		Images:          extractImages(doc),
		Lists:           doc.Find("ul, ol").Length(),
		StructuredData:  extractStructuredData(doc),
		BodyText:        extractBodyText(doc),
	}, nil
}

func extractTitle(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func extractMetaDescription(doc *goquery.Document) string {
	content, _ := doc.Find("meta[name='description']").First().Attr("content")
	return strings.TrimSpace(content)
}

func extractHeadings(doc *goquery.Document) []Heading {
	headings := make([]Heading, 0)
	doc.Find(headingSelector).Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		headings = append(headings, Heading{
			Level: int(name[1] - '0'),
			Text:  strings.TrimSpace(s.Text()),
		})
	})
	return headings
}

func extractImages(doc *goquery.Document) []Image {
	images := make([]Image, 0)
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		alt, _ := s.Attr("alt")
		src, exists := s.Attr("src")
		if !exists {
			src = "unknown"
		}
		images = append(images, Image{
			Src:        src,
			HasAltText: alt != "",
		})
	})
	return images
}

// extractStructuredData decodes every JSON-LD block on its own. A block
// that is not valid JSON, or is not a JSON object, is skipped.
func extractStructuredData(doc *goquery.Document) []map[string]any {
	blocks := make([]map[string]any, 0)
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var data map[string]any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil || data == nil {
			return
		}
		blocks = append(blocks, data)
	})
	return blocks
}

func extractBodyText(doc *goquery.Document) string {
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return ""
	}
	visible := body.Clone()
	visible.Find(invisibleSelector).Remove()
	return visible.Text()
}
