package newsapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Article is one scraped news record as exposed by the API. Every field is
// optional; the zero value means absent.
type Article struct {
	ID          ArticleID `json:"id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	Link        string    `json:"link"`
	SourceName  string    `json:"fonte"`
	ExtractedAt string    `json:"data_extracao"`
}

// ArticleID is an opaque, display-only identifier. The API sends numbers,
// but strings are accepted too.
type ArticleID string

func (id *ArticleID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ArticleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid article id %s: %w", data, err)
	}
	*id = ArticleID(n.String())
	return nil
}

// Shape tells which of the two collection response forms was received.
type Shape int

const (
	ShapeBareArray Shape = iota
	ShapeEnvelope
)

func (s Shape) String() string {
	switch s {
	case ShapeBareArray:
		return "bare_array"
	case ShapeEnvelope:
		return "envelope"
	default:
		return "unknown"
	}
}

// ArticleList is the decoded collection response. The API returns either a
// bare array or a paginated envelope {count, next, previous, results}; both
// decode into this type and Shape records which one arrived.
type ArticleList struct {
	Shape    Shape
	Articles []Article

	// Envelope metadata, zero for bare arrays
	Count    int
	Next     string
	Previous string
}

type envelope struct {
	Count    *int             `json:"count"`
	Next     *string          `json:"next"`
	Previous *string          `json:"previous"`
	Results  *json.RawMessage `json:"results"`
}

func (l *ArticleList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty collection response")
	}

	switch trimmed[0] {
	case '[':
		var articles []Article
		if err := json.Unmarshal(trimmed, &articles); err != nil {
			return err
		}
		*l = ArticleList{Shape: ShapeBareArray, Articles: articles, Count: len(articles)}
		return nil

	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return err
		}
		if env.Results == nil || bytes.Equal(bytes.TrimSpace(*env.Results), []byte("null")) {
			return fmt.Errorf("envelope has no results field")
		}

		var articles []Article
		if err := json.Unmarshal(*env.Results, &articles); err != nil {
			return fmt.Errorf("invalid results field: %w", err)
		}

		list := ArticleList{Shape: ShapeEnvelope, Articles: articles, Count: len(articles)}
		if env.Count != nil {
			list.Count = *env.Count
		}
		if env.Next != nil {
			list.Next = *env.Next
		}
		if env.Previous != nil {
			list.Previous = *env.Previous
		}
		*l = list
		return nil

	default:
		return fmt.Errorf("collection response is neither an array nor an object")
	}
}

// Truncated reports whether the API holds more articles than this page
// carries. Only envelopes can be truncated.
func (l *ArticleList) Truncated() bool {
	if l.Shape != ShapeEnvelope {
		return false
	}
	return l.Next != "" || l.Count > len(l.Articles)
}

type Statistics struct {
	TotalArticles int `json:"total_noticias"`
	TotalSources  int `json:"total_fontes"`
}

type ClearResult struct {
	Message string `json:"message"`
}
