package wordlist

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/ordnung"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
	"golang.org/x/net/html"
)

// EachWord scans r and calls f for every word, in reading order. Segment
// boundaries follow Unicode Annex #29; segments without at least one letter
// or digit (whitespace, punctuation) are dropped. Scanning stops early as
// soon as f returns false.
func EachWord(r io.Reader, f func(word string) bool) {
	segmenter := newWordSegmenter(r)
	for segmenter.Next() {
		word := string(segmenter.Bytes())
		if !isWord(word) {
			continue
		}
		if !f(word) {
			return
		}
	}
}

// newWordSegmenter sets up a UAX#29 segmenter on a reader.
func newWordSegmenter(r io.Reader) *segment.Segmenter {
	breaker := uax29.NewWordBreaker(1)
	segmenter := segment.NewSegmenter(breaker)
	segmenter.Init(bufio.NewReader(r))
	return segmenter
}

// isWord decides whether a segment counts as a word, i.e. carries at least
// one letter or digit.
func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Words returns all words of r, in reading order.
func Words(r io.Reader) []string {
	var words []string
	EachWord(r, func(word string) bool {
		words = append(words, word)
		return true
	})
	return words
}

// FromText reads r and collects its words as a sorted collection. Repeated
// words are kept as duplicates, making the collection double as a simple
// concordance: the number of equal items is the word's frequency.
func FromText(r io.Reader) *ordnung.Collection[string] {
	coll := ordnung.New[string]()
	EachWord(r, func(word string) bool {
		coll.Add(word)
		return true
	})
	return coll
}

// FromString collects the words of a string as a sorted collection.
func FromString(text string) *ordnung.Collection[string] {
	return FromText(strings.NewReader(text))
}

// FromHTML parses an HTML fragment and collects the words of its textual
// content as a sorted collection. Markup does not contribute any words, and
// element boundaries always separate words.
func FromHTML(input io.Reader) (*ordnung.Collection[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	coll := ordnung.New[string]()
	for _, n := range nodes {
		collectWords(n, coll)
	}
	return coll, nil
}

// FromHTMLNode collects the words of the textual content of an HTML element
// and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that wordlist.FromHTMLNode cannot respect CSS styling
// suppressing the visibility of the node's descendents).
func FromHTMLNode(n *html.Node) (*ordnung.Collection[string], error) {
	if n == nil {
		return nil, ordnung.ErrIllegalArguments
	}
	coll := ordnung.New[string]()
	collectWords(n, coll)
	return coll, nil
}

func collectWords(n *html.Node, coll *ordnung.Collection[string]) {
	if n.Type == html.TextNode {
		EachWord(strings.NewReader(n.Data), func(word string) bool {
			coll.Add(word)
			return true
		})
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectWords(c, coll)
	}
}
