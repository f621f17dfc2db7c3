package normalize

import (
	"bufio"
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

//go:embed stopwords_en.txt
var stopwordsEN string

// Lemmatizer reduces a word to its dictionary base form
type Lemmatizer interface {
	Lemma(word string) string
}

// Resource is the read-only linguistic resource shared by every pipeline run.
// It is safe for concurrent use once constructed.
type Resource struct {
	lemmatizer Lemmatizer
	stopwords  map[string]struct{}
}

// NewResource builds a resource from a lemmatizer and a stopword list
func NewResource(lemmatizer Lemmatizer, stopwords []string) *Resource {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &Resource{lemmatizer: lemmatizer, stopwords: set}
}

// LoadEnglish loads the English lemma dictionary and the embedded stopword list.
// A failure here is fatal at startup.
func LoadEnglish() (*Resource, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load english lemmatizer: %w", err)
	}
	return NewResource(lemmatizer, DefaultStopwords()), nil
}

// DefaultStopwords returns the embedded English stopword list
func DefaultStopwords() []string {
	var words []string
	scanner := bufio.NewScanner(strings.NewReader(stopwordsEN))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}

// IsStopword reports whether a lowercase token is a stop word
func (r *Resource) IsStopword(token string) bool {
	_, ok := r.stopwords[token]
	return ok
}

// Linguistic lowercases text, splits it into tokens, lemmatizes them and drops
// stop words and tokens with non-alphabetic characters. The surviving lemmas are
// joined by single spaces; the result may be empty.
func (r *Resource) Linguistic(text string) string {
	return strings.Join(r.Tokens(text), " ")
}

// Tokens is Linguistic without the final join
func (r *Resource) Tokens(text string) []string {
	raw := tokenize(strings.ToLower(text))
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = stripClitic(tok)
		if !isAlpha(tok) || r.IsStopword(tok) {
			continue
		}
		lemma := tok
		if r.lemmatizer != nil {
			if l := strings.ToLower(r.lemmatizer.Lemma(tok)); l != "" {
				lemma = l
			}
		}
		if !isAlpha(lemma) || r.IsStopword(lemma) {
			continue
		}
		tokens = append(tokens, lemma)
	}
	return tokens
}

// tokenize splits text on whitespace and punctuation. Runs of letters and
// digits stay together so that mixed tokens like "python3" survive as one
// token and are later discarded as non-alphabetic. Apostrophes stay inside
// tokens so contractions can be split by stripClitic.
func tokenize(text string) []string {
	text = strings.ReplaceAll(text, "\u2019", "'")
	return strings.FieldsFunc(text, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '\'')
	})
}

// irregular negations whose stem is not the text before "n't"
var irregularNegations = map[string]string{
	"can't":  "can",
	"won't":  "will",
	"shan't": "shall",
	"ain't":  "be",
}

var clitics = []string{"n't", "'s", "'re", "'ve", "'ll", "'d", "'m"}

// stripClitic removes surrounding apostrophes and a trailing contraction or
// possessive suffix, returning the stem ("doesn't" -> "does", "team's" -> "team").
// A detached clitic yields the empty string.
func stripClitic(token string) string {
	for _, suffix := range clitics {
		if token == suffix {
			return ""
		}
	}
	token = strings.Trim(token, "'")
	if stem, ok := irregularNegations[token]; ok {
		return stem
	}
	for _, suffix := range clitics {
		if stem, ok := strings.CutSuffix(token, suffix); ok && stem != "" {
			return strings.Trim(stem, "'")
		}
	}
	return token
}

func isAlpha(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) && !unicode.IsMark(r) {
			return false
		}
	}
	return true
}
