package wordchart

// StopWordSet is a set of lowercase tokens excluded from charts.
// Membership is case-sensitive; tokens are lowercased by Clean upstream.
type StopWordSet map[string]struct{}

// NewStopWordSet returns a set holding words.
func NewStopWordSet(words ...string) StopWordSet {
	s := make(StopWordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is a stop word.
func (s StopWordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// With returns a copy of s extended with words. Words are normalized with
// Clean so that user-supplied entries match the token stream; entries that
// clean to more than one token add each token.
func (s StopWordSet) With(words ...string) StopWordSet {
	out := make(StopWordSet, len(s)+len(words))
	for w := range s {
		out[w] = struct{}{}
	}
	for _, w := range words {
		for _, tok := range CountWords(Clean(w)).Words() {
			out[tok] = struct{}{}
		}
	}
	return out
}

// Filter returns a new map without the entries whose word is in s.
// Retained counts are unchanged.
func (s StopWordSet) Filter(m *FrequencyMap) *FrequencyMap {
	return m.filter(func(word string) bool {
		return !s.Contains(word)
	})
}

// FilterStopWords removes DefaultStopWords from m.
func FilterStopWords(m *FrequencyMap) *FrequencyMap {
	return DefaultStopWords.Filter(m)
}

// DefaultStopWords is the fixed set of common English words that carry
// little information about an article's subject.
var DefaultStopWords = NewStopWordSet(
	"a", "about", "above", "after", "again", "against", "all", "also", "am",
	"an", "and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "could", "did",
	"do", "does", "doing", "down", "during", "each", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is",
	"it", "its", "itself", "just", "may", "me", "more", "most", "my",
	"myself", "no", "nor", "not", "now", "of", "off", "on", "once", "only",
	"or", "other", "our", "ours", "ourselves", "out", "over", "own", "s",
	"same", "she", "should", "so", "some", "such", "t", "than", "that",
	"the", "their", "theirs", "them", "themselves", "then", "there", "these",
	"they", "this", "those", "through", "to", "too", "under", "until", "up",
	"very", "was", "we", "were", "what", "when", "where", "which", "while",
	"who", "whom", "why", "will", "with", "would", "you", "your", "yours",
	"yourself", "yourselves",
)
