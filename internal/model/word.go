// internal/model/word.go
package model

// Word is a learnable vocabulary entry. Label is the identity and the only lookup key.
type Word struct {
	Label          string `json:"label"`
	ImageRef       string `json:"imageRef"`
	CorrectCount   int    `json:"correctCount"`
	IncorrectCount int    `json:"incorrectCount"`
}

// TotalAttempts returns how often the word has been asked.
func (w Word) TotalAttempts() int {
	return w.CorrectCount + w.IncorrectCount
}

// CatalogEntry is a (label, image) pair discovered by an asset catalog.
type CatalogEntry struct {
	Label    string `json:"label"`
	ImageRef string `json:"imageRef"`
}

// WordPool is the ordered, label-deduplicated set of words known for one learner.
// It is not safe for concurrent use; the owner serializes access.
type WordPool struct {
	words []*Word
	index map[string]int
}

// NewWordPool builds a pool from words in order. Later duplicates of a label are dropped.
func NewWordPool(words ...Word) *WordPool {
	p := &WordPool{
		words: make([]*Word, 0, len(words)),
		index: make(map[string]int, len(words)),
	}
	for _, w := range words {
		p.Append(w)
	}
	return p
}

func (p *WordPool) Len() int {
	return len(p.words)
}

// Words returns the pool's words in stored order. The pointers are live.
func (p *WordPool) Words() []*Word {
	return p.words
}

// Find looks a word up by its exact label.
func (p *WordPool) Find(label string) (*Word, bool) {
	i, ok := p.index[label]
	if !ok {
		return nil, false
	}
	return p.words[i], true
}

// Append adds a copy of w to the end of the pool. It reports false if the label already exists.
func (p *WordPool) Append(w Word) bool {
	if _, exists := p.index[w.Label]; exists {
		return false
	}
	p.index[w.Label] = len(p.words)
	word := w
	p.words = append(p.words, &word)
	return true
}

// Snapshot copies the pool into its serializable form.
func (p *WordPool) Snapshot() *PoolSnapshot {
	snap := &PoolSnapshot{Words: make([]Word, 0, len(p.words))}
	for _, w := range p.words {
		snap.Words = append(snap.Words, *w)
	}
	return snap
}
