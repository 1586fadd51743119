// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

package highlight

import "github.com/toeirei/keylight/internal/vocab"

// Classifier turns lines into spans using a fixed vocabulary. It holds no
// mutable state and is safe for concurrent use.
type Classifier struct {
	vocab *vocab.Vocabulary
}

// NewClassifier returns a classifier for v. A nil vocabulary selects
// vocab.Default.
func NewClassifier(v *vocab.Vocabulary) *Classifier {
	if v == nil {
		v = vocab.Default()
	}
	return &Classifier{vocab: v}
}

// Vocabulary returns the vocabulary the classifier matches against.
func (c *Classifier) Vocabulary() *vocab.Vocabulary { return c.vocab }

// Classify dispatches on kind. Unknown kinds yield no spans.
func (c *Classifier) Classify(kind Kind, line string) []Span {
	switch kind {
	case KindAuthorizedKeys:
		return c.AuthorizedKeys(line)
	case KindKnownHosts:
		return c.KnownHosts(line)
	}
	return nil
}
