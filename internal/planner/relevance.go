package planner

import (
	"regexp"
	"strings"
)

const (
	maxKeywords      = 10
	maxRelevantFiles = 20
)

var tokenSplit = regexp.MustCompile(`[\s,.\-]+`)

// stopWords are tokens too common to identify files: articles, auxiliary
// verbs, pronouns, and similar glue words.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"into": true, "about": true, "that": true, "this": true, "these": true,
	"those": true, "are": true, "was": true, "were": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"can": true, "may": true, "might": true, "must": true, "you": true,
	"your": true, "they": true, "them": true, "their": true, "she": true,
	"her": true, "him": true, "his": true, "its": true, "our": true,
	"out": true, "all": true, "any": true, "some": true, "each": true,
	"what": true, "which": true, "who": true, "how": true, "when": true,
	"where": true, "why": true, "please": true, "then": true, "than": true,
	"there": true, "here": true, "also": true, "just": true, "not": true,
}

// ExtractKeywords pulls at most ten search tokens from a change request:
// lowercase, split on whitespace/comma/period/hyphen runs, dropping tokens
// of length <= 2 and stop words, original order preserved. False positives
// are acceptable; nondeterminism is not.
func ExtractKeywords(input string) []string {
	tokens := tokenSplit.Split(strings.ToLower(input), -1)

	var keywords []string
	for _, tok := range tokens {
		if len(tok) <= 2 || stopWords[tok] {
			continue
		}
		keywords = append(keywords, tok)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// FilterRelevantFiles shortlists the files worth mentioning in the prompt:
// every referenced file first, in given order, then any file whose path
// contains a keyword (case-insensitive), capped at twenty entries total,
// duplicate-free.
func FilterRelevantFiles(userInput string, referencedFiles, allFiles []string) []string {
	seen := make(map[string]bool)
	var relevant []string

	for _, ref := range referencedFiles {
		if seen[ref] {
			continue
		}
		seen[ref] = true
		relevant = append(relevant, ref)
	}

	keywords := ExtractKeywords(userInput)
	for _, file := range allFiles {
		if seen[file] {
			continue
		}
		lower := strings.ToLower(file)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				seen[file] = true
				relevant = append(relevant, file)
				break
			}
		}
	}

	if len(relevant) > maxRelevantFiles {
		relevant = relevant[:maxRelevantFiles]
	}
	return relevant
}
