package model

import (
	"encoding/json"
	"strings"
)

// TokenList is a deduplicated, order-preserving list of short strings
// normalized from delimited free text. It accepts either a JSON array or
// a single delimited string on the wire.
type TokenList []string

var tokenDelimiters = func(r rune) bool { return r == ',' || r == '\n' }

func splitTokenString(input string) []string {
	return strings.FieldsFunc(input, tokenDelimiters)
}

// NormalizeTokens canonicalizes free-form delimited text into a token
// list. Commas and newlines both delimit, consecutive delimiters collapse,
// fragments are trimmed and empties dropped. Deduplication is
// case-insensitive but keeps the casing of the first occurrence.
func NormalizeTokens(input string) TokenList {
	return NormalizeTokenList(splitTokenString(input))
}

// NormalizeTokenList applies the same normalization to a list: each
// element is itself delimiter-split, then all fragments flattened.
// Always returns a non-nil list. Idempotent.
func NormalizeTokenList(items []string) TokenList {
	seen := make(map[string]struct{})
	normalized := TokenList{}
	for _, item := range items {
		for _, fragment := range splitTokenString(item) {
			token := strings.TrimSpace(fragment)
			if token == "" {
				continue
			}
			key := strings.ToLower(token)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			normalized = append(normalized, token)
		}
	}
	return normalized
}

// AddToken appends a token and re-normalizes, so case-insensitive
// duplicates never accumulate.
func AddToken(list TokenList, token string) TokenList {
	return NormalizeTokenList(append(append([]string{}, list...), token))
}

// RemoveToken removes by case-insensitive match, leaving the casing of
// the remaining entries untouched.
func RemoveToken(list TokenList, token string) TokenList {
	target := strings.ToLower(strings.TrimSpace(token))
	kept := TokenList{}
	for _, item := range list {
		if strings.ToLower(strings.TrimSpace(item)) != target {
			kept = append(kept, item)
		}
	}
	return kept
}

func (t *TokenList) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*t = NormalizeTokens(asString)
		return nil
	}
	var asList []string
	if err := json.Unmarshal(data, &asList); err != nil {
		return err
	}
	*t = NormalizeTokenList(asList)
	return nil
}

func tokensFromRaw(raw json.RawMessage) TokenList {
	var list TokenList
	if err := json.Unmarshal(raw, &list); err != nil {
		return TokenList{}
	}
	return list
}
