package core

import (
	"regexp"
	"strings"
	"unicode"
)

// Ordered most-explicit first; the bare-token pattern is the fallback and
// gets stricter checks below.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`my name is\s+(\w+)`),
	regexp.MustCompile(`i'm\s+(\w+)`),
	regexp.MustCompile(`i am\s+(\w+)`),
	regexp.MustCompile(`call me\s+(\w+)`),
	regexp.MustCompile(`it's\s+(\w+)`),
	regexp.MustCompile(`this is\s+(\w+)`),
	regexp.MustCompile(`name:\s*(\w+)`),
	regexp.MustCompile(`^([a-zA-Z]{2,})$`),
}

var bareTokenPattern = namePatterns[len(namePatterns)-1]

// Words that look like a bare name but never are: greetings, yes/no words,
// common verbs and the scheme's own jargon.
var nonNames = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "good": {}, "morning": {}, "afternoon": {}, "evening": {},
	"yes": {}, "no": {}, "ok": {}, "okay": {}, "sure": {}, "please": {}, "help": {}, "thanks": {}, "thank": {},
	"what": {}, "how": {}, "when": {}, "where": {}, "why": {}, "who": {}, "which": {},
	"wacs": {}, "ippis": {}, "loan": {}, "deduction": {}, "payment": {}, "salary": {}, "support": {},
	"certificate": {}, "problem": {}, "issue": {}, "error": {}, "refund": {}, "balance": {},
	"can": {}, "will": {}, "should": {}, "could": {}, "would": {}, "need": {}, "want": {}, "like": {},
	"get": {}, "have": {}, "make": {}, "take": {}, "give": {}, "find": {}, "know": {}, "think": {},
	"see": {}, "look": {}, "check": {}, "try": {}, "use": {}, "work": {}, "go": {}, "come": {},
}

// extractName infers a personal name from a free-text message. Explicit
// introductions ("my name is daniel") win over the bare-token fallback,
// which additionally requires the original message to be a single
// capitalized alphabetic word — that is what separates "Daniel" from "Hi".
func extractName(message string) (string, bool) {
	lowered := strings.ToLower(strings.TrimSpace(message))

	for _, pattern := range namePatterns {
		match := pattern.FindStringSubmatch(lowered)
		if match == nil {
			continue
		}
		candidate := strings.TrimSpace(match[1])

		if pattern == bareTokenPattern {
			original := strings.TrimSpace(message)
			if len(candidate) >= 2 &&
				!isNonName(candidate) &&
				startsUpper(original) &&
				isAlpha(original) {
				return capitalize(candidate), true
			}
		} else if len(candidate) >= 2 && !isNonName(candidate) {
			return capitalize(candidate), true
		}
	}

	return "", false
}

func isNonName(word string) bool {
	_, excluded := nonNames[strings.ToLower(word)]
	return excluded
}

func startsUpper(s string) bool {
	if s == "" {
		return false
	}
	return unicode.IsUpper(rune(s[0]))
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
