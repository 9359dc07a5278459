package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	anchorPattern = regexp.MustCompile(`(?s)<a\s[^>]*>.*?</a>`)
	emailPattern  = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	urlPattern    = regexp.MustCompile(`(?:https?://)?(?:www\.)?[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}(?:/[^\s]*)?`)
)

const linkStyle = `color: #0066cc; text-decoration: underline; font-weight: 500;`

// ConvertToHyperlinks wraps bare email addresses and URLs in anchor tags.
// Emails are swapped for placeholder tokens before the URL pass runs, so an
// address like support@wacs.com.ng is never also matched as a domain. The
// function is total and idempotent: malformed input passes through, and
// re-running it on its own output does not double-wrap anchors.
func ConvertToHyperlinks(text string) string {
	placeholders := make(map[string]string)
	counter := 0

	createPlaceholder := func(content string) string {
		placeholder := fmt.Sprintf("___PLACEHOLDER_%d___", counter)
		placeholders[placeholder] = content
		counter++
		return placeholder
	}

	// Pass 0: existing anchors are set aside untouched, which makes the
	// whole conversion idempotent.
	result := anchorPattern.ReplaceAllStringFunc(text, func(anchor string) string {
		return createPlaceholder(anchor)
	})

	// Pass 1: emails become mailto links behind placeholders.
	result = emailPattern.ReplaceAllStringFunc(result, func(email string) string {
		link := fmt.Sprintf(`<a href="mailto:%s" style="%s">%s</a>`, email, linkStyle, email)
		return createPlaceholder(link)
	})

	// Pass 2: URLs. Placeholder tokens from pass 1 must pass through
	// untouched or the email spans would be wrapped twice.
	result = urlPattern.ReplaceAllStringFunc(result, func(url string) string {
		if strings.Contains(url, "___PLACEHOLDER_") {
			return url
		}

		href := url
		if !strings.HasPrefix(url, "http") {
			switch {
			case strings.Contains(url, "www.trade.gov.ng"):
				// Legacy host: the www form redirects badly, link the
				// canonical https host instead.
				href = strings.Replace(url, "www.trade.gov.ng", "https://trade.gov.ng", 1)
			case strings.HasPrefix(url, "www."):
				href = "https://" + url[4:]
			default:
				href = "https://" + url
			}
		}

		link := fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer" style="%s">%s</a>`, href, linkStyle, url)
		return createPlaceholder(link)
	})

	// Pass 3: substitute the recorded markup back in.
	for placeholder, content := range placeholders {
		result = strings.Replace(result, placeholder, content, 1)
	}

	return result
}
