package swiftcss

import (
	"fmt"
	"strings"
)

// dynamicProperties maps a dynamic-value prefix to the CSS property it sets.
var dynamicProperties = map[string]string{
	"color":                 "color",
	"bg":                    "background",
	"bg-color":              "background-color",
	"bg-img":                "background-image",
	"brd-color":             "border-color",
	"brd-top-color":         "border-top-color",
	"brd-right-color":       "border-right-color",
	"brd-bottom-color":      "border-bottom-color",
	"brd-left-color":        "border-left-color",
	"outline-color":         "outline-color",
	"fill":                  "fill",
	"stroke":                "stroke",
	"caret-color":           "caret-color",
	"accent-color":          "accent-color",
	"text-decoration-color": "text-decoration-color",
	"column-rule-color":     "column-rule-color",
	"list-style-img":        "list-style-image",
	"mask-img":              "mask-image",
	"cursor":                "cursor",
}

// DynamicProperty returns the CSS property for a dynamic prefix.
func DynamicProperty(prefix string) (string, bool) {
	p, ok := dynamicProperties[prefix]
	return p, ok
}

// segment is one "-[payload]" occurrence inside a token.
type segment struct {
	prefix  string
	payload string
}

// dynamicSegments splits a token into its bracketed segments, left to right.
// The prefix of each segment is the text after the previous segment's "]".
func dynamicSegments(token string) []segment {
	var segs []segment
	rest := token
	for {
		open := strings.Index(rest, "-[")
		if open < 0 {
			return segs
		}
		end := strings.Index(rest[open+2:], "]")
		if end < 0 {
			return segs
		}
		segs = append(segs, segment{
			prefix:  rest[:open],
			payload: rest[open+2 : open+2+end],
		})
		rest = rest[open+2+end+1:]
	}
}

// HasDynamicSegment reports whether the token carries a "-[...]" literal.
func HasDynamicSegment(token string) bool {
	return len(dynamicSegments(token)) > 0
}

// DecodeDynamic resolves every bracketed segment of a token into a declaration.
// Segments with an unknown prefix or an unsupported payload are skipped.
func DecodeDynamic(token string) []string {
	var decls []string
	for _, seg := range dynamicSegments(token) {
		property, ok := dynamicProperties[seg.prefix]
		if !ok {
			continue
		}
		value, ok := decodePayload(seg.payload)
		if !ok {
			continue
		}
		decls = append(decls, fmt.Sprintf("%s: %s;", property, value))
	}
	return decls
}

// decodePayload accepts url(...) and 3 or 6 digit hex colors.
func decodePayload(payload string) (string, bool) {
	switch {
	case strings.HasPrefix(payload, "url(") && strings.HasSuffix(payload, ")"):
		return payload, true
	case isHexColor(payload):
		return payload, true
	}
	return "", false
}

func isHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	for _, c := range digits {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
