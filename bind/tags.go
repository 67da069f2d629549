package bind

import "strings"

// ---------------------------------------------------------------------------
// Field tag grammar
// ---------------------------------------------------------------------------

// Tags is the parsed key/value form of one field's tag string.
//
// Recognized keys: view, desc, inactive, min, max, step, format, width.
// Unrecognized keys are kept but never consulted by dispatch.
type Tags map[string]string

// ParseTags parses a raw tag string of space-separated key:"value" tokens,
// the same grammar as Go struct tags. Malformed tokens are skipped with a
// logged warning; parsing never fails. Duplicate keys: last one wins.
func ParseTags(raw string) Tags {
	tags := Tags{}
	s := raw
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			return tags
		}
		colon := strings.IndexByte(s, ':')
		space := strings.IndexByte(s, ' ')
		if colon <= 0 || (space >= 0 && space < colon) {
			// token without a key:"value" shape
			tok := s
			if space >= 0 {
				tok = s[:space]
			}
			logger.Warn("skipping malformed tag token", "token", tok)
			if space < 0 {
				return tags
			}
			s = s[space+1:]
			continue
		}
		key := s[:colon]
		rest := s[colon+1:]
		if !strings.HasPrefix(rest, `"`) {
			logger.Warn("tag value is not quoted", "key", key)
			if space < 0 {
				return tags
			}
			s = s[space+1:]
			continue
		}
		end := strings.IndexByte(rest[1:], '"')
		if end < 0 {
			logger.Warn("unterminated tag value", "key", key)
			return tags
		}
		tags[key] = rest[1 : 1+end]
		s = rest[end+2:]
	}
}

// Value returns the value for key, empty when absent.
func (t Tags) Value(key string) string {
	return t[key]
}

// Has reports whether key is present with exactly the given value.
func (t Tags) Has(key, value string) bool {
	v, ok := t[key]
	return ok && v == value
}
