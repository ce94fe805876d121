package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// parseAllowedAids decodes the bracket-less scalar list of permitted aids and
// drops repeats, keeping the first occurrence of each value.
func parseAllowedAids(raw string) ([]string, error) {
	body := strings.TrimSpace(raw)
	if strings.HasPrefix(body, "{") && strings.HasSuffix(body, "}") {
		body = strings.TrimSpace(body[1 : len(body)-1])
	}
	if body == "" {
		return []string{}, nil
	}

	values, err := decodeJSONScalars(body)
	if err != nil {
		// the backend also emits single-quoted and bare values, which JSON rejects
		values, err = scanScalars(body)
		if err != nil {
			return nil, err
		}
	}

	return dedupe(values), nil
}

func decodeJSONScalars(body string) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader("[" + body + "]"))
	dec.UseNumber()

	var items []interface{}
	if err := dec.Decode(&items); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after aids list")
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case json.Number:
			out = append(out, v.String())
		case bool:
			out = append(out, fmt.Sprint(v))
		default:
			return nil, fmt.Errorf("aid #%d is not a scalar value", i)
		}
	}
	return out, nil
}

// scanScalars splits a comma list of 'quoted', "quoted" or bare values.
func scanScalars(body string) ([]string, error) {
	s := []byte(body)
	out := []string{}
	i := 0

	for {
		i = skipSpaces(s, i)
		if i >= len(s) {
			return nil, fmt.Errorf("empty value at offset %d in aids %q", i, body)
		}

		switch q := s[i]; q {
		case '\'', '"':
			var buf bytes.Buffer
			j := i + 1
			for ; j < len(s) && s[j] != q; j++ {
				if s[j] == '\\' && j+1 < len(s) {
					j++
				}
				buf.WriteByte(s[j])
			}
			if j >= len(s) {
				return nil, fmt.Errorf("unterminated quote at offset %d in aids %q", i, body)
			}
			out = append(out, buf.String())
			i = j + 1
		default:
			j := i
			for j < len(s) && s[j] != ',' {
				j++
			}
			tok := strings.TrimSpace(string(s[i:j]))
			if tok == "" || strings.ContainsAny(tok, "'\"[]{}") {
				return nil, fmt.Errorf("invalid value %q in aids %q", tok, body)
			}
			out = append(out, tok)
			i = j
		}

		i = skipSpaces(s, i)
		if i >= len(s) {
			return out, nil
		}
		if s[i] != ',' {
			return nil, fmt.Errorf("unexpected %q at offset %d in aids %q", s[i], i, body)
		}
		i++
	}
}

func skipSpaces(s []byte, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
