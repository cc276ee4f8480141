// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package render

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/NVIDIA/hostreport/pkg/report"
)

const (
	categoryMarker = "■ "
	indentUnit     = "  "
	itemMarker     = "- "
)

// styler decorates rendered text. The zero value leaves text unchanged.
type styler struct {
	header      func(string) string
	unavailable func(string) string
}

func (s styler) styleHeader(v string) string {
	if s.header == nil {
		return v
	}
	return s.header(v)
}

func (s styler) styleUnavailable(v string) string {
	if s.unavailable == nil {
		return v
	}
	return s.unavailable(v)
}

// Render returns the plain-text form of rep. Identical reports produce
// identical output. A nil report renders as the empty string.
func Render(rep *report.Report) string {
	return styler{}.render(rep)
}

func (s styler) render(rep *report.Report) string {
	if rep == nil {
		return ""
	}

	var b strings.Builder

	meta := rep.GetMetadata()
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(sanitize(k) + ": " + sanitize(meta[k]) + "\n")
	}

	for _, c := range rep.Categories {
		if c == nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.styleHeader(categoryMarker+sanitize(c.Name)) + "\n")
		for _, k := range c.Keys() {
			s.field(&b, "", k, c.Fields[k])
		}
	}

	return b.String()
}

// field writes "name: value" at indent, or "name:" followed by an indented
// block for values that do not fit on one line.
func (s styler) field(b *strings.Builder, indent, name string, v report.Value) {
	if inline(v) {
		b.WriteString(indent + sanitize(name) + ": " + s.inlineValue(v) + "\n")
		return
	}
	b.WriteString(indent + sanitize(name) + ":\n")
	s.block(b, indent+indentUnit, v)
}

// block writes the lines of a map or list value at indent.
func (s styler) block(b *strings.Builder, indent string, v report.Value) {
	switch val := v.(type) {
	case report.Map:
		for _, k := range val.Keys() {
			s.field(b, indent, k, val[k])
		}
	case report.List:
		for _, item := range val {
			if inline(item) {
				b.WriteString(indent + itemMarker + s.inlineValue(item) + "\n")
				continue
			}
			// Render the item one level deeper, then put the marker in
			// place of the first line's indentation.
			var nested strings.Builder
			s.block(&nested, indent+indentUnit, item)
			lines := nested.String()
			b.WriteString(indent + itemMarker + strings.TrimPrefix(lines, indent+indentUnit))
		}
	}
}

// inline reports whether v prints on a single line.
func inline(v report.Value) bool {
	switch val := v.(type) {
	case report.Map:
		return len(val) == 0
	case report.List:
		for _, item := range val {
			switch item.(type) {
			case report.Map, report.List:
				return false
			}
		}
		return true
	default:
		return true
	}
}

func (s styler) inlineValue(v report.Value) string {
	switch val := v.(type) {
	case nil:
		return s.styleUnavailable(report.Unavailable{}.String())
	case report.Unavailable:
		return s.styleUnavailable(sanitize(val.String()))
	case report.Map:
		return "{}"
	case report.List:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = s.inlineValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return sanitize(scalar(v))
	}
}

// scalar formats floats in their shortest decimal form and everything else
// with its default string form.
func scalar(v report.Value) string {
	switch n := v.Any().(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case string:
		return n
	default:
		return v.String()
	}
}

// sanitize replaces invalid UTF-8 sequences with U+FFFD.
func sanitize(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	out, _, err := transform.String(unicode.UTF8.NewDecoder(), s)
	if err != nil {
		return strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	return out
}
