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

package local

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/language"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

// Environment reads the search path, locale, time zone and the process
// environment. Variables are returned unfiltered.
func (p *Provider) Environment(ctx context.Context) (*telemetry.EnvironmentInfo, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	info := &telemetry.EnvironmentInfo{
		PathEntries: filepath.SplitList(p.getenv("PATH")),
		Variables:   parseEnviron(p.environ()),
	}

	locale := p.locale()
	if locale == "" {
		info.Fail(telemetry.FieldLocale, errors.New(errors.ErrCodeSourceUnavailable, "no locale configured"))
	}
	info.Locale = locale
	info.LanguageTag = languageTag(locale)
	info.Encoding = localeEncoding(locale)

	now := time.Now()
	abbrev, offset := now.Zone()
	info.TimeZone = abbrev
	if name := time.Local.String(); name != "" && name != "Local" && name != abbrev {
		info.TimeZone = name + " (" + abbrev + ")"
	}
	info.UTCOffset = time.Duration(offset) * time.Second
	info.DST = now.IsDST()

	return info, nil
}

// locale returns the message locale from the environment, falling back to the
// platform default.
func (p *Provider) locale() string {
	if l := localeName(p.getenv); l != "" {
		return l
	}
	l, _ := p.systemLocale()
	return l
}

func localeName(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

// languageTag converts a POSIX or Windows locale name ("en_US.UTF-8",
// "de-DE") to a BCP 47 tag. Unknown and C locales yield "und".
func languageTag(locale string) string {
	name, _, _ := strings.Cut(locale, ".")
	name, _, _ = strings.Cut(name, "@")
	if name == "" || name == "C" || name == "POSIX" {
		return language.Und.String()
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und.String()
	}
	return tag.String()
}

// localeEncoding returns the MIME charset name of the locale codeset, UTF-8 when the
// locale names none.
func localeEncoding(locale string) string {
	_, codeset, found := strings.Cut(locale, ".")
	codeset, _, _ = strings.Cut(codeset, "@")
	if !found || codeset == "" {
		return "UTF-8"
	}
	if strings.EqualFold(strings.ReplaceAll(codeset, "-", ""), "utf8") {
		return "UTF-8"
	}
	enc, err := ianaindex.MIME.Encoding(codeset)
	if err != nil || enc == nil {
		return codeset
	}
	name, err := ianaindex.MIME.Name(enc)
	if err != nil {
		return codeset
	}
	return name
}

func parseEnviron(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		// Windows keeps per-drive working directories as "=C:" entries.
		if k == "" {
			continue
		}
		vars[k] = v
	}
	return vars
}
