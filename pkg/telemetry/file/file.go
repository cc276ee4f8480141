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

package file

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/NVIDIA/hostreport/pkg/errors"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser splits system files into lines or key-value pairs.
type Parser struct {
	fsys            fs.FS
	delimiter       string
	maxSize         int
	skipComments    bool
	kvDelimiter     string
	vDefault        string
	vTrimChars      string
	skipEmptyValues bool
}

// WithFS sets the filesystem that absolute paths are resolved against.
// Default is the host root.
func WithFS(fsys fs.FS) Option {
	return func(p *Parser) {
		p.fsys = fsys
	}
}

// WithDelimiter sets the entry delimiter. Default is newline.
func WithDelimiter(delim string) Option {
	return func(p *Parser) {
		p.delimiter = delim
	}
}

// WithMaxSize sets the largest file, in bytes, the parser accepts. Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments drops entries starting with '#'. Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithKVDelimiter sets the key-value delimiter used by GetMap. Default is "=".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// WithVDefault sets the value stored for keys without a delimiter.
func WithVDefault(vDefault string) Option {
	return func(p *Parser) {
		p.vDefault = vDefault
	}
}

// WithVTrimChars sets characters trimmed from both ends of GetMap values.
func WithVTrimChars(trimChars string) Option {
	return func(p *Parser) {
		p.vTrimChars = trimChars
	}
}

// WithSkipEmptyValues drops GetMap entries whose value ends up empty.
func WithSkipEmptyValues(skip bool) Option {
	return func(p *Parser) {
		p.skipEmptyValues = skip
	}
}

// NewParser creates a parser with newline entries, "=" pairs, comment
// skipping and a 1MB size limit, then applies opts.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		fsys:         os.DirFS("/"),
		delimiter:    "\n",
		maxSize:      1 << 20,
		skipComments: true,
		kvDelimiter:  "=",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FS returns the filesystem the parser reads from.
func (p *Parser) FS() fs.FS {
	return p.fsys
}

// GetMap parses the file at path into key-value pairs. Keys without a
// delimiter get the default value.
func (p *Parser) GetMap(path string) (map[string]string, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(lines))
	for _, line := range lines {
		key, value, found := strings.Cut(line, p.kvDelimiter)
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		if !found {
			value = p.vDefault
		} else {
			value = strings.TrimSpace(value)
			if p.vTrimChars != "" {
				value = strings.Trim(value, p.vTrimChars)
			}
		}

		if p.skipEmptyValues && value == "" {
			slog.Debug("skipping entry with empty value", "path", path, "key", key)
			continue
		}
		result[key] = value
	}

	return result, nil
}

// GetLines returns the non-empty, trimmed entries of the file at path.
func (p *Parser) GetLines(path string) ([]string, error) {
	b, err := p.read(path)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(string(b), p.delimiter)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}
		if p.skipComments && strings.HasPrefix(clean, "#") {
			continue
		}
		result = append(result, clean)
	}

	return result, nil
}

// GetValue returns the first entry of the file at path. Single-value pseudo
// files such as /proc/sys tunables are read this way.
func (p *Parser) GetValue(path string) (string, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", errors.New(errors.ErrCodeSourceUnavailable, "file "+path+" is empty")
	}
	return lines[0], nil
}

// GetBytes returns the raw content of the file at path without UTF-8
// validation. EFI variables and other binary attributes are read this way.
func (p *Parser) GetBytes(path string) ([]byte, error) {
	name, err := fsPath(path)
	if err != nil {
		return nil, err
	}
	b, err := fs.ReadFile(p.fsys, name)
	if err != nil {
		return nil, readError(path, err)
	}
	return b, nil
}

// Glob returns the absolute paths matching pattern, sorted.
func (p *Parser) Glob(pattern string) ([]string, error) {
	matches, err := fs.Glob(p.fsys, strings.TrimPrefix(pattern, "/"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid glob pattern "+pattern, err)
	}
	for i, m := range matches {
		matches[i] = "/" + m
	}
	return matches, nil
}

// ReadDir returns the entry names of the directory at path, sorted.
func (p *Parser) ReadDir(path string) ([]string, error) {
	name, err := fsPath(path)
	if err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(p.fsys, name)
	if err != nil {
		return nil, readError(path, err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

// Exists reports whether path exists in the parser's filesystem.
func (p *Parser) Exists(path string) bool {
	name, err := fsPath(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(p.fsys, name)
	return err == nil
}

func (p *Parser) read(path string) ([]byte, error) {
	name, err := fsPath(path)
	if err != nil {
		return nil, err
	}

	b, err := fs.ReadFile(p.fsys, name)
	if err != nil {
		return nil, readError(path, err)
	}
	if len(b) > p.maxSize {
		return nil, errors.NewWithContext(errors.ErrCodeSourceUnavailable, "file exceeds maximum size",
			map[string]any{"path": path, "maxSize": p.maxSize})
	}
	if !utf8.Valid(b) {
		return nil, errors.NewWithContext(errors.ErrCodeSourceUnavailable, "file content is not valid UTF-8",
			map[string]any{"path": path})
	}
	return b, nil
}

func fsPath(path string) (string, error) {
	name := strings.TrimPrefix(path, "/")
	if path == "" || !fs.ValidPath(name) {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest, "invalid file path",
			map[string]any{"path": path})
	}
	return name, nil
}

func readError(path string, err error) error {
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return errors.Wrap(errors.ErrCodeNotSupported, path+" does not exist", err)
	case stderrors.Is(err, fs.ErrPermission):
		return errors.Wrap(errors.ErrCodePermissionDenied, path+" is not readable", err)
	default:
		return errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to read "+path, err)
	}
}
