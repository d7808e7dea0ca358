// Package lang provides language detection and tree-sitter parsing for
// the file types coderead can analyze.
package lang

import (
	"path/filepath"
	"strings"
)

// Language represents a supported programming language.
type Language string

const (
	LangPython     Language = "python"
	LangGo         Language = "go"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangRust       Language = "rust"
)

// FromExtension returns the Language for a file extension.
func FromExtension(ext string) (Language, bool) {
	switch strings.ToLower(ext) {
	case ".py", ".pyw":
		return LangPython, true
	case ".go":
		return LangGo, true
	case ".js", ".mjs", ".cjs", ".jsx":
		return LangJavaScript, true
	case ".ts", ".mts", ".cts":
		return LangTypeScript, true
	case ".rs":
		return LangRust, true
	default:
		return "", false
	}
}

// FromPath returns the Language for a file path.
func FromPath(path string) (Language, bool) {
	return FromExtension(filepath.Ext(path))
}

// ChromaName returns the lexer name understood by chroma for a language.
func (l Language) ChromaName() string {
	switch l {
	case LangTypeScript:
		return "typescript"
	case "":
		return "python"
	default:
		return string(l)
	}
}
