package core

import (
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

// MatchPattern reports whether a slash separated relative path matches an
// fnmatch style pattern. Unlike path.Match, '*' also crosses directory
// boundaries, so "*.hpp" matches "include/a/b.hpp" and "src/*" matches
// everything below src.
func MatchPattern(pattern string, relPath string) bool {
	re := compilePattern(filepath.ToSlash(pattern))
	return re.MatchString(filepath.ToSlash(relPath))
}

// MatchAny reports whether relPath matches at least one pattern.
func MatchAny(patterns []string, relPath string) bool {
	for _, pattern := range patterns {
		if MatchPattern(pattern, relPath) {
			return true
		}
	}
	return false
}

func compilePattern(pattern string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok := patternCache[pattern]; ok {
		return re
	}
	re := regexp.MustCompile(translatePattern(pattern))
	patternCache[pattern] = re
	return re
}

func translatePattern(pattern string) string {
	var builder strings.Builder
	builder.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '*':
			builder.WriteString(".*")
		case '?':
			builder.WriteString(".")
		case '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end == -1 {
				builder.WriteString(`\[`)
				continue
			}
			class := pattern[i+1 : i+1+end]
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}
			builder.WriteString("[" + strings.ReplaceAll(class, `\`, `\\`) + "]")
			i += end + 1
		default:
			builder.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	builder.WriteString("$")
	return builder.String()
}
