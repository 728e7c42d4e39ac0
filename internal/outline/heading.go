package outline

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	headerPattern  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	closingPattern = regexp.MustCompile(`\s+#+$`)
	fencePattern   = regexp.MustCompile("^(`{3,}|~{3,})")
)

// Engine selects how headings are extracted from a document.
type Engine string

const (
	// EngineLine scans ATX heading lines with a regular expression.
	EngineLine Engine = "line"
	// EngineGoldmark parses the document with goldmark and walks its AST.
	EngineGoldmark Engine = "goldmark"
)

// ParseEngine validates an engine name.
func ParseEngine(name string) (Engine, error) {
	switch e := Engine(strings.ToLower(strings.TrimSpace(name))); e {
	case "", EngineLine:
		return EngineLine, nil
	case EngineGoldmark:
		return e, nil
	default:
		return "", fmt.Errorf("unknown engine %q (valid: line, goldmark)", name)
	}
}

// Extract runs the engine over content, dropping headings at or above level.
func (e Engine) Extract(content []byte, level int) []Heading {
	if e == EngineGoldmark {
		return ExtractHeadingsGoldmark(content, level)
	}
	return ExtractHeadings(string(content), level)
}

// ExtractHeadings returns the ATX headings of content in document order.
// Headings whose level is <= level are dropped, as is anything inside a
// fenced code block. Lines indented by four or more columns are indented
// code and never open, close or name anything.
func ExtractHeadings(content string, level int) []Heading {
	var headings []Heading
	fence := ""

	content = strings.TrimPrefix(content, "\ufeff")
	for _, line := range strings.Split(content, "\n") {
		trimmed, ok := unindent(line)
		if !ok {
			continue
		}

		if fence != "" {
			if isClosingFence(trimmed, fence) {
				fence = ""
			}
			continue
		}
		if open := fencePattern.FindString(trimmed); open != "" {
			fence = open
			continue
		}

		matches := headerPattern.FindStringSubmatch(trimmed)
		if matches == nil {
			continue
		}
		n := len(matches[1])
		if n <= level {
			continue
		}
		if title := headingText(matches[2]); title != "" {
			headings = append(headings, Heading{Level: n, Text: title})
		}
	}

	return headings
}

// unindent trims line, reporting false when its leading indentation reaches
// four columns. A tab always does.
func unindent(line string) (string, bool) {
	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	if indent > 3 || strings.Contains(line[:indent], "\t") {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// headingText strips an optional closing sequence of # characters.
func headingText(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Trim(raw, "#") == "" {
		return ""
	}
	return strings.TrimSpace(closingPattern.ReplaceAllString(raw, ""))
}

// isClosingFence reports whether line closes a block opened with fence: the
// same character, at least as many of them, and nothing else.
func isClosingFence(line, fence string) bool {
	return len(line) >= len(fence) && strings.Trim(line, fence[:1]) == ""
}
