package llm

import "strings"

// CleanMarkdown trims model output and unwraps it when the whole answer
// sits inside one ``` or ```markdown fence. Inner code blocks are kept.
func CleanMarkdown(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}

	firstNL := strings.IndexByte(s, '\n')
	if firstNL == -1 {
		return s
	}
	lang := strings.TrimSpace(s[3:firstNL])
	if lang != "" && lang != "markdown" && lang != "md" {
		return s
	}

	body := s[firstNL+1 : len(s)-3]
	// A fence opening inside the body means the trailing ``` closes that
	// block rather than the wrapper.
	if strings.Count(body, "```")%2 != 0 {
		return s
	}
	return strings.TrimSpace(body)
}
