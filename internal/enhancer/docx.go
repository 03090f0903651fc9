package enhancer

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFontName = "Times New Roman"
	docxFontSize = 12
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// WriteSummaryDocx renders the Gemini summary markdown into a styled docx
// file. Best effort like the summary itself; callers log and move on when it
// fails.
func WriteSummaryDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), title, true, 16)

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRun(doc.AddParagraph(""), "• "+m[1], false, docxFontSize)
			continue
		}

		addRun(doc.AddParagraph(""), trimmed, false, docxFontSize)
	}

	return doc.SaveTo(outputPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	default:
		return docxFontSize
	}
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = stripInlineMarkdown(text)
	run := p.AddText(text).Font(docxFontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func stripInlineMarkdown(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
