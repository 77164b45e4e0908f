package knowledge

import (
	"fmt"
	"strings"
)

// FormatForPrompt renders retrieved documents into a context block that is
// appended to the user's message before it is sent to the model. Returns the
// empty string when there are no documents, so callers can concatenate the
// result unconditionally.
func FormatForPrompt(documents []LegalDocument) string {
	if len(documents) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n다음은 관련 법률 정보입니다. 이를 참고하여 답변해주세요:\n")

	for i, doc := range documents {
		b.WriteString(fmt.Sprintf("\n[참고자료 %d]\n", i+1))
		b.WriteString(fmt.Sprintf("제목: %s\n", doc.Title))
		b.WriteString(fmt.Sprintf("출처: %s\n", doc.SourceURL))
		b.WriteString(fmt.Sprintf("내용: %s\n", doc.Content))
	}

	b.WriteString("\n답변 시 위 참고자료를 활용하되, 반드시 출처를 명시해주세요.\n")
	b.WriteString("각 참고자료는 다음 형식으로 인용할 수 있습니다:\n")
	for _, doc := range documents {
		b.WriteString(fmt.Sprintf("[%s](%s)\n", doc.Title, doc.SourceURL))
	}

	return b.String()
}
