package service

import (
	"context"
	"errors"

	"lexichat-backend/knowledge"
	"lexichat-backend/llm"
	"lexichat-backend/models"
	"lexichat-backend/repository"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("chat session not found")

// Number of corpus documents retrieved per chat turn, and how much history
// is replayed to the model
const (
	retrievalLimit = 3
	historyLimit   = 10
)

// chatSystemPrompt defines the assistant persona for the chat feature
const chatSystemPrompt = `당신은 '렉시챗'이라는 이름의 한국 생활법률 전문 AI 어시스턴트입니다.

역할:
- 사회초년생, 대학생, 긱 워커를 위한 친근하고 이해하기 쉬운 법률 상담
- 근로계약, 임대차계약, 프리랜서 용역계약 등 생활 속 법률 문제 해결
- 어려운 법률 용어를 쉬운 말로 풀어서 설명

응답 원칙:
1. 존댓말을 사용하되, 친근하고 따뜻한 톤 유지
2. 법률 용어는 반드시 쉬운 말로 바꿔서 설명
3. 구체적인 사례나 예시를 들어 설명
4. 가능한 경우 관련 법률 조항이나 근거 제시
5. 답변이 불확실한 경우 전문가 상담 권장
6. 각 답변 마지막에 관련 법적 근거나 참고자료 출처 명시

주요 상담 분야:
- 근로기준법 (최저임금, 근로시간, 해고, 4대보험)
- 주택임대차보호법 (보증금, 월세, 계약, 수선의무)
- 프리랜서 계약 (대금지급, 저작권, 계약해지)
- 기타 생활법률 (소비자보호, 채권/채무)

응답 형식:
1. 질문 이해 및 공감
2. 핵심 답변 (쉬운 용어로)
3. 구체적 조언 또는 주의사항
4. 법적 근거 (있는 경우)
5. 추가 도움이 필요한 경우 안내`

// ChatService answers legal questions with the model, augmenting each turn
// with documents retrieved from the knowledge corpus
type ChatService struct {
	chatRepo *repository.ChatRepository
	corpus   *knowledge.Corpus
	llm      Completer
}

// ChatServiceOption is a functional option for ChatService
type ChatServiceOption func(*ChatService)

// ChatWithRepository sets the chat repository
func ChatWithRepository(repo *repository.ChatRepository) ChatServiceOption {
	return func(s *ChatService) {
		s.chatRepo = repo
	}
}

// ChatWithCorpus sets the knowledge corpus
func ChatWithCorpus(corpus *knowledge.Corpus) ChatServiceOption {
	return func(s *ChatService) {
		s.corpus = corpus
	}
}

// ChatWithCompleter sets the LLM collaborator
func ChatWithCompleter(completer Completer) ChatServiceOption {
	return func(s *ChatService) {
		s.llm = completer
	}
}

// NewChatService creates a new chat service
func NewChatService(opts ...ChatServiceOption) *ChatService {
	s := &ChatService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChatRequest represents one incoming chat message
type ChatRequest struct {
	SessionID uuid.UUID
	Message   string
	Category  knowledge.Category // optional corpus filter
}

// ChatResult is the assistant's reply with its attributed sources
type ChatResult struct {
	SessionID uuid.UUID            `json:"session_id"`
	Content   string               `json:"content"`
	Sources   []knowledge.Citation `json:"sources,omitempty"`
}

// Respond produces the assistant reply for a message given prior
// conversation history (oldest first). The new message is augmented with
// retrieved corpus context before the model call, and citations are
// extracted from the response with the retrieved documents as seeds.
func (s *ChatService) Respond(ctx context.Context, history []llm.Message, message string, category knowledge.Category) (string, []knowledge.Citation, error) {
	if s.corpus == nil {
		return "", nil, errors.New("knowledge corpus not set")
	}
	if s.llm == nil {
		return "", nil, errors.New("llm client not set")
	}

	docs := s.corpus.Search(message, category, retrievalLimit)
	augmented := message + knowledge.FormatForPrompt(docs)

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "user", Content: augmented})

	response, err := s.llm.Complete(ctx, chatSystemPrompt, messages, 0.7, 2048)
	if err != nil {
		return "", nil, err
	}

	cleaned, sources := knowledge.ExtractCitations(response, docs)
	return cleaned, sources, nil
}

// Chat handles one full chat turn: loads the session history, produces the
// reply and persists both sides of the exchange. A zero SessionID starts a
// new session titled with the first message.
func (s *ChatService) Chat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	if s.chatRepo == nil {
		return nil, errors.New("chat repository not set")
	}

	sessionID := req.SessionID
	var history []llm.Message

	if sessionID == uuid.Nil {
		session := &models.ChatSession{Title: sessionTitle(req.Message)}
		if err := s.chatRepo.CreateSession(ctx, session); err != nil {
			return nil, err
		}
		sessionID = session.ID
	} else {
		if _, err := s.chatRepo.GetSession(ctx, sessionID); err != nil {
			return nil, ErrSessionNotFound
		}

		stored, err := s.chatRepo.ListMessages(ctx, sessionID, historyLimit)
		if err != nil {
			return nil, err
		}
		for _, msg := range stored {
			history = append(history, llm.Message{Role: string(msg.Role), Content: msg.Content})
		}
	}

	content, sources, err := s.Respond(ctx, history, req.Message, req.Category)
	if err != nil {
		return nil, err
	}

	userMsg := &models.ChatMessage{SessionID: sessionID, Role: models.RoleUser, Content: req.Message}
	if err := s.chatRepo.CreateMessage(ctx, userMsg); err != nil {
		return nil, err
	}
	assistantMsg := &models.ChatMessage{SessionID: sessionID, Role: models.RoleAssistant, Content: content}
	if err := s.chatRepo.CreateMessage(ctx, assistantMsg); err != nil {
		return nil, err
	}

	return &ChatResult{
		SessionID: sessionID,
		Content:   content,
		Sources:   sources,
	}, nil
}

// sessionTitle derives a short session title from the first message
func sessionTitle(message string) string {
	runes := []rune(message)
	if len(runes) > 30 {
		return string(runes[:30])
	}
	return message
}
