package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nexum-inventory-be/internal/constant"
	"nexum-inventory-be/internal/dto"
	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/repository/specification"
	"nexum-inventory-be/internal/repository/unitofwork"
	"nexum-inventory-be/pkg/planning"

	"github.com/google/uuid"
)

type IChatbotService interface {
	CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID) ([]dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
}

type chatbotService struct {
	uowFactory     unitofwork.RepositoryFactory
	plannerService IPlannerService
	criticalCap    int
}

func NewChatbotService(uowFactory unitofwork.RepositoryFactory, plannerService IPlannerService, criticalCap int) IChatbotService {
	if criticalCap <= 0 {
		criticalCap = planning.DefaultCriticalCap
	}
	return &chatbotService{
		uowFactory:     uowFactory,
		plannerService: plannerService,
		criticalCap:    criticalCap,
	}
}

func (s *chatbotService) CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     "New conversation",
		CreatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	return &dto.CreateSessionResponse{Id: session.Id}, nil
}

func (s *chatbotService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]dto.GetAllSessionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.GetAllSessionsResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, dto.GetAllSessionsResponse{
			Id:        session.Id,
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		})
	}
	return responses, nil
}

func (s *chatbotService) GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]dto.GetChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.ownedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{SessionID: session.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.GetChatHistoryResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, dto.GetChatHistoryResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Chat:      msg.Chat,
			CreatedAt: msg.CreatedAt,
		})
	}
	return responses, nil
}

// SendChat routes the message by intent. The assistant is deliberately
// rule-based: the only reasoning call in the system is the plan request
// itself, everything else is deterministic.
func (s *chatbotService) SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.ownedSession(ctx, uow, userId, req.ChatSessionId)
	if err != nil {
		return nil, err
	}

	sent := &entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          req.Chat,
		Role:          "user",
		ChatSessionId: session.Id,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, sent); err != nil {
		return nil, err
	}

	intent := detectIntent(req.Chat)
	replyText, err := s.buildReply(ctx, uow, userId, intent)
	if err != nil {
		return nil, err
	}

	reply := &entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          replyText,
		Role:          "assistant",
		ChatSessionId: session.Id,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, reply); err != nil {
		return nil, err
	}

	// First user message names the session.
	if session.Title == "New conversation" {
		session.Title = truncateTitle(req.Chat)
		_ = uow.ChatSessionRepository().Update(ctx, session)
	}

	return &dto.SendChatResponse{
		ChatSessionId: session.Id,
		Sent:          toChatResponse(sent),
		Reply:         toChatResponse(reply),
		Intent:        intent,
	}, nil
}

func (s *chatbotService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.ownedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteBySession(ctx, session.Id); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, session.Id); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *chatbotService) ownedSession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.New("chat session not found")
	}
	return session, nil
}

func detectIntent(text string) string {
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "purchase plan") || strings.Contains(lowered, "generate plan") || strings.Contains(lowered, "plano de compra"):
		return constant.ChatIntentPlan
	case strings.Contains(lowered, "critical") || strings.Contains(lowered, "critico") || strings.Contains(lowered, "crítico"):
		return constant.ChatIntentCritical
	default:
		return constant.ChatIntentGuidance
	}
}

func (s *chatbotService) buildReply(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, intent string) (string, error) {
	switch intent {
	case constant.ChatIntentPlan:
		plan, err := s.plannerService.GeneratePlan(ctx, userId)
		if err != nil {
			return "", err
		}
		return formatPlanReply(plan), nil
	case constant.ChatIntentCritical:
		inventory, err := uow.ProductRepository().FindAll(ctx)
		if err != nil {
			return "", err
		}
		items := planning.SelectCriticalItems(toInventoryRecords(inventory), s.criticalCap)
		return formatCriticalReply(items), nil
	default:
		return constant.ChatGuidanceMessage, nil
	}
}

func formatPlanReply(plan *dto.GeneratePlanResponse) string {
	switch plan.Outcome {
	case string(entity.PlanOutcomeEmpty):
		return plan.Message
	case string(entity.PlanOutcomeError):
		return fmt.Sprintf("The purchase planner could not complete: %s", plan.Message)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Purchase plan generated with %d action(s):\n", len(plan.Lines)))
	for _, line := range plan.Lines {
		b.WriteString(fmt.Sprintf("- %s: %s (qty %.0f) - %s\n",
			line.Code, line.Action, line.Quantity, line.Justification))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatCriticalReply(items []planning.CriticalItem) string {
	if len(items) == 0 {
		return constant.ChatNoCriticalItemsMessage
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d item(s) need replenishment:\n", len(items)))
	for _, item := range items {
		b.WriteString(fmt.Sprintf("- %s: on hand %.0f, monthly demand %.1f, order %.0f\n",
			item.Code, item.OnHand, item.Cmm, item.OrderQuantity))
	}
	return strings.TrimRight(b.String(), "\n")
}

func toChatResponse(msg *entity.ChatMessage) *dto.SendChatResponseChat {
	return &dto.SendChatResponseChat{
		Id:        msg.Id,
		Chat:      msg.Chat,
		Role:      msg.Role,
		CreatedAt: msg.CreatedAt,
	}
}

func truncateTitle(text string) string {
	const maxTitle = 60
	text = strings.TrimSpace(text)
	if len(text) <= maxTitle {
		return text
	}
	return text[:maxTitle] + "..."
}
