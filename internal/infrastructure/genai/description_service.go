package genai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"mirnito/internal/domain/service"
	"mirnito/pkg/logger"
)

const (
	fallbackNoKey = "API Key отсутствует. Пожалуйста, напишите описание самостоятельно или настройте ключ."
	fallbackError = "Произошла ошибка при генерации. Пожалуйста, попробуйте позже."
	fallbackEmpty = "Не удалось сгенерировать описание. Попробуйте еще раз."
)

type geminiDescriptionService struct {
	client *genai.Client
	model  string
}

// NewGeminiDescriptionService builds the Gemini-backed description
// generator. A missing API key is not an error: the service runs in
// fallback mode and answers with fixed text.
func NewGeminiDescriptionService(ctx context.Context, apiKey, model string) (service.DescriptionService, error) {
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; description generation will return fallback text")
		return &geminiDescriptionService{model: model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &geminiDescriptionService{
		client: client,
		model:  model,
	}, nil
}

func (s *geminiDescriptionService) GenerateListingDescription(ctx context.Context, title, category, keywords string) string {
	if s.client == nil {
		return fallbackNoKey
	}

	prompt := fmt.Sprintf(`Ты профессиональный копирайтер для доски объявлений.
Напиши привлекательное, честное и продающее описание для объявления.

Товар/Услуга: %s
Категория: %s
Ключевые особенности: %s

Тон: Дружелюбный, но профессиональный.
Длина: 3-4 коротких абзаца. Используй эмодзи умеренно.
Язык: Русский.`, title, category, keywords)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		logger.Error("Gemini API error: %v", err)
		return fallbackError
	}

	text := resp.Text()
	if text == "" {
		return fallbackEmpty
	}
	return text
}
