package analyze

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Jalez/resident-committee-portal-sub004/internal/config"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/common"
	"github.com/Jalez/resident-committee-portal-sub004/internal/core/model"
	"github.com/Jalez/resident-committee-portal-sub004/internal/llm"
	"github.com/Jalez/resident-committee-portal-sub004/internal/store"
)

// minMinuteContent is the shortest minute text worth sending to the model;
// anything below it is reported as too short to analyze.
const minMinuteContent = 50

// MinuteAnalyzer mines free-text meeting minutes for resident-facing news
// and FAQ drafts. It runs on an independent priority track: its targets are
// content types no treasury analyzer touches.
type MinuteAnalyzer struct {
	LLM     llm.LLMClient
	Prompts config.AnalysisPrompts
}

type minedContent struct {
	News []struct {
		Title      string  `json:"title"`
		Content    string  `json:"content"`
		Confidence float64 `json:"confidence"`
	} `json:"news"`
	FAQs []struct {
		Question   string  `json:"question"`
		Answer     string  `json:"answer"`
		Confidence float64 `json:"confidence"`
	} `json:"faqs"`
}

func (a *MinuteAnalyzer) Analyze(ctx context.Context, db store.DataAccess, entityID uint) *model.AnalysisResult {
	minute, err := db.GetMinute(ctx, entityID)
	if err != nil {
		return model.ErrorResult("failed to load minute %d: %v", entityID, err)
	}
	if len(strings.TrimSpace(minute.Content)) < minMinuteContent {
		return model.ErrorResult("minute content is too short to analyze (need at least %d characters)", minMinuteContent)
	}
	if a.LLM == nil {
		return model.ErrorResult(noCredentialError)
	}

	result := &model.AnalysisResult{Suggestions: []model.EntitySuggestion{}}

	prompt := fmt.Sprintf(a.Prompts.Minutes, minute.Content)
	response, err := a.LLM.Generate(ctx, prompt)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("completion request failed: %v", err))
		return result
	}

	mined, err := common.ParseJSON[minedContent](response)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("unparseable completion: %v", err))
		return result
	}

	for _, n := range mined.News {
		if n.Title == "" {
			continue
		}
		result.Suggestions = append(result.Suggestions, model.EntitySuggestion{
			ID:   uuid.NewString(),
			Type: model.EntityNews,
			Name: n.Title,
			Data: &model.NewsDraft{
				Title:   n.Title,
				Content: n.Content,
			},
			Confidence: clampConfidence(n.Confidence, 0.6),
			Reasoning:  fmt.Sprintf("The minutes of %q mention this as resident-relevant.", minute.Name),
		})
	}
	for _, f := range mined.FAQs {
		if f.Question == "" {
			continue
		}
		result.Suggestions = append(result.Suggestions, model.EntitySuggestion{
			ID:   uuid.NewString(),
			Type: model.EntityFAQ,
			Name: f.Question,
			Data: &model.FAQDraft{
				Question: f.Question,
				Answer:   f.Answer,
			},
			Confidence: clampConfidence(f.Confidence, 0.6),
			Reasoning:  fmt.Sprintf("The minutes of %q answer this question.", minute.Name),
		})
	}
	return result
}
