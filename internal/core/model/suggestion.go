package model

import (
	"encoding/json"
	"fmt"
)

// SuggestionData is the typed payload of an EntitySuggestion. Exactly one
// variant exists per entity type an analyzer may propose, each carrying the
// fields that type's create operation requires. Keeping the payload a closed
// set of variants instead of a loose attribute bag means a misspelled field
// fails to decode instead of being silently dropped.
type SuggestionData interface {
	SuggestedType() EntityType
}

type TransactionDraft struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date,omitempty"`
}

func (TransactionDraft) SuggestedType() EntityType { return EntityTransaction }

type InventoryItemDraft struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Quantity int    `json:"quantity"`
}

func (InventoryItemDraft) SuggestedType() EntityType { return EntityInventoryItem }

type ReimbursementDraft struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Recipient   string  `json:"recipient,omitempty"`
}

func (ReimbursementDraft) SuggestedType() EntityType { return EntityReimbursement }

type NewsDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (NewsDraft) SuggestedType() EntityType { return EntityNews }

type FAQDraft struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (FAQDraft) SuggestedType() EntityType { return EntityFAQ }

// EntitySuggestion is a confidence-scored, human-reviewable proposal to
// create a new draft entity linked to the analyzed source. Suggestions are
// ephemeral; nothing is persisted until one is accepted.
type EntitySuggestion struct {
	ID         string         `json:"id"`
	Type       EntityType     `json:"entity_type"`
	Name       string         `json:"name"`
	Data       SuggestionData `json:"data"`
	Confidence float64        `json:"confidence"`
	Reasoning  string         `json:"reasoning"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// UnmarshalJSON decodes the Data payload into the variant selected by
// entity_type, rejecting unknown or non-creatable types.
func (s *EntitySuggestion) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID         string          `json:"id"`
		Type       EntityType      `json:"entity_type"`
		Name       string          `json:"name"`
		Data       json.RawMessage `json:"data"`
		Confidence float64         `json:"confidence"`
		Reasoning  string          `json:"reasoning"`
		Metadata   map[string]any  `json:"metadata"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	s.ID = raw.ID
	s.Type = raw.Type
	s.Name = raw.Name
	s.Confidence = raw.Confidence
	s.Reasoning = raw.Reasoning
	s.Metadata = raw.Metadata

	if len(raw.Data) == 0 {
		return fmt.Errorf("suggestion is missing data payload")
	}

	var data SuggestionData
	switch raw.Type {
	case EntityTransaction:
		data = &TransactionDraft{}
	case EntityInventoryItem:
		data = &InventoryItemDraft{}
	case EntityReimbursement:
		data = &ReimbursementDraft{}
	case EntityNews:
		data = &NewsDraft{}
	case EntityFAQ:
		data = &FAQDraft{}
	default:
		return fmt.Errorf("entity type %q cannot be suggested", raw.Type)
	}
	if err := json.Unmarshal(raw.Data, data); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", raw.Type, err)
	}
	s.Data = data
	return nil
}

// Enrichment is side metadata an analyzer attaches to the source entity
// without creating anything new.
type Enrichment struct {
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
}

// AnalysisResult is what one analyzer run produced. Errors is informational,
// not a veto: a result may carry both suggestions and errors when only part
// of the input could be processed.
type AnalysisResult struct {
	Suggestions []EntitySuggestion `json:"suggestions"`
	Enrichment  *Enrichment        `json:"enrichment,omitempty"`
	Errors      []string           `json:"errors,omitempty"`
}

// ErrorResult builds a suggestion-free result carrying a single error string.
func ErrorResult(format string, args ...any) *AnalysisResult {
	return &AnalysisResult{
		Suggestions: []EntitySuggestion{},
		Errors:      []string{fmt.Sprintf(format, args...)},
	}
}
