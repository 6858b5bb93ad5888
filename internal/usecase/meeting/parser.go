package meeting

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
)

// analysisResult mirrors the JSON shape the model is prompted to return
type analysisResult struct {
	Summary     string `json:"summary"`
	ActionItems []struct {
		Description string `json:"description"`
		Priority    string `json:"priority"`
		Owner       string `json:"owner"`
		Deadline    string `json:"deadline"`
	} `json:"action_items"`
}

// Parser turns raw model output into a summary and action items
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the summary and action items from the model's response.
// Items with an empty description are dropped; unknown priorities fall back
// to medium and unparseable deadlines are ignored.
func (p *Parser) Parse(raw string) (string, []entities.ActionItem, error) {
	raw = extractJSON(raw)

	var result analysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return "", nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}
	if result.Summary == "" {
		return "", nil, fmt.Errorf("missing summary in analysis response")
	}

	items := make([]entities.ActionItem, 0, len(result.ActionItems))
	for _, raw := range result.ActionItems {
		description := strings.TrimSpace(raw.Description)
		if description == "" {
			continue
		}

		item := entities.NewActionItem(description, entities.ActionItemPriority(raw.Priority))
		item.Owner = strings.TrimSpace(raw.Owner)

		if raw.Deadline != "" {
			if deadline, err := time.Parse(time.RFC3339, raw.Deadline); err == nil {
				item.Deadline = &deadline
			}
		}

		items = append(items, item)
	}

	return result.Summary, items, nil
}

// extractJSON strips a markdown code fence the model may wrap its JSON in
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
