package chat

import (
	"encoding/json/v2"
	"fmt"
	"time"

	"github.com/web3privacy/ideas-server/internal/domain"
)

// SystemPrompt embeds the expert collection as few-shot context. The model is
// told to combine examples into new ideas rather than repeat them, and to
// cite its inspirations under basedOn.
func SystemPrompt(examples []domain.Idea) (string, error) {
	inputJSON, err := json.Marshal(examples)
	if err != nil {
		return "", fmt.Errorf("encode examples: %w", err)
	}

	return fmt.Sprintf("You are human tasked with coming up with privacy focused project ideas for hackathons. "+
		"Here is a list of example: %s "+
		"Do not return any of these example right away, but you are alowed to combine them into new ideas. "+
		"If you use any of the example as inspiration, add the list in output as 'basedOn'. "+
		"Only print the result in the same format as the example inputs", string(inputJSON)), nil
}

// UserPrompt builds the per-request prompt. The timestamp is noise the model
// is told to ignore; it keeps repeated keyword sets from hitting response
// caches upstream.
func UserPrompt(keywords string, now time.Time) string {
	return fmt.Sprintf("Provide an idea based on keywords: %s; (ignore: %s)", keywords, now.Format(time.RFC1123))
}
