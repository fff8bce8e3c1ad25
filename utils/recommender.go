package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"edumate/config"

	"github.com/go-resty/resty/v2"
)

const recommendationPrompt = `You are an AI assistant for an online course marketplace.
Analyze the user's browsing history and enrolled courses below and recommend
courses that align with their interests. Reply with one course title per line,
nothing else.

User history: %s`

// geminiResponse is the subset of the generateContent payload we read
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GetRecommendations asks the generative-text service for personalized course
// recommendations. The caller is expected to degrade gracefully on error; no
// retry, the recommendation block is decorative.
func GetRecommendations(userHistory string) ([]string, error) {
	if config.AppConfig.GeminiApiKey == "" {
		return nil, fmt.Errorf("recommendation service is not configured")
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": fmt.Sprintf(recommendationPrompt, userHistory)},
				},
			},
		},
	}

	client := resty.New().SetTimeout(15 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", config.AppConfig.GeminiApiKey).
		SetBody(reqBody).
		Post(config.AppConfig.GeminiApiURL)
	if err != nil {
		log.Printf("Recommendation request failed: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Recommendation service returned %d: %s", resp.StatusCode(), resp.String())
		return nil, fmt.Errorf("recommendation service returned status %d", resp.StatusCode())
	}

	var parsed geminiResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		log.Printf("Failed to parse recommendation response: %v", err)
		return nil, err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no recommendation text returned")
	}

	var recommendations []string
	for _, line := range strings.Split(parsed.Candidates[0].Content.Parts[0].Text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*0123456789. "))
		if line != "" {
			recommendations = append(recommendations, line)
		}
	}
	if len(recommendations) == 0 {
		return nil, fmt.Errorf("no recommendation text returned")
	}

	return recommendations, nil
}
