package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	CopyModel        = "gpt-4"
	ImageModel       = "dall-e-3"
	CopyMaxTokens    = 500
	CopyTemperature  = 0.8
	InsightMaxTokens = 800
	InsightTemp      = 0.3
	CopiesPerRequest = 3

	AnalystSystemPrompt = "You are an expert digital marketing analyst. Provide actionable insights based on ad performance data."
)

var numberingPrefix = regexp.MustCompile(`^\d+\.\s*`)

// CopyCharacterLimit é o limite de caracteres da legenda por plataforma
func CopyCharacterLimit(platform string) int {
	if platform == PlatformTikTok {
		return 150
	}
	return 200
}

func CopywriterSystemPrompt(platform string) string {
	return fmt.Sprintf("You are an expert social media copywriter specializing in %s ads. Create compelling, conversion-focused ad copy.", platform)
}

func AdCopyPrompt(description, platform, style string) string {
	return fmt.Sprintf(`Create %s ad copy for: %s.
Style: %s.
Requirements:
- Engaging and platform-appropriate
- Include relevant emojis
- Call-to-action
- Under %d characters
- Generate %d variations`, platform, description, style, CopyCharacterLimit(platform), CopiesPerRequest)
}

func ImagePrompt(style, platform string) string {
	return fmt.Sprintf(`Create a %s style product image optimized for %s advertising.
Make it eye-catching, professional, and suitable for social media marketing.`, style, platform)
}

// ImageSize é quadrado para o Instagram e vertical para as demais plataformas
func ImageSize(platform string) string {
	if platform == PlatformInstagram {
		return "1024x1024"
	}
	return "1024x1792"
}

func EnhancePrompt(style string) string {
	return fmt.Sprintf("Enhance this product image with %s style, make it more appealing for advertising", style)
}

func PerformancePrompt(performanceData string) string {
	return fmt.Sprintf(`Analyze these ad performance metrics and provide insights:
%s

Provide:
1. Top performing ad and why
2. Platform-specific insights
3. Recommendations for improvement
4. Key success factors`, performanceData)
}

// ParseAdCopies quebra a resposta do modelo em até três legendas, sem a numeração
func ParseAdCopies(content, platform, style string) []AdCopy {
	copies := make([]AdCopy, 0, CopiesPerRequest)

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(copies) == CopiesPerRequest {
			break
		}

		copies = append(copies, AdCopy{
			ID:       len(copies) + 1,
			Text:     strings.TrimSpace(numberingPrefix.ReplaceAllString(line, "")),
			Platform: platform,
			Style:    style,
		})
	}

	return copies
}
