package generating

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/pkg/utils"
)

var sandboxStyles = []string{
	"Modern minimalist",
	"Bold and energetic",
	"Professional and trustworthy",
	"Playful and fun",
	"Elegant and sophisticated",
}

var sandboxCopyTemplates = map[string][]string{
	domain.PlatformInstagram: {
		"🚀 Revolutionize your daily routine with this game-changing product! ✨ Don't miss out on the trend everyone's talking about. #Innovation #Lifestyle",
		"✨ Premium quality meets unbeatable style! Transform your experience today. Limited time offer - swipe up now! 💫 #Quality #Style",
		"🌟 Join thousands of satisfied customers who made the smart choice. Experience the difference for yourself! #Trusted #Premium",
	},
	domain.PlatformTikTok: {
		"⚡ GAME CHANGER ALERT! This is what you've been waiting for! Swipe up NOW before it's gone! 🔥 #Viral #MustHave",
		"🤯 POV: You discover the product that changes everything! Don't scroll past this! #GameChanger #Trending",
		"🚨 This is your sign to upgrade your life! Trust me, you need this! #LifeHack #Trending",
	},
}

const sandboxInsights = `Based on your ad performance data:

1. **Top Performer**: Your TikTok ads are showing 35% higher engagement rates compared to Instagram, particularly the bold and energetic style variations.

2. **Platform Insights**:
   - TikTok: Short, punchy copy with trending hashtags performs best
   - Instagram: Visual-first approach with lifestyle messaging resonates well

3. **Recommendations**:
   - Increase TikTok ad spend by 25% based on superior performance
   - Test more video content for Instagram Stories
   - A/B test different call-to-action phrases

4. **Key Success Factors**:
   - Emojis increase engagement by 15%
   - Time-sensitive language ("limited time", "now") drives urgency
   - Platform-native content style is crucial for performance`

// SandboxService devolve conteúdo fixo sem chamar provedores de IA
type SandboxService struct {
	now func() time.Time
}

func NewSandboxService() Interface {
	return &SandboxService{now: time.Now}
}

func copyTemplates(platform string) []string {
	if templates, ok := sandboxCopyTemplates[platform]; ok {
		return templates
	}
	return sandboxCopyTemplates[domain.PlatformInstagram]
}

func (s *SandboxService) GenerateAdCopy(_ context.Context, _, platform, style string) ([]domain.AdCopy, error) {
	if style == "" {
		style = domain.DefaultCopyStyle
	}

	templates := copyTemplates(platform)
	copies := make([]domain.AdCopy, 0, len(templates))
	for i, text := range templates {
		copies = append(copies, domain.AdCopy{ID: i + 1, Text: text, Platform: platform, Style: style})
	}

	return copies, nil
}

func (s *SandboxService) GenerateImageVariations(_ context.Context, imageURL, style, platform string) (*domain.ImageVariation, error) {
	return &domain.ImageVariation{
		ImageURL: imageURL,
		Prompt:   domain.ImagePrompt(style, platform),
	}, nil
}

func (s *SandboxService) EnhanceImage(_ context.Context, imageURL, _ string) (*domain.EnhancedImage, error) {
	return &domain.EnhancedImage{
		ImageURL: imageURL,
		TaskID:   fmt.Sprintf("mock_task_%d", s.now().UnixMilli()),
	}, nil
}

func (s *SandboxService) RemoveBackground(ctx context.Context, imageURL string) (*domain.EnhancedImage, error) {
	return s.EnhanceImage(ctx, imageURL, "")
}

func (s *SandboxService) GenerateAdVariations(_ context.Context, productImage, _ string, platforms []string, count int) ([]domain.GeneratedVariation, error) {
	if len(platforms) == 0 {
		return nil, NewGenerationError(ErrGenerateAdVariations, ErrNoPlatforms.Error())
	}

	if count <= 0 {
		count = domain.DefaultVariations
	}

	variations := make([]domain.GeneratedVariation, 0, count)
	for i := 0; i < count; i++ {
		platform := platforms[i%len(platforms)]
		style := sandboxStyles[i%len(sandboxStyles)]
		templates := copyTemplates(platform)

		variations = append(variations, domain.GeneratedVariation{
			ID:                i + 1,
			Prompt:            style,
			GeneratedText:     templates[i%len(templates)],
			GeneratedImageURL: productImage,
			Platform:          platform,
			Style:             style,
			Status:            domain.AdVariationStatusGenerated,
			PerformanceMetrics: domain.PerformanceMetrics{
				Impressions:    5000 + rand.IntN(20000),
				Clicks:         200 + rand.IntN(1500),
				EngagementRate: utils.RoundWithOneDecimalPlace(rand.Float64()*10 + 3),
			},
		})
	}

	return variations, nil
}

func (s *SandboxService) AnalyzePerformance(_ context.Context, _ []*domain.AdVariation) (string, error) {
	return sandboxInsights, nil
}
