package tools

import (
	"fmt"
	"strings"

	"writewise/internal/models"
)

// SystemPrompt is sent as the system instruction with every generation.
const SystemPrompt = `You are a professional AI content writing assistant specialized in SEO, blogging, and digital marketing.
Your goals:
- Produce 100% original, plagiarism-free content
- Maintain natural, human-like tone
- Optimize for SEO without keyword stuffing
- Preserve original meaning unless instructed otherwise
- Avoid AI disclaimers or self-references
- Output clean, ready-to-publish content
Follow user instructions strictly.`

// Template turns raw user input into the instruction sent to the model.
type Template func(input string) string

// templates is indexed by ToolID. Its length is fixed by models.NumTools, so
// a stray entry fails to compile and a missing one is caught by Validate.
var templates = [models.NumTools]Template{
	models.ArticleRewriter: func(in string) string {
		return "Rewrite the following article. Rules: Improve clarity, SEO-friendly, natural transitions, keep length. Article:\n" + in
	},
	models.GrammarFixer: func(in string) string {
		return "Correct grammar/spelling. Rules: Do not change meaning or tone. Output clean text. Text:\n" + in
	},
	models.Paraphraser: func(in string) string {
		return "Paraphrase in unique human-like way. Rules: Plagiarism-free, professional. Text:\n" + in
	},
	models.TitleGenerator: func(in string) string {
		return "Generate 5 SEO blog titles. Rules: Engaging, clear, max 60 chars. Topic:\n" + in
	},
	models.MetaDescription: func(in string) string {
		return "Generate 3 SEO meta descriptions. Rules: Max 155 chars, clickable. Topic:\n" + in
	},
	models.BlogOutline: func(in string) string {
		return fmt.Sprintf("Generate a detailed blog post outline for the topic: %s. Include H1, H2, and H3 suggestions.", in)
	},
	models.IntroGen: func(in string) string {
		return fmt.Sprintf("Generate a compelling blog introduction for: %s. Hook the reader and state the value proposition.", in)
	},
	models.ConclusionGen: func(in string) string {
		return fmt.Sprintf("Generate a powerful conclusion for a blog post about: %s. Include a final thought and key takeaway.", in)
	},
	models.FAQGen: func(in string) string {
		return fmt.Sprintf("Generate 5 SEO-friendly FAQs based on: %s. Use Schema-friendly formatting.", in)
	},
	models.Expander: func(in string) string {
		return "Expand the following content with more detail, examples, and depth without fluff:\n" + in
	},
	models.Shortener: func(in string) string {
		return "Condense the following text into a more concise version while keeping all core facts:\n" + in
	},
	models.ToneChanger: func(in string) string {
		return "Rewrite the following text in three different tones (Formal, Casual, and Friendly):\n" + in
	},
	models.KeywordIdeas: func(in string) string {
		return fmt.Sprintf("Generate 15 long-tail keyword ideas related to: %s. Include search intent for each.", in)
	},
	models.SEOOptimizer: func(in string) string {
		return "Analyze and optimize the following text for better SEO performance and readability:\n" + in
	},
	models.HeadingGen: func(in string) string {
		return "Generate SEO-optimized H1, H2, and H3 headings for the following topic/text: " + in
	},
	models.SlugGen: func(in string) string {
		return "Generate 3 clean, SEO-friendly URL slugs for the title: " + in
	},
	models.SnippetGen: func(in string) string {
		return "Write a concise paragraph (40-60 words) designed to win a Google Featured Snippet for the question: " + in
	},
	models.PAAGen: func(in string) string {
		return `Generate 5 "People Also Ask" questions and short answers for: ` + in
	},
	models.SentenceRewriter: func(in string) string {
		return "Rewrite this sentence in 3 different ways while keeping the exact meaning:\n" + in
	},
	models.ParagraphRewriter: func(in string) string {
		return "Rewrite this paragraph for better flow, impact, and professional quality:\n" + in
	},
	models.PlagiarismSafe: func(in string) string {
		return "Rewrite this content from scratch to ensure it is 100% original and will pass all plagiarism checkers:\n" + in
	},
	models.ActivePassive: func(in string) string {
		return "Convert the following text from Active Voice to Passive Voice:\n" + in
	},
	models.PassiveActive: func(in string) string {
		return "Convert the following text from Passive Voice to Active Voice for more impact:\n" + in
	},
	models.AdCopy: func(in string) string {
		return "Generate 3 high-converting ad copies (Headline + Body) for this product/service: " + in
	},
	models.CTAGen: func(in string) string {
		return "Generate 5 powerful, action-oriented Call-to-Action phrases for: " + in
	},
	models.EmailSubject: func(in string) string {
		return "Generate 10 high-open-rate email subject lines for: " + in
	},
	models.ProductDesc: func(in string) string {
		return "Write a persuasive, SEO-rich product description for: " + in
	},
	models.LandingPage: func(in string) string {
		return "Create high-converting landing page copy structure (Headline, Sub-headline, Benefits, CTA) for: " + in
	},
	models.SocialCaption: func(in string) string {
		return "Generate 3 engaging social media captions for this content: " + in
	},
	models.HashtagGen: func(in string) string {
		return "Generate 20 trending and relevant hashtags for: " + in
	},
	models.YTTitle: func(in string) string {
		return "Generate 5 viral, click-optimized (but honest) YouTube titles for: " + in
	},
	models.YTDesc: func(in string) string {
		return fmt.Sprintf("Write an SEO-optimized YouTube video description for: %s. Include timestamps placeholders.", in)
	},
	models.YTTags: func(in string) string {
		return "Generate a comma-separated list of high-volume YouTube tags for: " + in
	},
	models.ReadabilityImprover: func(in string) string {
		return "Rewrite the following text to achieve a high readability score (grade 6-8 level):\n" + in
	},
	models.Simplifier: func(in string) string {
		return "Simplify this complex information so a 10-year-old could understand it:\n" + in
	},
	models.KeywordDensity: func(in string) string {
		return "Analyze the keyword usage in this text and suggest 3 improvements for better balance:\n" + in
	},
	models.SEOChecklist: func(in string) string {
		return "Create a custom SEO checklist for a blog post about: " + in
	},
	models.AIHumanizer: func(in string) string {
		return `Rewrite the following text to bypass AI detection.
Rules:
- Increase burstiness and perplexity.
- Use natural human-like phrasing.
- Vary sentence length and structure significantly.
- Avoid robotic repetition.
- Maintain the original core meaning.
Text:
` + in
	},
	models.ContentRepurposer: func(in string) string {
		return `Repurpose the following content into:
1. A thread of 5 Tweets.
2. A professional marketing email.
3. A short LinkedIn post summary.
Original Content:
` + in
	},
	models.LongFormGen: func(in string) string {
		return fmt.Sprintf(`Write a complete, high-quality, long-form blog article (1000+ words) based on: %s.
Include:
- An engaging title.
- A hook-filled introduction.
- Detailed H2 and H3 sections with valuable info.
- A strong conclusion.
- Natural keyword placement throughout.`, in)
	},
	models.ContentGapAnalyzer: func(in string) string {
		return `Analyze the following content and identify 5-7 "Content Gaps" (topics, questions, or details that are missing but should be there for a complete authority guide):
Content:
` + in
	},
	models.CompetitorAnalyzer: func(in string) string {
		return fmt.Sprintf(`Act as an SEO expert. Analyze the competitor's topic or URL: %s.
Provide:
1. Their likely target keywords.
2. Their content strategy strengths.
3. A plan to outrank them with better content structure.`, in)
	},
}

// BuildPrompt renders the template for id around input. The input is
// embedded verbatim.
func BuildPrompt(id models.ToolID, input string) (string, error) {
	if !id.Valid() || templates[id] == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, id)
	}
	return templates[id](input), nil
}

var focusDirectives = map[models.Mode]string{
	models.ModeSEO:          "FOCUS: SEO optimization",
	models.ModeSimple:       "FOCUS: Beginner English",
	models.ModeProfessional: "FOCUS: Business tone",
}

// ApplyMode appends the focus directive for mode when id is the article
// rewriter. Every other tool and mode passes prompt through unchanged.
func ApplyMode(prompt string, id models.ToolID, mode models.Mode) string {
	if id != models.ArticleRewriter {
		return prompt
	}
	directive, ok := focusDirectives[mode]
	if !ok {
		return prompt
	}
	return prompt + "\n" + directive
}

// SupportsMode reports whether the mode switcher applies to id.
func SupportsMode(id models.ToolID) bool {
	return id == models.ArticleRewriter
}

// DownloadFilename is the file name used when saving output for id.
func DownloadFilename(id models.ToolID) string {
	return "writewise-" + strings.ToLower(id.String()) + ".txt"
}
