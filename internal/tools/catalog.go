package tools

import (
	"errors"
	"fmt"
	"strings"

	"writewise/internal/models"
)

var ErrUnknownTool = errors.New("unknown tool")

// DefaultTool is used whenever a requested tool cannot be resolved.
const DefaultTool = models.ArticleRewriter

const (
	CategoryRewriting  = "Rewriting & Humanizing"
	CategoryGenerators = "Content Generators"
	CategorySEO        = "SEO Tools"
	CategoryMarketing  = "Marketing Tools"
	CategorySocial     = "Social Media Tools"
	CategoryUtilities  = "Blogger Utilities"
)

var categories = []models.Category{
	{Name: CategoryRewriting, Tools: []models.ToolID{
		models.AIHumanizer,
		models.ArticleRewriter,
		models.PlagiarismSafe,
		models.Paraphraser,
		models.SentenceRewriter,
		models.ParagraphRewriter,
		models.ActivePassive,
		models.PassiveActive,
		models.GrammarFixer,
	}},
	{Name: CategoryGenerators, Tools: []models.ToolID{
		models.LongFormGen,
		models.BlogOutline,
		models.IntroGen,
		models.ConclusionGen,
		models.Expander,
		models.Shortener,
		models.ToneChanger,
	}},
	{Name: CategorySEO, Tools: []models.ToolID{
		models.ContentGapAnalyzer,
		models.CompetitorAnalyzer,
		models.KeywordIdeas,
		models.SEOOptimizer,
		models.TitleGenerator,
		models.MetaDescription,
		models.HeadingGen,
		models.SlugGen,
		models.SnippetGen,
		models.PAAGen,
		models.FAQGen,
	}},
	{Name: CategoryMarketing, Tools: []models.ToolID{
		models.ContentRepurposer,
		models.AdCopy,
		models.CTAGen,
		models.EmailSubject,
		models.ProductDesc,
		models.LandingPage,
	}},
	{Name: CategorySocial, Tools: []models.ToolID{
		models.SocialCaption,
		models.HashtagGen,
		models.YTTitle,
		models.YTDesc,
		models.YTTags,
	}},
	{Name: CategoryUtilities, Tools: []models.ToolID{
		models.ReadabilityImprover,
		models.Simplifier,
		models.KeywordDensity,
		models.SEOChecklist,
	}},
}

var descriptors = []models.ToolDescriptor{
	// Rewriting & Humanizing
	{ID: models.AIHumanizer, Name: "AI Humanizer", Description: "Make AI content sound 100% human.", Icon: "🧠", Placeholder: "Paste AI-generated text here...", ButtonText: "Humanize"},
	{ID: models.ArticleRewriter, Name: "Article Rewriter", Description: "Rewrite articles for SEO safety.", Icon: "📝", Placeholder: "Paste article...", ButtonText: "Rewrite"},
	{ID: models.PlagiarismSafe, Name: "Plagiarism-Safe", Description: "Highest safety rewriting.", Icon: "🛡️", Placeholder: "Source text...", ButtonText: "Safe Rewrite"},
	{ID: models.Paraphraser, Name: "Paraphraser", Description: "Unique wording, same meaning.", Icon: "🔄", Placeholder: "Paste text...", ButtonText: "Paraphrase"},
	{ID: models.SentenceRewriter, Name: "Sentence Rewriter", Description: "Fix individual lines.", Icon: "🖋️", Placeholder: "Sentence...", ButtonText: "Rewrite"},
	{ID: models.ParagraphRewriter, Name: "Paragraph Pro", Description: "Flow and logic fix.", Icon: "📰", Placeholder: "Paragraph...", ButtonText: "Rewrite"},
	{ID: models.ActivePassive, Name: "Active to Passive", Description: "Change voice style.", Icon: "🔄", Placeholder: "Active text...", ButtonText: "Convert"},
	{ID: models.PassiveActive, Name: "Passive to Active", Description: "Make writing punchy.", Icon: "💥", Placeholder: "Passive text...", ButtonText: "Convert"},
	{ID: models.GrammarFixer, Name: "Grammar Fixer", Description: "Fix grammar and spelling.", Icon: "✨", Placeholder: "Paste text...", ButtonText: "Fix"},

	// Content Generators
	{ID: models.LongFormGen, Name: "Article Generator", Description: "Generate high-quality long articles.", Icon: "📚", Placeholder: "Enter article topic and keywords...", ButtonText: "Generate Article"},
	{ID: models.BlogOutline, Name: "Blog Outline", Description: "Detailed structure for your post.", Icon: "📋", Placeholder: "Main topic...", ButtonText: "Get Outline"},
	{ID: models.IntroGen, Name: "Intro Generator", Description: "Hook readers immediately.", Icon: "🎬", Placeholder: "Topic/Title...", ButtonText: "Generate Intro"},
	{ID: models.ConclusionGen, Name: "Conclusion", Description: "Summarize with a strong finish.", Icon: "🏁", Placeholder: "Article points...", ButtonText: "Generate Conclusion"},
	{ID: models.Expander, Name: "Content Expander", Description: "Add detail and depth.", Icon: "➕", Placeholder: "Short text...", ButtonText: "Expand"},
	{ID: models.Shortener, Name: "Content Shortener", Description: "Be concise and clear.", Icon: "➖", Placeholder: "Long text...", ButtonText: "Shorten"},
	{ID: models.ToneChanger, Name: "Tone Changer", Description: "Change the voice of text.", Icon: "🗣️", Placeholder: "Paste text...", ButtonText: "Change Tone"},

	// SEO Tools
	{ID: models.ContentGapAnalyzer, Name: "Gap Analyzer", Description: "Find missing topics in your text.", Icon: "🕳️", Placeholder: "Paste your content or topic...", ButtonText: "Analyze Gaps"},
	{ID: models.CompetitorAnalyzer, Name: "Competitor Check", Description: "Analyze competition for a topic.", Icon: "🤺", Placeholder: "Enter competitor URL or topic...", ButtonText: "Analyze"},
	{ID: models.KeywordIdeas, Name: "Keyword Ideas", Description: "Find niche keyword opportunities.", Icon: "🔑", Placeholder: "Niche...", ButtonText: "Find Keywords"},
	{ID: models.SEOOptimizer, Name: "SEO Optimizer", Description: "Optimize text for search intent.", Icon: "🚀", Placeholder: "Draft text...", ButtonText: "Optimize"},
	{ID: models.TitleGenerator, Name: "Title Generator", Description: "SEO-optimized blog titles.", Icon: "💡", Placeholder: "Topic...", ButtonText: "Generate"},
	{ID: models.MetaDescription, Name: "Meta Description", Description: "Search snippets for Google.", Icon: "🔍", Placeholder: "Topic...", ButtonText: "Generate"},
	{ID: models.HeadingGen, Name: "H1–H3 Headings", Description: "Proper semantic structure.", Icon: "🏷️", Placeholder: "Topic...", ButtonText: "Get Headings"},
	{ID: models.SlugGen, Name: "Slug / URL", Description: "Clean, SEO-friendly URLs.", Icon: "🔗", Placeholder: "Article Title...", ButtonText: "Get Slug"},
	{ID: models.SnippetGen, Name: "Featured Snippet", Description: "Target Google \"Position Zero\".", Icon: "⭐", Placeholder: "Question...", ButtonText: "Generate"},
	{ID: models.PAAGen, Name: "People Also Ask", Description: "Common user questions.", Icon: "👥", Placeholder: "Topic...", ButtonText: "Generate"},
	{ID: models.FAQGen, Name: "FAQ Generator", Description: "SEO rich results FAQs.", Icon: "❓", Placeholder: "Topic...", ButtonText: "Get FAQs"},

	// Marketing Tools
	{ID: models.ContentRepurposer, Name: "Repurposer", Description: "Blog → Tweet → Email.", Icon: "♻️", Placeholder: "Paste blog post content...", ButtonText: "Repurpose"},
	{ID: models.AdCopy, Name: "Ad Copy", Description: "FB/Google high converting ads.", Icon: "💰", Placeholder: "Product...", ButtonText: "Get Ads"},
	{ID: models.CTAGen, Name: "CTA Generator", Description: "Clickable calls to action.", Icon: "🎯", Placeholder: "Desired action...", ButtonText: "Generate"},
	{ID: models.EmailSubject, Name: "Email Subjects", Description: "Higher open rates.", Icon: "📧", Placeholder: "Email context...", ButtonText: "Get Subjects"},
	{ID: models.ProductDesc, Name: "Product Desc", Description: "E-com focused copy.", Icon: "📦", Placeholder: "Product name...", ButtonText: "Describe"},
	{ID: models.LandingPage, Name: "Landing Page", Description: "Conversion focused copy.", Icon: "🏢", Placeholder: "Offer...", ButtonText: "Write Copy"},

	// Social Media Tools
	{ID: models.SocialCaption, Name: "Social Captions", Description: "Insta/LinkedIn/FB.", Icon: "📱", Placeholder: "Post details...", ButtonText: "Get Captions"},
	{ID: models.HashtagGen, Name: "Hashtags", Description: "Viral tag generation.", Icon: "#️⃣", Placeholder: "Topic...", ButtonText: "Get Tags"},
	{ID: models.YTTitle, Name: "YouTube Title", Description: "Clicky, non-clickbait.", Icon: "📺", Placeholder: "Video topic...", ButtonText: "Get Titles"},
	{ID: models.YTDesc, Name: "YouTube Desc", Description: "SEO description for YT.", Icon: "📝", Placeholder: "Video info...", ButtonText: "Get Desc"},
	{ID: models.YTTags, Name: "YouTube Tags", Description: "Tags for the algorithm.", Icon: "🏷️", Placeholder: "Video topic...", ButtonText: "Get Tags"},

	// Blogger Utilities
	{ID: models.ReadabilityImprover, Name: "Readability", Description: "Make it easy to read.", Icon: "📚", Placeholder: "Text...", ButtonText: "Improve"},
	{ID: models.Simplifier, Name: "Simplifier", Description: "ELI5 style writing.", Icon: "👶", Placeholder: "Complex text...", ButtonText: "Simplify"},
	{ID: models.KeywordDensity, Name: "Density Check", Description: "Optimization analysis.", Icon: "📊", Placeholder: "Text...", ButtonText: "Analyze"},
	{ID: models.SEOChecklist, Name: "SEO Checklist", Description: "Custom post checklist.", Icon: "✅", Placeholder: "Post topic...", ButtonText: "Get Checklist"},
}

var byID [models.NumTools]*models.ToolDescriptor

func init() {
	for _, c := range categories {
		for _, id := range c.Tools {
			for i := range descriptors {
				if descriptors[i].ID == id {
					descriptors[i].Category = c.Name
				}
			}
		}
	}
	for i := range descriptors {
		d := &descriptors[i]
		if d.ID.Valid() && byID[d.ID] == nil {
			byID[d.ID] = d
		}
	}
}

// Describe returns the display metadata for id.
func Describe(id models.ToolID) (models.ToolDescriptor, error) {
	if !id.Valid() || byID[id] == nil {
		return models.ToolDescriptor{}, fmt.Errorf("%w: %s", ErrUnknownTool, id)
	}
	return *byID[id], nil
}

// MustDescribe is Describe for ids already known to be valid.
func MustDescribe(id models.ToolID) models.ToolDescriptor {
	d, err := Describe(id)
	if err != nil {
		panic(err)
	}
	return d
}

// All returns every descriptor in navigation order.
func All() []models.ToolDescriptor {
	out := make([]models.ToolDescriptor, 0, len(descriptors))
	for _, c := range categories {
		for _, id := range c.Tools {
			out = append(out, *byID[id])
		}
	}
	return out
}

func Categories() []models.Category {
	out := make([]models.Category, len(categories))
	for i, c := range categories {
		out[i] = models.Category{Name: c.Name, Tools: append([]models.ToolID(nil), c.Tools...)}
	}
	return out
}

// Parse maps a tool identifier such as "article_rewriter" to its ToolID.
func Parse(s string) (models.ToolID, error) {
	id, ok := models.LookupToolID(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTool, s)
	}
	return id, nil
}

// Resolve is Parse with a fallback to DefaultTool for empty or unknown
// values, the rule used for deep links.
func Resolve(s string) models.ToolID {
	id, err := Parse(s)
	if err != nil {
		return DefaultTool
	}
	return id
}

// Validate checks that the catalog, the category index and the template
// table cover exactly the same set of tools.
func Validate() error {
	var problems []string

	seen := make(map[models.ToolID]int)
	for _, d := range descriptors {
		if !d.ID.Valid() {
			problems = append(problems, fmt.Sprintf("descriptor with invalid id %d", int(d.ID)))
			continue
		}
		seen[d.ID]++
		if d.Name == "" || d.ButtonText == "" {
			problems = append(problems, fmt.Sprintf("%s: incomplete descriptor", d.ID))
		}
	}

	inCategory := make(map[models.ToolID]int)
	for _, c := range categories {
		for _, id := range c.Tools {
			inCategory[id]++
		}
	}

	for id := models.ToolID(0); id < models.NumTools; id++ {
		if seen[id] != 1 {
			problems = append(problems, fmt.Sprintf("%s: %d descriptors", id, seen[id]))
		}
		if inCategory[id] != 1 {
			problems = append(problems, fmt.Sprintf("%s: listed in %d categories", id, inCategory[id]))
		}
		if templates[id] == nil {
			problems = append(problems, fmt.Sprintf("%s: no prompt template", id))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("tool registry inconsistent: %s", strings.Join(problems, "; "))
	}
	return nil
}
