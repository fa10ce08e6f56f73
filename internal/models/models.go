package models

import (
	"fmt"
	"strings"
)

// ToolID identifies one writing tool. The set is closed: every value below
// NumTools has a catalog entry and a prompt template.
type ToolID int

const (
	AIHumanizer ToolID = iota
	ArticleRewriter
	PlagiarismSafe
	Paraphraser
	SentenceRewriter
	ParagraphRewriter
	ActivePassive
	PassiveActive
	GrammarFixer

	LongFormGen
	BlogOutline
	IntroGen
	ConclusionGen
	Expander
	Shortener
	ToneChanger

	ContentGapAnalyzer
	CompetitorAnalyzer
	KeywordIdeas
	SEOOptimizer
	TitleGenerator
	MetaDescription
	HeadingGen
	SlugGen
	SnippetGen
	PAAGen
	FAQGen

	ContentRepurposer
	AdCopy
	CTAGen
	EmailSubject
	ProductDesc
	LandingPage

	SocialCaption
	HashtagGen
	YTTitle
	YTDesc
	YTTags

	ReadabilityImprover
	Simplifier
	KeywordDensity
	SEOChecklist

	NumTools
)

var toolNames = [NumTools]string{
	AIHumanizer:         "AI_HUMANIZER",
	ArticleRewriter:     "ARTICLE_REWRITER",
	PlagiarismSafe:      "PLAGIARISM_SAFE",
	Paraphraser:         "PARAPHRASER",
	SentenceRewriter:    "SENTENCE_REWRITER",
	ParagraphRewriter:   "PARAGRAPH_REWRITER",
	ActivePassive:       "ACTIVE_PASSIVE",
	PassiveActive:       "PASSIVE_ACTIVE",
	GrammarFixer:        "GRAMMAR_FIXER",
	LongFormGen:         "LONG_FORM_GEN",
	BlogOutline:         "BLOG_OUTLINE",
	IntroGen:            "INTRO_GEN",
	ConclusionGen:       "CONCLUSION_GEN",
	Expander:            "EXPANDER",
	Shortener:           "SHORTENER",
	ToneChanger:         "TONE_CHANGER",
	ContentGapAnalyzer:  "CONTENT_GAP_ANALYZER",
	CompetitorAnalyzer:  "COMPETITOR_ANALYZER",
	KeywordIdeas:        "KEYWORD_IDEAS",
	SEOOptimizer:        "SEO_OPTIMIZER",
	TitleGenerator:      "TITLE_GENERATOR",
	MetaDescription:     "META_DESCRIPTION",
	HeadingGen:          "HEADING_GEN",
	SlugGen:             "SLUG_GEN",
	SnippetGen:          "SNIPPET_GEN",
	PAAGen:              "PAA_GEN",
	FAQGen:              "FAQ_GEN",
	ContentRepurposer:   "CONTENT_REPURPOSER",
	AdCopy:              "AD_COPY",
	CTAGen:              "CTA_GEN",
	EmailSubject:        "EMAIL_SUBJECT",
	ProductDesc:         "PRODUCT_DESC",
	LandingPage:         "LANDING_PAGE",
	SocialCaption:       "SOCIAL_CAPTION",
	HashtagGen:          "HASHTAG_GEN",
	YTTitle:             "YT_TITLE",
	YTDesc:              "YT_DESC",
	YTTags:              "YT_TAGS",
	ReadabilityImprover: "READABILITY_IMPROVER",
	Simplifier:          "SIMPLIFIER",
	KeywordDensity:      "KEYWORD_DENSITY",
	SEOChecklist:        "SEO_CHECKLIST",
}

func (t ToolID) Valid() bool {
	return t >= 0 && t < NumTools
}

func (t ToolID) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ToolID(%d)", int(t))
	}
	return toolNames[t]
}

func (t ToolID) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tool id %d", int(t))
	}
	return []byte(toolNames[t]), nil
}

func (t *ToolID) UnmarshalText(b []byte) error {
	id, ok := LookupToolID(string(b))
	if !ok {
		return fmt.Errorf("unknown tool %q", string(b))
	}
	*t = id
	return nil
}

// LookupToolID matches the stable identifier case-insensitively and accepts
// dashes or spaces in place of underscores.
func LookupToolID(s string) (ToolID, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if key == "" {
		return 0, false
	}
	for i, name := range toolNames {
		if name == key {
			return ToolID(i), true
		}
	}
	return 0, false
}

// Mode narrows the article rewriter's output. Other tools ignore it.
type Mode int

const (
	ModeDefault Mode = iota
	ModeSEO
	ModeSimple
	ModeProfessional
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeDefault, ModeSEO, ModeSimple, ModeProfessional}

func (m Mode) String() string {
	switch m {
	case ModeSEO:
		return "seo"
	case ModeSimple:
		return "simple"
	case ModeProfessional:
		return "professional"
	default:
		return "default"
	}
}

// Label is the name shown in the mode switcher.
func (m Mode) Label() string {
	switch m {
	case ModeSEO:
		return "SEO"
	case ModeSimple:
		return "Simple"
	case ModeProfessional:
		return "Business"
	default:
		return "Standard"
	}
}

func (m Mode) Icon() string {
	switch m {
	case ModeSEO:
		return "📈"
	case ModeSimple:
		return "👶"
	case ModeProfessional:
		return "👔"
	default:
		return "⚡"
	}
}

// Next cycles through Modes.
func (m Mode) Next() Mode {
	return Modes[(int(m)+1)%len(Modes)]
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "standard":
		return ModeDefault, nil
	case "seo":
		return ModeSEO, nil
	case "simple", "simplified":
		return ModeSimple, nil
	case "professional", "business":
		return ModeProfessional, nil
	default:
		return ModeDefault, fmt.Errorf("unknown mode %q", s)
	}
}

type Category struct {
	Name  string
	Tools []ToolID
}

type ToolDescriptor struct {
	ID          ToolID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Placeholder string `json:"placeholder"`
	ButtonText  string `json:"buttonText"`
	Category    string `json:"category"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Preferences are the UI settings that survive restarts. Zero values mean
// "not stored yet".
type Preferences struct {
	ActiveTool    ToolID
	HasActiveTool bool
	Theme         Theme
}
