package classify

import (
	"regexp"
	"strings"
)

// figureGlyph is the CJK "figure" character that anchors most image rules.
const figureGlyph = "图"

// Rule names reported in Section.Rule.
const (
	RuleImageMarker      = "image-marker"
	RuleFigureNumber     = "figure-number"
	RuleBareFigure       = "bare-figure"
	RuleCaptionKeyword   = "caption-keyword"
	RuleLeadingNumber    = "leading-number"
	RuleFigureSentence   = "figure-sentence"
	RuleFigurePrefix     = "figure-prefix"
	RuleFigureCaption    = "figure-caption"
	RuleSubtitleKeyword  = "subtitle-keyword"
	RuleTopicHighlight   = "topic-highlight"
	RuleClosingMark      = "closing-mark"
	RuleColonEnding      = "colon-ending"
	RuleChapterPrefix    = "chapter-prefix"
	RuleSubtitleFollowUp = "subtitle-follow-up"
	RuleParallelActivity = "parallel-activity"
	RuleText             = "text"
)

// imageMarkers are bracketed placeholders left where an image was pasted.
// Matched case-insensitively.
var imageMarkers = []string{
	"[图片]", "[图]", "[image]", "[img]", "[photo]", "[picture]",
	"【图片】", "【图】", "【image】", "【img】",
	"［图片］", "［图］", "［image］", "［img］",
}

// bareFigureWords are paragraphs that consist of nothing but a figure noun.
var bareFigureWords = []string{
	"图", "图片", "图示", "插图", "配图", "照片",
	"image", "img", "figure", "fig", "picture", "photo",
}

// captionKeywords mark a paragraph as an image caption wherever they appear.
var captionKeywords = []string{
	"图注", "图说", "题注", "注释", "图片说明", "图片来源",
	"说明：", "描述：", "备注：", "注：",
	"caption", "annotation",
}

// subtitleKeywords hint that a short line is a heading.
var subtitleKeywords = []string{
	// structure
	"引言", "前言", "导语", "概述", "简介", "总结", "小结", "结语", "结论",
	"摘要", "背景", "目录", "附录", "展望", "回顾",
	// emphasis
	"核心", "要点", "重点", "亮点", "提示", "特色", "优势", "指南", "须知",
	// domain
	"方案", "案例", "流程", "步骤", "目标", "成果", "计划", "措施", "政策",
	// latin
	"introduction", "overview", "summary", "conclusion", "background", "chapter",
}

// bodyOpeners are words that usually start a body sentence rather than a heading.
var bodyOpeners = []string{
	"我们", "我", "你们", "你", "他们", "他", "她们", "她", "它们", "它",
	"这些", "这个", "这", "那些", "那", "但是", "但", "而且", "而",
	"因为", "所以", "因此", "如果", "虽然", "然而", "同时", "此外", "并且", "另外",
	"we ", "i ", "it ", "this ", "that ", "the ", "but ", "and ", "so ",
}

// activityWords turn a comma-separated short line into a parallel-structure subtitle.
var activityWords = []string{
	"活动", "服务", "培训", "讲座", "比赛", "展览", "咨询", "志愿", "课程", "体验",
}

// sentenceEndings disqualify a subtitle candidate.
const sentenceEndings = "，,。.；;！!？?"

// closingMarks end a subtitle-style line.
const closingMarks = "：:）)】」』》]"

// colonMarks end a lead-in line.
const colonMarks = "：:"

var (
	// figure glyph followed by an Arabic, full-width, CJK numeral or Latin letter
	figureNumberPattern = regexp.MustCompile(`图\s*[0-9０-９一二三四五六七八九十百A-Za-z]`)

	// digit enumerator at line start: "1." "2、" "3．"
	leadingNumberPattern = regexp.MustCompile(`^\d+[.、．]`)

	// figure glyph + numeral + whitespace + caption text
	figureCaptionPattern = regexp.MustCompile(`图\s*[0-9０-９一二三四五六七八九十]+\s+\S+`)
)

// figureSentencePatterns describe an illustration in prose.
var figureSentencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^图\S{0,6}(所示|展示|显示|为|是)`),
	regexp.MustCompile(`如图\S{0,6}所示`),
	regexp.MustCompile(`[上下左右]图(为|是|所示|展示|中)`),
	regexp.MustCompile(`示意图|效果图|插图|配图`),
	regexp.MustCompile(`(?i)^(figure|fig\.?)\s*\S*\s+(shows|illustrates|depicts)`),
	regexp.MustCompile(`(?i)as shown in (the )?(figure|image|picture)`),
	regexp.MustCompile(`(?i)\billustration\b`),
}

// topicHighlightPatterns are heading shapes that need no keyword.
var topicHighlightPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^【[^】]+】$`),
	regexp.MustCompile(`^「[^」]+」$`),
	regexp.MustCompile(`^[一二三四五六七八九十]是`),
	regexp.MustCompile(`^(关于|聚焦|走进|探索|如何|为什么|怎样)`),
	regexp.MustCompile(`^#{1,6}\s*\S`),
	regexp.MustCompile(`^[★☆●◆■▶►✦✧]`),
}

// chapterPrefixPatterns are enumerators that open a heading.
var chapterPrefixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^第[0-9一二三四五六七八九十百]+[章节部分篇条讲课]`),
	regexp.MustCompile(`^[一二三四五六七八九十]+[、.．]`),
	regexp.MustCompile(`^[（(][0-9一二三四五六七八九十]+[)）]`),
	regexp.MustCompile(`^\d+、`),
	regexp.MustCompile(`(?i)^(chapter|part|section)\s*\d+`),
}

// imageRule is one entry of the prioritized image rule table.
type imageRule struct {
	name  string
	match func(p string) bool
}

// imageRules are evaluated in order; the first match classifies the paragraph as an image.
var imageRules = []imageRule{
	{RuleImageMarker, func(p string) bool { return containsAny(strings.ToLower(p), imageMarkers) }},
	{RuleFigureNumber, figureNumberPattern.MatchString},
	{RuleBareFigure, func(p string) bool { return equalsAny(strings.ToLower(p), bareFigureWords) }},
	{RuleCaptionKeyword, func(p string) bool { return containsAny(strings.ToLower(p), captionKeywords) }},
	{RuleLeadingNumber, leadingNumberPattern.MatchString},
	{RuleFigureSentence, func(p string) bool { return matchesAny(p, figureSentencePatterns) }},
	{RuleFigurePrefix, func(p string) bool { return strings.HasPrefix(p, figureGlyph) }},
	{RuleFigureCaption, func(p string) bool {
		return strings.Contains(p, figureGlyph) && figureCaptionPattern.MatchString(p)
	}},
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func equalsAny(s string, words []string) bool {
	for _, w := range words {
		if s == w {
			return true
		}
	}
	return false
}

func hasPrefixAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func matchesAny(s string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// endsWithAny reports whether the last rune of s is one of marks.
func endsWithAny(s, marks string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return strings.ContainsRune(marks, r[len(r)-1])
}
