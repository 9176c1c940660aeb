package article

import (
	"context"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// paragraphPool mixes lines that hit every classification rule family.
var paragraphPool = []string{
	"一、活动背景",
	"今年春季我们推出了三款新品，深受用户欢迎。",
	"[图片]新品外观",
	"图1 新品细节",
	"图片说明：现场照片",
	"核心亮点",
	"我们的团队",
	"关于我们",
	"第一章 开端",
	"报名时间：",
	"志愿服务，社区活动",
	"Summary",
	"plain english sentence.",
	"如图所示，产品已经上市。",
	"图",
}

func genLines(t *rapid.T) []string {
	return rapid.SliceOfN(rapid.SampledFrom(paragraphPool), 1, 40).Draw(t, "lines")
}

func TestProperty_FromDocument(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ids := []string{"", TemplateBusiness, TemplateSimple, TemplateEducation, TemplateCreative}

	rapid.Check(t, func(t *rapid.T) {
		lines := genLines(t)
		id := rapid.SampledFrom(ids).Draw(t, "template")
		in := DocumentInput{Data: []byte(strings.Join(lines, "\n")), TemplateID: id}

		res, err := svc.FromDocument(context.Background(), in)
		if err != nil {
			t.Fatalf("FromDocument() error: %v", err)
		}

		if res.Title != lines[0] {
			t.Fatalf("Title = %q, want %q", res.Title, lines[0])
		}
		if len(res.Sections) != len(lines)-1 {
			t.Fatalf("len(Sections) = %d, want %d", len(res.Sections), len(lines)-1)
		}
		for i, s := range res.Sections {
			if s.Position != i+1 {
				t.Fatalf("Sections[%d].Position = %d, want %d", i, s.Position, i+1)
			}
			if s.Content != lines[i+1] {
				t.Fatalf("Sections[%d].Content = %q, want %q", i, s.Content, lines[i+1])
			}
			if !s.Type.Valid() || s.ManualEdit {
				t.Fatalf("Sections[%d] = %+v", i, s)
			}
		}

		tmpl, err := svc.Template(res.TemplateID)
		if err != nil {
			t.Fatalf("Template(%q) error: %v", res.TemplateID, err)
		}
		if want := tmpl.SelectVariant(res.ImageCount()).String(); res.Variant != want {
			t.Fatalf("Variant = %q, want %q", res.Variant, want)
		}

		again, err := svc.FromDocument(context.Background(), in)
		if err != nil {
			t.Fatalf("second FromDocument() error: %v", err)
		}
		if again.Markup != res.Markup {
			t.Fatal("rendering is not deterministic")
		}
	})
}

func TestProperty_FromManualSections(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	types := []SectionType{SectionText, SectionSubtitle, SectionImage}

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(t, "n")
		sections := make([]Section, n)
		for i := range sections {
			sections[i] = Section{
				Type:     rapid.SampledFrom(types).Draw(t, "type"),
				Content:  rapid.SampledFrom(paragraphPool).Draw(t, "content"),
				Position: rapid.Int().Draw(t, "position"),
			}
		}

		res, err := svc.FromManual(context.Background(), ManualInput{Title: "t", Sections: sections})
		if err != nil {
			t.Fatalf("FromManual() error: %v", err)
		}
		for i, s := range res.Sections {
			if s.Position != i+1 || !s.ManualEdit || s.Type != sections[i].Type {
				t.Fatalf("Sections[%d] = %+v", i, s)
			}
		}
		if strings.Count(res.Markup, `<h2 `) != countType(res.Sections, SectionSubtitle) {
			t.Fatal("every subtitle section should render one heading")
		}
	})
}

func countType(sections []Section, typ SectionType) int {
	n := 0
	for _, s := range sections {
		if s.Type == typ {
			n++
		}
	}
	return n
}
