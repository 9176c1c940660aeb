package article_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	article "github.com/alnah/go-article"
)

func Example() {
	svc, err := article.New()
	if err != nil {
		log.Fatal(err)
	}
	defer svc.Close()

	doc := "春季新品发布\n一、活动背景\n今年春季我们推出了三款新品。\n[图片]新品外观\n"
	res, err := svc.FromDocument(context.Background(), article.DocumentInput{
		Data:     []byte(doc),
		Filename: "draft.txt",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Title)
	for _, s := range res.Sections {
		fmt.Println(s.Position, s.Type, s.Content)
	}
	fmt.Println(res.TemplateID, res.Variant)
	// Output:
	// 春季新品发布
	// 1 subtitle 一、活动背景
	// 2 text 今年春季我们推出了三款新品。
	// 3 image [图片]新品外观
	// business double-image-with-caption
}

func ExampleService_CreateTemplate() {
	svc, err := article.New()
	if err != nil {
		log.Fatal(err)
	}
	defer svc.Close()

	tmpl, err := svc.CreateTemplate(article.TemplateConfig{
		ID:         "photo-heavy",
		Name:       "Photo heavy",
		BaseID:     article.TemplateCreative,
		ImageRules: &article.ImageRules{MinDoubleNoCaption: 6, MinDoubleWithCaption: 2},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(tmpl.Style, tmpl.Policy)
	fmt.Println(tmpl.SelectVariant(1), tmpl.SelectVariant(2), tmpl.SelectVariant(6))
	// Output:
	// creative threshold(6,2)
	// single-image double-image-with-caption double-image-no-caption
}

func ExampleService_RemoveTemplate() {
	svc, err := article.New()
	if err != nil {
		log.Fatal(err)
	}
	defer svc.Close()

	err = svc.RemoveTemplate(article.TemplateBusiness)
	fmt.Println(errors.Is(err, article.ErrProtectedTemplate), article.KindOf(err))
	// Output:
	// true registry_invariant
}

func ExampleService_FromManual() {
	svc, err := article.New()
	if err != nil {
		log.Fatal(err)
	}
	defer svc.Close()

	res, err := svc.FromManual(context.Background(), article.ManualInput{
		Title: "社区周报",
		Sections: []article.Section{
			{Type: article.SectionSubtitle, Content: "本周要点"},
			{Type: article.SectionImage, Content: "图1 志愿者合影"},
		},
		TemplateID: article.TemplateEducation,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(res.Sections), res.Sections[1].ManualEdit, res.Variant)
	// Output:
	// 2 true single-image
}
