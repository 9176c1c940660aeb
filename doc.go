// Package article assembles formatted articles from documents.
//
// # Quick Start
//
// Create a service, build an article from a document, and close when done:
//
//	svc, err := article.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	data, _ := os.ReadFile("draft.docx")
//	res, err := svc.FromDocument(ctx, article.DocumentInput{
//	    Data:     data,
//	    Filename: "draft.docx",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Markup)
//
// The first paragraph of the document becomes the title. Every following
// paragraph is classified as text, subtitle or image caption and numbered
// from 1.
//
// # Pipeline
//
//  1. Paragraph extraction (.docx, Markdown, HTML or plain text)
//  2. Classification of each paragraph by ordered rules
//  3. Template resolution (explicit id or the registry default)
//  4. Layout rendering with the variant chosen by the template policy
//
// ExportPDF prints a result to PDF with headless Chrome (go-rod).
//
// # Templates
//
// Four built-in templates are always registered: business (the default),
// simple, education and creative. Custom templates inherit their style and
// policy from a base template and may override the image thresholds:
//
//	tmpl, err := svc.CreateTemplate(article.TemplateConfig{
//	    ID:         "photo-heavy",
//	    Name:       "Photo heavy",
//	    BaseID:     article.TemplateCreative,
//	    ImageRules: &article.ImageRules{MinDoubleNoCaption: 6, MinDoubleWithCaption: 2},
//	})
//
// # Manual Articles
//
// FromManual accepts typed sections or pasted text:
//
//	res, err := svc.FromManual(ctx, article.ManualInput{
//	    Title:   "春季新品发布",
//	    Content: "一、活动背景\n今年春季我们推出了三款新品。",
//	})
//
// # Parallel Processing
//
// For batch work, use ServicePool. Pooled services share one registry:
//
//	pool := article.NewServicePool(article.ResolvePoolSize(0))
//	defer pool.Close()
//
//	svc, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(svc)
//
// # Errors
//
// Errors match the sentinels of this package with errors.Is. KindOf and
// Report map an error to one of five kinds for transports: input,
// template_not_found, registry_invariant, unreadable_document and internal.
//
// # Browser Requirements
//
// PDF export requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package article
