package layout

// Image asset URLs. The rotation pair alternates under the captioned layout;
// the decorative blocks are fixed.
const (
	rotationImageA  = "https://mmbiz.qpic.cn/article-assets/photo-a.jpg"
	rotationImageB  = "https://mmbiz.qpic.cn/article-assets/photo-b.jpg"
	decorativeLeft  = "https://mmbiz.qpic.cn/article-assets/gallery-left.jpg"
	decorativeRight = "https://mmbiz.qpic.cn/article-assets/gallery-right.jpg"
	decorativeSolo  = "https://mmbiz.qpic.cn/article-assets/banner.jpg"
)

var rotationImages = [2]string{rotationImageA, rotationImageB}

// creativeStyle is the only style with its own container; every other style
// shares the plain container.
const creativeStyle = "creative"

const (
	plainContainer    = "padding:20px 16px;background:#ffffff;color:#333333;"
	creativeContainer = "padding:24px 18px;background:linear-gradient(160deg,#fff6e9 0%,#f3e8ff 100%);border-radius:12px;color:#3b2a4d;"

	dividerBlock = `<section class="divider" style="margin:12px auto 20px;width:60px;height:3px;background:#dddddd;"></section>`
)

// blockStyles holds the inline CSS for the text-bearing blocks of one style.
type blockStyles struct {
	title    string
	subtitle string
	text     string
	caption  string
}

var styleTable = map[string]blockStyles{
	"business": {
		title:    "margin:0 0 8px;font-size:22px;font-weight:bold;color:#1f3a5f;text-align:left;",
		subtitle: "margin:24px 0 12px;padding-left:10px;border-left:4px solid #1f3a5f;font-size:17px;font-weight:bold;color:#1f3a5f;",
		text:     "margin:0 0 14px;font-size:15px;line-height:1.8;color:#333333;text-align:justify;",
		caption:  "margin:6px 0 0;font-size:12px;color:#8c8c8c;text-align:center;",
	},
	"simple": {
		title:    "margin:0 0 8px;font-size:20px;font-weight:bold;color:#222222;text-align:center;",
		subtitle: "margin:20px 0 10px;font-size:16px;font-weight:bold;color:#222222;",
		text:     "margin:0 0 12px;font-size:15px;line-height:1.75;color:#3f3f3f;",
		caption:  "margin:6px 0 0;font-size:12px;color:#999999;text-align:center;",
	},
	"education": {
		title:    "margin:0 0 8px;font-size:21px;font-weight:bold;color:#2e7d32;text-align:center;",
		subtitle: "margin:22px 0 12px;padding:6px 12px;background:#e8f5e9;border-radius:4px;font-size:16px;font-weight:bold;color:#2e7d32;",
		text:     "margin:0 0 14px;font-size:15px;line-height:1.9;color:#37474f;text-indent:2em;",
		caption:  "margin:6px 0 0;font-size:12px;color:#689f38;text-align:center;",
	},
	"creative": {
		title:    "margin:0 0 8px;font-size:24px;font-weight:bold;color:#8e24aa;text-align:center;letter-spacing:1px;",
		subtitle: "margin:26px auto 12px;padding:6px 16px;width:fit-content;background:#8e24aa;border-radius:16px;font-size:16px;font-weight:bold;color:#ffffff;text-align:center;",
		text:     "margin:0 0 14px;font-size:15px;line-height:1.9;color:#4a3b5c;",
		caption:  "margin:6px 0 0;font-size:12px;color:#ab47bc;text-align:center;",
	},
}

// fallbackStyle applies to templates whose style is not in styleTable.
const fallbackStyle = "business"

func stylesFor(style string) blockStyles {
	if s, ok := styleTable[style]; ok {
		return s
	}
	return styleTable[fallbackStyle]
}

func containerFor(style string) string {
	if style == creativeStyle {
		return creativeContainer
	}
	return plainContainer
}
