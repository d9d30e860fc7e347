package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Glyph is a themed icon drawing: the symbol and the color it renders in.
type Glyph struct {
	Symbol string
	Color  lipgloss.Color
}

var (
	colorAccent  = lipgloss.Color("33")
	colorNeutral = lipgloss.Color("249")
	colorDim     = lipgloss.Color("243")
	colorGreen   = lipgloss.Color("34")
	colorYellow  = lipgloss.Color("214")
	colorRed     = lipgloss.Color("167")
	colorPurple  = lipgloss.Color("135")
	colorCyan    = lipgloss.Color("37")
)

// glyphs is the icon theme: every name the UI asks for by exact match.
var glyphs = map[string]Glyph{
	"tab-new-filled-symbolic":            {Symbol: "⊞", Color: colorNeutral},
	"value-increase-symbolic":            {Symbol: "+", Color: colorNeutral},
	"value-decrease-symbolic":            {Symbol: "−", Color: colorNeutral},
	"loupe-symbolic":                     {Symbol: "⌕", Color: colorNeutral},
	"folder-symbolic":                    {Symbol: "▤", Color: colorAccent},
	"folder-new-symbolic":                {Symbol: "⊕", Color: colorAccent},
	"folder-open-symbolic":               {Symbol: "▥", Color: colorAccent},
	"edit-copy-symbolic":                 {Symbol: "⧉", Color: colorNeutral},
	"paper-symbolic":                     {Symbol: "▢", Color: colorNeutral},
	"document-open-symbolic":             {Symbol: "▷", Color: colorNeutral},
	"arrow-into-box-symbolic":            {Symbol: "⇲", Color: colorNeutral},
	"edit-symbolic":                      {Symbol: "✎", Color: colorNeutral},
	"user-trash-symbolic":                {Symbol: "♻", Color: colorRed},
	"cross-small-square-filled-symbolic": {Symbol: "⊠", Color: colorNeutral},
	"external-link-symbolic":             {Symbol: "↗", Color: colorNeutral},
	"cut-symbolic":                       {Symbol: "✂", Color: colorNeutral},
	"copy-symbolic":                      {Symbol: "⧉", Color: colorNeutral},
	"clipboard-symbolic":                 {Symbol: "⎘", Color: colorNeutral},
	"edit-select-all-symbolic":           {Symbol: "▣", Color: colorNeutral},
	"history-undo-symbolic":              {Symbol: "↺", Color: colorNeutral},
	"grid-symbolic":                      {Symbol: "▦", Color: colorNeutral},
	"list-large-symbolic":                {Symbol: "☰", Color: colorNeutral},
	"view-conceal-symbolic":              {Symbol: "◌", Color: colorNeutral},
	"settings-symbolic":                  {Symbol: "⚙", Color: colorNeutral},
	"info-outline-symbolic":              {Symbol: "ⓘ", Color: colorNeutral},
	"dock-left-symbolic":                 {Symbol: "⊣", Color: colorNeutral},
	"image-round-symbolic":               {Symbol: "◉", Color: colorPurple},
	"terminal-symbolic":                  {Symbol: "›_", Color: colorGreen},
	"symbolic-link-symbolic":             {Symbol: "↪", Color: colorCyan},
	"package-x-generic-symbolic":         {Symbol: "⬡", Color: colorYellow},
	"archive-extract-symbolic":           {Symbol: "⇱", Color: colorYellow},
	"brush-monitor-symbolic":             {Symbol: "✦", Color: colorNeutral},
	"display-symbolic":                   {Symbol: "⛶", Color: colorNeutral},
	"shell-overview-symbolic":            {Symbol: "❖", Color: colorNeutral},
	"empty-trash-bin-symbolic":           {Symbol: "⊘", Color: colorRed},
	"view-grid-symbolic":                 {Symbol: "▦", Color: colorNeutral},
	"view-list-symbolic":                 {Symbol: "☰", Color: colorNeutral},
	"view-more-symbolic":                 {Symbol: "⋮", Color: colorNeutral},
	"view-sort-ascending-symbolic":       {Symbol: "↑", Color: colorNeutral},
	"view-sort-descending-symbolic":      {Symbol: "↓", Color: colorNeutral},
	"text-x-generic-symbolic":            {Symbol: "≡", Color: colorNeutral},
	"image-x-generic-symbolic":           {Symbol: "◩", Color: colorPurple},
	"audio-x-generic-symbolic":           {Symbol: "♫", Color: colorCyan},
	"video-x-generic-symbolic":           {Symbol: "▶", Color: colorPurple},
	"font-x-generic-symbolic":            {Symbol: "Aa", Color: colorNeutral},
	"application-x-executable-symbolic":  {Symbol: "⚙", Color: colorGreen},
	"application-x-generic-symbolic":     {Symbol: "▢", Color: colorNeutral},
}

// classes maps icon name prefixes to a generic glyph for names the theme
// has no exact entry for.
var classes = []struct {
	prefix string
	glyph  Glyph
}{
	{"folder", Glyph{Symbol: "▤", Color: colorAccent}},
	{"text-", Glyph{Symbol: "≡", Color: colorNeutral}},
	{"image-", Glyph{Symbol: "◩", Color: colorPurple}},
	{"audio-", Glyph{Symbol: "♫", Color: colorCyan}},
	{"video-", Glyph{Symbol: "▶", Color: colorPurple}},
	{"font-", Glyph{Symbol: "Aa", Color: colorNeutral}},
	{"package-", Glyph{Symbol: "⬡", Color: colorYellow}},
	{"archive-", Glyph{Symbol: "⬡", Color: colorYellow}},
	{"application-", Glyph{Symbol: "▢", Color: colorNeutral}},
}

var fallbackGlyph = Glyph{Symbol: "•", Color: colorDim}

// Resolve looks an icon name up in the theme. Exact names win, then the
// name with a -symbolic suffix appended, then a prefix class, then the
// fallback dot. It never fails; unknown names still draw something.
func Resolve(name string) Glyph {
	if g, ok := glyphs[name]; ok {
		return g
	}
	if !strings.HasSuffix(name, "-symbolic") {
		if g, ok := glyphs[name+"-symbolic"]; ok {
			return g
		}
	}
	for _, c := range classes {
		if strings.HasPrefix(name, c.prefix) {
			return c.glyph
		}
	}
	return fallbackGlyph
}

// extensionColors tints file names in listings by extension.
var extensionColors = map[string]lipgloss.Color{
	"go":   colorCyan,
	"rs":   colorYellow,
	"py":   colorGreen,
	"js":   colorYellow,
	"ts":   colorAccent,
	"c":    colorAccent,
	"h":    colorPurple,
	"sh":   colorGreen,
	"md":   colorNeutral,
	"json": colorYellow,
	"yaml": colorYellow,
	"yml":  colorYellow,
	"toml": colorYellow,
	"png":  colorPurple,
	"jpg":  colorPurple,
	"jpeg": colorPurple,
	"gif":  colorPurple,
	"svg":  colorPurple,
	"mp3":  colorCyan,
	"flac": colorCyan,
	"mp4":  colorPurple,
	"mkv":  colorPurple,
	"zip":  colorRed,
	"tar":  colorRed,
	"gz":   colorRed,
	"xz":   colorRed,
	"bz2":  colorRed,
	"pdf":  colorRed,
}

// ForExtension returns the listing color for a file extension, without
// the leading dot and case-insensitive.
func ForExtension(ext string) (lipgloss.Color, bool) {
	c, ok := extensionColors[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return c, ok
}
