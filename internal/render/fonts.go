package render

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/deeplook/pandas-100/pkg/logger"
)

// FontRole is the resolved binding for one logical font role: either a
// registered TTF family or a built-in core font.
type FontRole struct {
	Family string
	Style  string
	Custom bool
}

// FontSet holds the three roles used on cards. Resolved once per run,
// read-only afterwards.
type FontSet struct {
	Regular FontRole
	Bold    FontRole
	Mono    FontRole

	translate func(string) string
}

type fontSpec struct {
	family   string
	file     string
	fallback string
	style    string
	link     string
}

var (
	regularSpec = fontSpec{
		family:   "DejaVu-Sans-Condensed",
		file:     "DejaVuSansCondensed.ttf",
		fallback: "Helvetica",
		link:     "https://github.com/dejavu-fonts/dejavu-fonts",
	}
	boldSpec = fontSpec{
		family:   "DejaVu-Sans-Condensed-Bold",
		file:     "DejaVuSansCondensed-Bold.ttf",
		fallback: "Helvetica",
		style:    "B",
		link:     "https://github.com/dejavu-fonts/dejavu-fonts",
	}
	monoSpec = fontSpec{
		family:   "Monospace-Condensed-Semibold",
		file:     "nk57-monospace-cd-sb.ttf",
		fallback: "Courier",
		link:     "http://www.dafont.com/nk57-monospace.font",
	}
)

// ResolveFonts binds the three roles against the font directory. Missing
// files fall back to core fonts with a warning; this step never fails.
func ResolveFonts(pdf *gofpdf.Fpdf, dir string, log *logger.Logger) *FontSet {
	fs := &FontSet{translate: pdf.UnicodeTranslatorFromDescriptor("")}
	fs.Regular = resolveRole(pdf, dir, regularSpec, log)
	fs.Bold = resolveRole(pdf, dir, boldSpec, log)
	fs.Mono = resolveRole(pdf, dir, monoSpec, log)
	return fs
}

func resolveRole(pdf *gofpdf.Fpdf, dir string, spec fontSpec, log *logger.Logger) FontRole {
	path := filepath.Join(dir, spec.file)
	if _, err := os.Stat(path); err == nil {
		pdf.AddUTF8Font(spec.family, "", path)
		log.Debug("registered font %s from %s", spec.family, path)
		return FontRole{Family: spec.family, Custom: true}
	}

	fallback := spec.fallback
	if spec.style != "" {
		fallback += "-" + spec.style
	}
	log.Warn("font %s not found, using %s", spec.family, fallback)
	log.Warn("see %s", spec.link)
	return FontRole{Family: spec.fallback, Style: spec.style}
}

// starRun matches the star-rating marks used in the exercise files. Core
// fonts have no glyphs for them.
var starRun = regexp.MustCompile(`★+☆*`)

// Text prepares a string for drawing with the given role. Custom TTF
// fonts take UTF-8 as-is; core fonts get star ratings reduced to ASCII and
// the text mapped through the CP1252 translator.
func (fs *FontSet) Text(role FontRole, s string) string {
	if role.Custom {
		return s
	}
	s = starRun.ReplaceAllStringFunc(s, func(m string) string {
		return strings.Repeat("*", strings.Count(m, "★"))
	})
	return fs.translate(s)
}
