// Package view renders catalog and cart state to HTML. Rendering is a pure
// function of the data passed in; templates are parsed once at
// construction and no store state is reached for implicitly.
package view

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/velvetglow/storefront/internal/models"
)

// Capitalize upper-cases the first letter of a category tag for display.
func Capitalize(s string) string {

	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// FormatPrice renders an amount with the canonical currency symbol and two
// decimal places.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// CategoryIcon maps a category tag to its display glyph. Unrecognized
// categories get the default treatment.
func CategoryIcon(category string) string {

	icons := map[string]string{
		"face": "user-circle",
		"eyes": "eye",
		"lips": "kiss",
		"body": "spa",
	}

	if icon, ok := icons[category]; ok {
		return icon
	}

	return "star"
}

// ImagePath resolves a product image to a root-relative path. Absence is
// handled by the category icon fallback in the templates.
func ImagePath(image string) string {

	if image == "" || strings.HasPrefix(image, "/") || strings.HasPrefix(image, "http") {
		return image
	}

	return "/" + image
}

type HomePageData struct {
	Featured  []models.Product
	ItemCount int
}

type ProductsPageData struct {
	Products  []models.Product
	Category  string
	Search    string
	Sort      string
	ItemCount int
}

type CartPageData struct {
	Lines     []models.CartLine
	Subtotal  float64
	Tax       float64
	Total     float64
	ItemCount int
}

type ConfirmationData struct {
	Order           *models.OrderRecord
	RedirectSeconds int
	RedirectURL     string
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {

	tmpl := template.New("storefront").Funcs(template.FuncMap{
		"capitalize": Capitalize,
		"price":      FormatPrice,
		"icon":       CategoryIcon,
		"imagePath":  ImagePath,
	})

	tmpl, err := tmpl.Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) HomePage(w io.Writer, data HomePageData) error {
	return r.tmpl.ExecuteTemplate(w, "home", data)
}

func (r *Renderer) ProductsPage(w io.Writer, data ProductsPageData) error {
	return r.tmpl.ExecuteTemplate(w, "products", data)
}

func (r *Renderer) CartPage(w io.Writer, data CartPageData) error {
	return r.tmpl.ExecuteTemplate(w, "cart", data)
}

func (r *Renderer) ConfirmationPage(w io.Writer, data ConfirmationData) error {
	return r.tmpl.ExecuteTemplate(w, "confirmation", data)
}
