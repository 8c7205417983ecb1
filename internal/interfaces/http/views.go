package http

import (
	"net/http"

	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/algatrack/console/web"
)

var impresorCLP = message.NewPrinter(language.MustParse("es-CL"))

// FormatoMoneda formatea un monto para mostrar: símbolo + separadores de miles
// según locale es-CL. Solo presentación: el valor mismo viaja intacto desde el
// motor de simulación, la consola no redondea ni convierte unidades.
func FormatoMoneda(d decimal.Decimal) string {
	f, _ := d.Float64()
	return impresorCLP.Sprintf("$ %v", number.Decimal(f))
}

// NewViews construye el motor de plantillas sobre el FS embebido.
func NewViews() *html.Engine {
	engine := html.NewFileSystem(http.FS(web.Templates), ".html")
	engine.Directory = "/templates"
	engine.AddFunc("moneda", FormatoMoneda)
	return engine
}
