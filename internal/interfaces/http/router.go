package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/algatrack/console/internal/application/auth"
	"github.com/algatrack/console/internal/application/simulacion"
	"github.com/algatrack/console/internal/application/usecase"
	"github.com/algatrack/console/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	DashboardUC     *usecase.DashboardUseCase
	LotesUC         *usecase.LotesUseCase
	PedidosUC       *usecase.PedidosUseCase
	ClientesUC      *usecase.ClientesUseCase
	UsuariosUC      *usecase.UsuariosUseCase
	ConfiguracionUC *usecase.ConfiguracionUseCase
	CalendarioUC    *usecase.CalendarioUseCase
	SimulacionSvc   *simulacion.Service

	SessionSecret     string
	SessionExpMinutes int
}

// Router registra las rutas de la consola con su tabla de permisos:
//
//	dashboard, calendario              → cualquier rol autenticado
//	simulacion, pedidos, clientes      → Comercial, Gerencia
//	lotes                              → Personal, Gerencia
//	usuarios, configuracion            → solo Gerencia
//
// El guard se evalúa en cada petición sobre el rol cacheado; el API de negocio
// re-valida de todos modos cada llamada con su propia sesión.
func Router(app *fiber.App, deps RouterDeps) {
	loginHandler := NewLoginHandler(deps.AuthUC, deps.SessionExpMinutes)

	// Público
	app.Get("/login", loginHandler.Form)
	app.Post("/login", loginHandler.Login)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(RutaLogin, fiber.StatusFound)
	})

	// Protegido: sesión requerida
	sesion := RequireSesion(deps.SessionSecret)
	app.Post("/logout", sesion, loginHandler.Logout)

	// Cualquier rol autenticado
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	app.Get("/dashboard", sesion, dashboardHandler.Ver)

	calendarioHandler := NewCalendarioHandler(deps.CalendarioUC)
	app.Get("/calendario", sesion, calendarioHandler.Ver)

	// Comercial y Gerencia
	comercial := RequirePerfil(domain.RolComercial, domain.RolGerencia)

	simulacionHandler := NewSimulacionHandler(deps.SimulacionSvc)
	app.Get("/simulacion", sesion, comercial, simulacionHandler.Form)
	app.Post("/simulacion", sesion, comercial, simulacionHandler.Ejecutar)
	app.Post("/simulacion/confirmar", sesion, comercial, simulacionHandler.Confirmar)

	pedidosHandler := NewPedidosHandler(deps.PedidosUC, deps.ClientesUC)
	app.Get("/pedidos", sesion, comercial, pedidosHandler.Listar)
	app.Post("/pedidos", sesion, comercial, pedidosHandler.Crear)
	app.Post("/pedidos/:id/estado", sesion, comercial, pedidosHandler.ActualizarEstado)
	app.Post("/pedidos/:id/eliminar", sesion, comercial, pedidosHandler.Eliminar)

	clientesHandler := NewClientesHandler(deps.ClientesUC)
	app.Get("/clientes", sesion, comercial, clientesHandler.Listar)
	app.Post("/clientes", sesion, comercial, clientesHandler.Crear)
	app.Post("/clientes/:id/eliminar", sesion, comercial, clientesHandler.Eliminar)

	// Personal y Gerencia
	campo := RequirePerfil(domain.RolPersonal, domain.RolGerencia)

	lotesHandler := NewLotesHandler(deps.LotesUC)
	app.Get("/lotes", sesion, campo, lotesHandler.Listar)
	app.Post("/lotes", sesion, campo, lotesHandler.Crear)
	app.Post("/lotes/:id/eliminar", sesion, campo, lotesHandler.Eliminar)
	app.Post("/lotes/:id/cosechar", sesion, campo, lotesHandler.Cosechar)

	// Solo Gerencia
	gerencia := RequirePerfil(domain.RolGerencia)

	usuariosHandler := NewUsuariosHandler(deps.UsuariosUC)
	app.Get("/usuarios", sesion, gerencia, usuariosHandler.Listar)
	app.Post("/usuarios", sesion, gerencia, usuariosHandler.Crear)
	app.Post("/usuarios/:id/eliminar", sesion, gerencia, usuariosHandler.Eliminar)

	configuracionHandler := NewConfiguracionHandler(deps.ConfiguracionUC)
	app.Get("/configuracion", sesion, gerencia, configuracionHandler.Ver)
	app.Post("/configuracion/sistema", sesion, gerencia, configuracionHandler.GuardarEconomicos)
	app.Post("/configuracion/estaciones/:id", sesion, gerencia, configuracionHandler.GuardarEstacion)
}
