package router

import (
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/gnomesuite/petstore-api/internal/handler"
	"github.com/gnomesuite/petstore-api/internal/middleware"
)

type Handlers struct {
	Health *handler.HealthHandler
	Pets   *handler.PetHandler
	Orders *handler.OrderHandler
	Users  *handler.UserHandler
}

// New assembles the gin engine: middleware chain, validator tweaks, and the
// full route table.
func New(log *slog.Logger, h Handlers) *gin.Engine {
	setupValidation()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))
	r.Use(cors.Default())

	r.GET("/", h.Health.Root)
	r.GET("/health", h.Health.Health)

	r.GET("/pets", h.Pets.List)
	r.GET("/pets/:id", h.Pets.GetByID)
	r.POST("/pets", h.Pets.Create)
	r.PUT("/pets/:id", h.Pets.Update)
	r.DELETE("/pets/:id", h.Pets.Delete)

	r.GET("/orders", h.Orders.List)
	r.GET("/orders/:id", h.Orders.GetByID)
	r.POST("/orders", h.Orders.Create)
	r.DELETE("/orders/:id", h.Orders.Delete)

	r.GET("/users", h.Users.List)
	r.GET("/users/:id", h.Users.GetByID)
	r.POST("/users", h.Users.Create)
	r.DELETE("/users/:id", h.Users.Delete)

	r.GET("/inventory", h.Pets.Inventory)

	return r
}

var validationOnce sync.Once

// setupValidation teaches the binding validator to report json field names
// and to treat decimal prices as numbers so gt/min apply. The binding
// validator is process-global, hence the Once.
func setupValidation() {
	validationOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" {
				name, _, _ = strings.Cut(fld.Tag.Get("form"), ",")
			}
			if name == "-" {
				return ""
			}
			return name
		})

		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
	})
}
