package api

import (
	"github.com/gin-gonic/gin"

	"github.com/paasops/glusterfs-broker/internal/middleware"
)

type Server struct {
	instance  *InstanceHandler
	binding   *BindingHandler
	auth      *middleware.AuthMiddleware
	rateLimit *middleware.RateLimitMiddleware
}

func NewServer(
	instance *InstanceHandler,
	binding *BindingHandler,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
) *Server {
	return &Server{
		instance:  instance,
		binding:   binding,
		auth:      auth,
		rateLimit: rateLimit,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup, globalLimit int) {
	api.Use(s.rateLimit.GlobalRateLimit(globalLimit))

	instances := api.Group("/service_instances",
		s.auth.JWTAuth(), s.rateLimit.CallerRateLimit(), s.auth.RequireRole("broker"))
	{
		instances.PUT("/:instance_id", s.instance.ProvisionInstance)
		instances.GET("/:instance_id", s.instance.GetInstance)
		instances.PATCH("/:instance_id", s.instance.UpdateInstance)
		instances.DELETE("/:instance_id", s.instance.DeprovisionInstance)

		instances.PUT("/:instance_id/service_bindings/:binding_id", s.binding.CreateBinding)
		instances.DELETE("/:instance_id/service_bindings/:binding_id", s.binding.DeleteBinding)
	}
}
