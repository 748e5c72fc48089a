package http

import (
	"github.com/gin-gonic/gin"
)

// Server wraps the configured gin engine behind the app's single serving
// entry point.
type Server struct {
	Engine *gin.Engine
}

func NewServer(cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg)}
}

// Run blocks, serving the gateway on the given address.
func (s *Server) Run(address string) error {
	return s.Engine.Run(address)
}
