package grpc

import (
	"fmt"
	"log"
	"net"

	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported alongside the overall ("") status.
const ServiceName = "auto-thread-bot"

// HealthServer exposes grpc.health.v1.Health so a supervisor can probe whether the Discord session is up.
type HealthServer struct {
	server   *grpc.Server
	health   *health.Server
	listener net.Listener
}

// NewHealthServer listens on address. The server reports NOT_SERVING until SetServing(true).
func NewHealthServer(address string) (*HealthServer, error) {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	return &HealthServer{
		server:   srv,
		health:   hs,
		listener: lis,
	}, nil
}

// Addr returns the address the server listens on.
func (h *HealthServer) Addr() string {
	return h.listener.Addr().String()
}

// Start serves in a background goroutine.
func (h *HealthServer) Start() {
	log.Printf("[gRPC] Health server listening on %s", h.Addr())
	go func() {
		if err := h.server.Serve(h.listener); err != nil {
			log.Printf("[gRPC] Health server stopped: %v", err)
		}
	}()
}

// SetServing flips the reported status of both the overall and the bot service.
func (h *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Stop marks the server as shutting down and waits for in-flight checks.
func (h *HealthServer) Stop() {
	h.health.Shutdown()
	h.server.GracefulStop()
}
