// Package grpc exposes the cross-service token verification endpoint.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/queueflex/auth-service/internal/logging"
	pb "github.com/queueflex/auth-service/internal/proto"
	"github.com/queueflex/auth-service/internal/server/auth"
)

// tokenVerifier is the slice of users.Service this transport needs.
type tokenVerifier interface {
	VerifyToken(token string) auth.Verification
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address string
	tokens  tokenVerifier
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, tv tokenVerifier) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		tokens:  tv,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	// registers service
	pb.RegisterAuthServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
