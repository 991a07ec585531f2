package grpc

import (
	"context"

	pb "github.com/queueflex/auth-service/internal/proto"
)

// VerifyToken is the sole cross-service trust boundary: the queue service
// calls it to authorize its own endpoints without knowing the signing
// secret. Every failure mode produces the same {false, 0, false} response
// and never an RPC-level error.
func (s *GRPCServer) VerifyToken(ctx context.Context, req *pb.VerifyTokenRequest) (*pb.VerifyTokenResponse, error) {

	v := s.tokens.VerifyToken(req.GetToken())

	s.logger.Info(ctx, "token verification", "valid", v.Valid)

	return &pb.VerifyTokenResponse{
		IsValid: v.Valid,
		UserId:  v.UserID,
		IsAdmin: v.IsAdmin,
	}, nil
}

// RegisterUser exists in the service contract but registration happens over
// REST only. The stub keeps the method reachable so callers get an explicit
// negative response instead of an unknown-method error.
func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	return &pb.RegisterUserResponse{
		Success: false,
		Message: "Not implemented",
		UserId:  0,
	}, nil
}

// Login is a contract stub like RegisterUser.
func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	return &pb.LoginResponse{
		Token:   "",
		Admin:   false,
		Success: false,
		Message: "Not implemented",
	}, nil
}
