package grpcserver

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"musicschool/internal/catalog"
)

type Server struct {
	Store *catalog.Store
}

func NewServer(store *catalog.Store) *Server {
	return &Server{Store: store}
}

func (s *Server) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request required")
	}
	cr, err := req.Criteria()
	if err != nil {
		if catalog.IsClientError(err) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, "search failed")
	}

	items := s.Store.Current().Search(cr)
	return &SearchResponse{Total: len(items), Criteria: cr, Items: items}, nil
}

func (s *Server) Options(ctx context.Context, req *OptionsRequest) (*OptionsResponse, error) {
	return &OptionsResponse{Options: catalog.SearchOptions()}, nil
}

func (s *Server) Featured(ctx context.Context, req *FeaturedRequest) (*FeaturedResponse, error) {
	return &FeaturedResponse{Items: s.Store.Current().Featured()}, nil
}

// LoggingInterceptor logs one line per unary call.
func LoggingInterceptor(logger *log.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = log.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Printf("[grpc] %s %s %s", info.FullMethod, status.Code(err), time.Since(start))
		return resp, err
	}
}

// New builds a grpc.Server with the catalog service registered.
func New(store *catalog.Store, logger *log.Logger) *grpc.Server {
	gs := grpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor(logger)))
	RegisterCatalogServiceServer(gs, NewServer(store))
	return gs
}
