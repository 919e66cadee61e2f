package grpcserver

import (
	"context"

	"google.golang.org/grpc"

	"musicschool/internal/catalog"
	"musicschool/pkg/models"
)

const (
	ServiceName    = "musicschool.CatalogService"
	SearchMethod   = "/" + ServiceName + "/Search"
	OptionsMethod  = "/" + ServiceName + "/Options"
	FeaturedMethod = "/" + ServiceName + "/Featured"
)

type SearchRequest struct {
	catalog.ListQuery
}

type SearchResponse struct {
	Total    int              `json:"total"`
	Criteria catalog.Criteria `json:"criteria"`
	Items    []models.Course  `json:"items"`
}

type OptionsRequest struct{}

type OptionsResponse struct {
	catalog.Options
}

type FeaturedRequest struct{}

type FeaturedResponse struct {
	Items []models.Course `json:"items"`
}

type CatalogServiceServer interface {
	Search(context.Context, *SearchRequest) (*SearchResponse, error)
	Options(context.Context, *OptionsRequest) (*OptionsResponse, error)
	Featured(context.Context, *FeaturedRequest) (*FeaturedResponse, error)
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Search", Handler: searchHandler},
		{MethodName: "Options", Handler: optionsHandler},
		{MethodName: "Featured", Handler: featuredHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "musicschool/catalog.json",
}

func searchHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).Search(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SearchMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).Search(ctx, req.(*SearchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func optionsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OptionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).Options(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: OptionsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).Options(ctx, req.(*OptionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func featuredHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(FeaturedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).Featured(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FeaturedMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).Featured(ctx, req.(*FeaturedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Client is a thin caller for CatalogService using the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error) {
	out := new(SearchResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, SearchMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Options(ctx context.Context, in *OptionsRequest, opts ...grpc.CallOption) (*OptionsResponse, error) {
	out := new(OptionsResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, OptionsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Featured(ctx context.Context, in *FeaturedRequest, opts ...grpc.CallOption) (*FeaturedResponse, error) {
	out := new(FeaturedResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FeaturedMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
