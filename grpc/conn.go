package grpc

import (
	"crypto/tls"
	"fmt"
	"net/url"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

// DialTarget resolves a grpc endpoint url into a dial target and the
// transport credentials its scheme calls for
func DialTarget(endpoint string) (string, grpc.DialOption, error) {
	grpcURL, err := url.Parse(endpoint)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse grpc url: %w", err)
	}

	var secureOpt grpc.DialOption
	switch grpcURL.Scheme {
	case "http":
		secureOpt = grpc.WithInsecure()
	case "https":
		creds := credentials.NewTLS(&tls.Config{
			MinVersion: tls.VersionTLS12,
		})
		secureOpt = grpc.WithTransportCredentials(creds)
	default:
		return "", nil, fmt.Errorf("unknown grpc url scheme: %s", grpcURL.Scheme)
	}

	if grpcURL.Host == "" {
		return "", nil, fmt.Errorf("grpc url %q has no host", endpoint)
	}

	return grpcURL.Host, secureOpt, nil
}

// NewGrpcConnection parses a GRPC endpoint and creates a connection to it.
// The connection is established lazily on the first call.
func NewGrpcConnection(endpoint string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	target, secureOpt, err := DialTarget(endpoint)
	if err != nil {
		return nil, err
	}

	grpcConn, err := grpc.Dial(target, append([]grpc.DialOption{secureOpt}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial grpc: %w", err)
	}

	return grpcConn, nil
}
