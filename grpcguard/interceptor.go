package grpcguard

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/reoring/guard"
)

// Config configures the violation interceptors.
type Config struct {
	// Logger receives one warning per violation. Defaults to a no-op logger.
	Logger *zap.Logger
	// Metrics, when set, counts violations per method.
	Metrics *Metrics
	// RecoverPanics converts panics carrying a violation (guard.Must) into
	// statuses. Other panics are re-raised.
	RecoverPanics bool
}

// Interceptor turns violations returned (or, optionally, panicked) by
// handlers into gRPC statuses.
type Interceptor struct {
	config *Config
}

// New creates an Interceptor. A nil config uses the defaults.
func New(config *Config) *Interceptor {
	if config == nil {
		config = &Config{}
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Interceptor{config: config}
}

// UnaryServerInterceptor returns a gRPC unary server interceptor.
func (i *Interceptor) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp interface{}, err error) {
		if i.config.RecoverPanics {
			defer func() {
				if r := recover(); r != nil {
					resp, err = nil, i.recovered(info.FullMethod, r)
				}
			}()
		}
		resp, err = handler(ctx, req)
		if err != nil {
			err = i.translate(info.FullMethod, err)
		}
		return resp, err
	}
}

// StreamServerInterceptor returns a gRPC stream server interceptor.
func (i *Interceptor) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) (err error) {
		if i.config.RecoverPanics {
			defer func() {
				if r := recover(); r != nil {
					err = i.recovered(info.FullMethod, r)
				}
			}()
		}
		if err = handler(srv, ss); err != nil {
			err = i.translate(info.FullMethod, err)
		}
		return err
	}
}

func (i *Interceptor) recovered(method string, r any) error {
	err, ok := r.(error)
	if !ok {
		panic(r)
	}
	if _, ok := guard.AsViolation(err); !ok {
		panic(r)
	}
	return i.translate(method, err)
}

func (i *Interceptor) translate(method string, err error) error {
	v, ok := guard.AsViolation(err)
	if !ok {
		return err
	}
	i.config.Logger.Warn("contract violation",
		zap.String("method", method),
		zap.String("code", v.Kind.String()),
		zap.String("class", v.Class().String()),
		zap.String("name", v.Name),
		zap.String("message", v.Message),
	)
	i.config.Metrics.Record(method, v)
	return Status(err).Err()
}
