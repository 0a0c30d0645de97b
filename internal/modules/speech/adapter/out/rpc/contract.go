package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey      = "engine"
	serviceName       = "hindidrill.engine.v1.SpeechEngine"
	jsonCodecName     = "json"
	methodGetMetadata = "/" + serviceName + "/GetMetadata"
	methodRecognize   = "/" + serviceName + "/Recognize"
	methodSpeak       = "/" + serviceName + "/Speak"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "HINDIDRILL_ENGINE",
	MagicCookieValue: "hindidrill",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
}

type RecognizeRequest struct {
	Locale          string `json:"locale"`
	MaxAlternatives int32  `json:"max_alternatives"`
	TimeoutMS       int32  `json:"timeout_ms"`
}

// RecognizeResponse carries the outcome of one utterance. An empty
// transcript with no error code means the engine heard nothing.
type RecognizeResponse struct {
	Transcript string `json:"transcript"`
	ErrorCode  string `json:"error_code"`
}

type SpeakRequest struct {
	Text   string `json:"text"`
	Locale string `json:"locale"`
}

type SpeechEngineServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	Recognize(ctx context.Context, in *RecognizeRequest) (*RecognizeResponse, error)
	Speak(ctx context.Context, in *SpeakRequest) (*Empty, error)
}

type SpeechEngineClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	Recognize(ctx context.Context, in *RecognizeRequest) (*RecognizeResponse, error)
	Speak(ctx context.Context, in *SpeakRequest) error
}

type speechEngineClient struct {
	conn *grpc.ClientConn
}

func NewSpeechEngineClient(conn *grpc.ClientConn) SpeechEngineClient {
	return &speechEngineClient{conn: conn}
}

func (c *speechEngineClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *speechEngineClient) Recognize(ctx context.Context, in *RecognizeRequest) (*RecognizeResponse, error) {
	out := &RecognizeResponse{}
	if err := c.conn.Invoke(ctx, methodRecognize, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *speechEngineClient) Speak(ctx context.Context, in *SpeakRequest) error {
	return c.conn.Invoke(ctx, methodSpeak, in, &Empty{}, grpc.CallContentSubtype(jsonCodecName))
}

// unary adapts a typed handler to grpc.MethodDesc.
func unary[Req any, Resp any](method string, newReq func() *Req, call func(context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := newReq()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/" + method}
			handler := func(ctx context.Context, req any) (any, error) {
				typed, ok := req.(*Req)
				if !ok {
					return nil, fmt.Errorf("invalid request type")
				}
				return call(ctx, typed)
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func RegisterSpeechEngineServer(server grpc.ServiceRegistrar, impl SpeechEngineServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*SpeechEngineServer)(nil),
		Methods: []grpc.MethodDesc{
			unary("GetMetadata", func() *Empty { return &Empty{} }, impl.GetMetadata),
			unary("Recognize", func() *RecognizeRequest { return &RecognizeRequest{} }, impl.Recognize),
			unary("Speak", func() *SpeakRequest { return &SpeakRequest{} }, impl.Speak),
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/engine-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl SpeechEngineServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterSpeechEngineServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewSpeechEngineClient(conn), nil
}

func PluginMap(impl SpeechEngineServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
