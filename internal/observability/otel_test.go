package observability

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/Moldovia-Peach/my-nc-news/internal/config"
)

func preserveOTelGlobals(t *testing.T) {
	t.Helper()
	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
}

func useMemoryExporter(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	mem := tracetest.NewInMemoryExporter()
	orig := newSpanExporter
	newSpanExporter = func(context.Context, config.OTELConfig) (sdktrace.SpanExporter, error) { return mem, nil }
	t.Cleanup(func() { newSpanExporter = orig })
	return mem
}

func enabledCfg(name string) config.OTELConfig {
	return config.OTELConfig{Enabled: true, Insecure: true, Endpoint: "localhost:4317", ServiceName: name, SampleRatio: 1}
}

func TestSetupOTel_Disabled_NoOp(t *testing.T) {
	preserveOTelGlobals(t)
	prev := otel.GetTracerProvider()

	shutdown, err := SetupOTel(context.Background(), config.OTELConfig{Enabled: false}, "v0")
	if err != nil || shutdown == nil {
		t.Fatalf("SetupOTel disabled = %v, %v", shutdown, err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("no-op shutdown: %v", err)
	}
	if otel.GetTracerProvider() != prev {
		t.Fatalf("disabled setup must not replace the tracer provider")
	}
}

func TestSetupOTel_ExportsSpansWithServiceResource(t *testing.T) {
	preserveOTelGlobals(t)
	mem := useMemoryExporter(t)

	shutdown, err := SetupOTel(context.Background(), enabledCfg("nc-news-test"), "v1.2.3")
	if err != nil {
		t.Fatalf("SetupOTel: %v", err)
	}

	_, span := otel.Tracer("services/ArticleService").Start(context.Background(), "ArticleService.Get")
	span.End()

	defer func() { _ = shutdown(context.Background()) }()

	tp, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	if !ok {
		t.Fatalf("expected *sdktrace.TracerProvider")
	}
	if err := tp.ForceFlush(context.Background()); err != nil {
		t.Fatalf("flush: %v", err)
	}

	spans := mem.GetSpans()
	if len(spans) != 1 || spans[0].Name != "ArticleService.Get" {
		t.Fatalf("exported spans = %+v", spans)
	}
	attrs := spans[0].Resource.Attributes()
	var name, version string
	for _, kv := range attrs {
		switch kv.Key {
		case semconv.ServiceNameKey:
			name = kv.Value.AsString()
		case semconv.ServiceVersionKey:
			version = kv.Value.AsString()
		}
	}
	if name != "nc-news-test" || version != "v1.2.3" {
		t.Fatalf("resource = %v", attrs)
	}
}

func TestSetupOTel_InstallsW3CPropagator(t *testing.T) {
	preserveOTelGlobals(t)
	useMemoryExporter(t)

	shutdown, err := SetupOTel(context.Background(), enabledCfg("svc"), "v1")
	if err != nil {
		t.Fatalf("SetupOTel: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	ctx, span := otel.Tracer("test").Start(context.Background(), "root")
	defer span.End()

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	if carrier.Get("traceparent") == "" {
		t.Fatalf("traceparent not injected: %v", carrier)
	}
}

func TestSetupOTel_RealExporterBranches(t *testing.T) {
	for _, insecure := range []bool{true, false} {
		preserveOTelGlobals(t)
		cfg := enabledCfg("svc")
		cfg.Insecure = insecure

		shutdown, err := SetupOTel(context.Background(), cfg, "v1")
		if err != nil {
			t.Fatalf("insecure=%v: %v", insecure, err)
		}
		if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
			t.Fatalf("insecure=%v: expected *sdktrace.TracerProvider", insecure)
		}
		_ = shutdown(context.Background())
	}
}

func TestSetupOTel_ErrorsLeaveGlobalsIntact(t *testing.T) {
	cases := []struct {
		name  string
		patch func(t *testing.T)
	}{
		{"exporter", func(t *testing.T) {
			orig := newSpanExporter
			newSpanExporter = func(context.Context, config.OTELConfig) (sdktrace.SpanExporter, error) {
				return nil, errors.New("boom-exporter")
			}
			t.Cleanup(func() { newSpanExporter = orig })
		}},
		{"resource", func(t *testing.T) {
			useMemoryExporter(t)
			orig := newServiceResource
			newServiceResource = func(context.Context, string, string) (*resource.Resource, error) {
				return nil, errors.New("boom-resource")
			}
			t.Cleanup(func() { newServiceResource = orig })
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			preserveOTelGlobals(t)
			tc.patch(t)
			prevTP := otel.GetTracerProvider()

			if _, err := SetupOTel(context.Background(), enabledCfg("svc"), "v0"); err == nil {
				t.Fatalf("expected error")
			}
			if otel.GetTracerProvider() != prevTP {
				t.Fatalf("globals changed on failure")
			}
		})
	}
}
