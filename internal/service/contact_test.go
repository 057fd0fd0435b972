package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const ackMessage = "Thanks! We will reach out."

func newTestService(t *testing.T) (*contactService, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	svc, err := NewContactService(ackMessage, reg)
	require.NoError(t, err)
	return svc.(*contactService), reg
}

func TestContactService_Acknowledge(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		req        *ContactRequest
		wantFields map[string]string
		wantErr    error
	}{
		{
			name: "happy path",
			req:  &ContactRequest{Name: "Ada Lovelace", Email: "ada@example.com"},
		},
		{
			name: "all fields",
			req: &ContactRequest{
				Name:    "Ada",
				Email:   "ada@example.com",
				Org:     "Analytical Engines",
				Message: "Edge proxies and the mail relay.",
			},
		},
		{
			name:       "missing email",
			req:        &ContactRequest{Name: "Ada"},
			wantFields: map[string]string{"email": "is required"},
		},
		{
			name:       "missing name and email",
			req:        &ContactRequest{Org: "Acme"},
			wantFields: map[string]string{"name": "is required", "email": "is required"},
		},
		{
			name:       "whitespace only counts as missing",
			req:        &ContactRequest{Name: "   ", Email: "ada@example.com"},
			wantFields: map[string]string{"name": "is required"},
		},
		{
			name:       "malformed email",
			req:        &ContactRequest{Name: "Ada", Email: "not-an-email"},
			wantFields: map[string]string{"email": "must be a valid email address"},
		},
		{
			name:       "message too long",
			req:        &ContactRequest{Name: "Ada", Email: "ada@example.com", Message: strings.Repeat("x", 4001)},
			wantFields: map[string]string{"msg": "is too long"},
		},
		{
			name:    "nil request",
			req:     nil,
			wantErr: ErrRequestNil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)

			ack, err := svc.Acknowledge(ctx, tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, ack)
			case tt.wantFields != nil:
				var verr *ValidationError
				require.True(t, errors.As(err, &verr), "got %v", err)
				assert.Equal(t, tt.wantFields, verr.Fields)
				assert.Nil(t, ack)
			default:
				require.NoError(t, err)
				require.NotNil(t, ack)
				assert.Equal(t, ackMessage, ack.Message)
				_, perr := uuid.Parse(ack.Reference)
				assert.NoError(t, perr)
			}
		})
	}
}

func TestContactService_CountsOutcomes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Acknowledge(ctx, &ContactRequest{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	_, err = svc.Acknowledge(ctx, &ContactRequest{Name: "Ada"})
	require.Error(t, err)
	_, err = svc.Acknowledge(ctx, &ContactRequest{Name: "Ada"})
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(svc.outcomes.WithLabelValues(outcomeAcknowledged)))
	assert.Equal(t, float64(2), testutil.ToFloat64(svc.outcomes.WithLabelValues(outcomeRejected)))
}

func TestContactService_DoesNotMutateRequest(t *testing.T) {
	svc, _ := newTestService(t)
	req := &ContactRequest{Name: "  Ada  ", Email: " ada@example.com "}

	_, err := svc.Acknowledge(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "  Ada  ", req.Name)
}

func TestNewContactService_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewContactService(ackMessage, reg)
	require.NoError(t, err)

	_, err = NewContactService(ackMessage, reg)
	assert.Error(t, err)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "is required", "email": "is required"}}
	assert.Equal(t, "invalid contact request: email: is required, name: is required", err.Error())
}

func TestContactService_SpanCarriesNoFormValues(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	svc, _ := newTestService(t)
	_, err := svc.Acknowledge(context.Background(), &ContactRequest{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "contact.acknowledge", spans[0].Name())
	for _, kv := range spans[0].Attributes() {
		assert.NotContains(t, kv.Value.Emit(), "ada@example.com")
		if kv.Key == "contact.outcome" {
			assert.Equal(t, outcomeAcknowledged, kv.Value.AsString())
		}
	}
}
