package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var ErrRequestNil = errors.New("contact request is nil")

const (
	outcomeAcknowledged = "acknowledged"
	outcomeRejected     = "rejected"
)

// ContactRequest is a submission of the contact form. Tags drive body
// parsing (form or JSON, same field names) and validation.
type ContactRequest struct {
	Name    string `form:"name" json:"name" validate:"required,max=200"`
	Email   string `form:"email" json:"email" validate:"required,email,max=320"`
	Org     string `form:"org" json:"org" validate:"max=200"`
	Message string `form:"msg" json:"msg" validate:"max=4000"`
}

// Acknowledgement is returned for an accepted submission. It is not stored.
type Acknowledgement struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

// ValidationError lists rejected fields by form name with a short reason.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, n+": "+e.Fields[n])
	}
	return "invalid contact request: " + strings.Join(parts, ", ")
}

// ContactService defines the contact form use case.
type ContactService interface {
	// Acknowledge validates a submission and returns an acknowledgement.
	// Nothing about the submission is persisted, forwarded or logged.
	Acknowledge(ctx context.Context, req *ContactRequest) (*Acknowledgement, error)
}

// contactService is a concrete implementation of ContactService.
type contactService struct {
	validate *validator.Validate
	message  string
	outcomes *prometheus.CounterVec
}

// NewContactService constructs a ContactService that answers with message and
// registers its outcome counter on reg.
func NewContactService(message string, reg prometheus.Registerer) (ContactService, error) {
	outcomes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_acknowledgements_total",
			Help: "Contact form submissions by outcome.",
		},
		[]string{"outcome"},
	)
	if err := reg.Register(outcomes); err != nil {
		return nil, fmt.Errorf("register contact metrics: %w", err)
	}

	return &contactService{
		validate: newValidator(),
		message:  message,
		outcomes: outcomes,
	}, nil
}

// newValidator reports field errors by their form names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *contactService) Acknowledge(ctx context.Context, req *ContactRequest) (*Acknowledgement, error) {
	_, span := otel.Tracer("landing/service").Start(ctx, "contact.acknowledge",
		trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	if req == nil {
		span.SetStatus(codes.Error, ErrRequestNil.Error())
		return nil, ErrRequestNil
	}

	normalized := ContactRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Org:     strings.TrimSpace(req.Org),
		Message: strings.TrimSpace(req.Message),
	}

	if err := s.validate.Struct(&normalized); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			span.SetStatus(codes.Error, "validator failure")
			return nil, fmt.Errorf("validate contact request: %w", err)
		}
		verr := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
		for _, fe := range fieldErrs {
			verr.Fields[fe.Field()] = reason(fe)
		}
		s.outcomes.WithLabelValues(outcomeRejected).Inc()
		span.SetAttributes(attribute.String("contact.outcome", outcomeRejected))
		return nil, verr
	}

	s.outcomes.WithLabelValues(outcomeAcknowledged).Inc()
	span.SetAttributes(attribute.String("contact.outcome", outcomeAcknowledged))

	return &Acknowledgement{
		Reference: uuid.NewString(),
		Message:   s.message,
	}, nil
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "is too long"
	default:
		return "is invalid"
	}
}
