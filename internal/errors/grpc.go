package errors

import (
	"errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// ErrorDomain identifies this service in google.rpc.ErrorInfo details
const ErrorDomain = "army-rater"

// ToGRPCError converts an error to a gRPC status error. Metadata travels as
// google.rpc.ErrorInfo and field validation messages as google.rpc.BadRequest.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !errors.As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if details := statusDetails(customErr); len(details) > 0 {
		if withDetails, detailErr := st.WithDetails(details...); detailErr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

func statusDetails(e *Error) []protoadapt.MessageV1 {
	if len(e.Meta) == 0 {
		return nil
	}

	var details []protoadapt.MessageV1
	info := &errdetails.ErrorInfo{
		Reason:   string(e.Code),
		Domain:   ErrorDomain,
		Metadata: make(map[string]string, len(e.Meta)),
	}
	for k, v := range e.Meta {
		if fields, ok := v.(map[string][]string); ok && k == MetaValidationErrors {
			details = append(details, badRequest(fields))
			continue
		}
		info.Metadata[k] = fmt.Sprint(v)
	}
	if len(info.Metadata) > 0 {
		details = append([]protoadapt.MessageV1{info}, details...)
	}
	return details
}

func badRequest(fields map[string][]string) *errdetails.BadRequest {
	v := &ValidationError{Fields: fields}
	br := &errdetails.BadRequest{}
	for _, field := range v.FieldNames() {
		for _, msg := range fields[field] {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       field,
				Description: msg,
			})
		}
	}
	return br
}

// FromGRPCError converts a gRPC status error back into an *Error, restoring
// metadata and validation fields from the status details.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			for k, v := range d.GetMetadata() {
				customErr.WithMeta(k, v)
			}
		case *errdetails.BadRequest:
			fields := make(map[string][]string)
			for _, fv := range d.GetFieldViolations() {
				fields[fv.GetField()] = append(fields[fv.GetField()], fv.GetDescription())
			}
			customErr.WithMeta(MetaValidationErrors, fields)
		}
	}

	return customErr
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeOutOfRange:
		return codes.OutOfRange
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}

func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.OutOfRange:
		return CodeOutOfRange
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
