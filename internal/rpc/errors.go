package rpc

import (
	"context"
	"errors"
	"log"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vican-pos/internal/domain"
)

const errorDomain = "pos.vican"

type errorKind struct {
	reason string
	code   codes.Code
	err    error
}

// Order matters: the first kind the error matches wins.
var errorKinds = []errorKind{
	{"INSUFFICIENT_STOCK", codes.FailedPrecondition, domain.ErrInsufficientStock},
	{"PRODUCT_INACTIVE", codes.FailedPrecondition, domain.ErrProductInactive},
	{"HAS_HISTORY", codes.FailedPrecondition, domain.ErrHasHistory},
	{"NOT_FOUND", codes.NotFound, domain.ErrNotFound},
	{"INVALID_QUANTITY", codes.InvalidArgument, domain.ErrInvalidQuantity},
	{"INVALID_INPUT", codes.InvalidArgument, domain.ErrInvalidInput},
	{"DUPLICATE", codes.AlreadyExists, domain.ErrDuplicate},
	{"STORE_UNAVAILABLE", codes.Unavailable, domain.ErrStoreUnavailable},
	{"INVALID_CREDENTIALS", codes.Unauthenticated, domain.ErrInvalidCredentials},
	{"TOKEN_EXPIRED", codes.Unauthenticated, domain.ErrTokenExpired},
	{"TOKEN_INVALID", codes.Unauthenticated, domain.ErrTokenInvalid},
}

// RemoteError is a domain error restored on the client side of a call.
type RemoteError struct {
	Reason string
	msg    string
	kind   error
}

func (e *RemoteError) Error() string { return e.msg }
func (e *RemoteError) Unwrap() error { return e.kind }

// ToStatus converts a service error into a gRPC status carrying an
// ErrorInfo reason. Errors outside the taxonomy become Internal and are
// logged, not echoed to the caller.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	for _, k := range errorKinds {
		if !errors.Is(err, k.err) {
			continue
		}
		info := &errdetails.ErrorInfo{Reason: k.reason, Domain: errorDomain}

		var stockErr *domain.InsufficientStockError
		if errors.As(err, &stockErr) {
			info.Metadata = map[string]string{
				"product_id": strconv.FormatInt(stockErr.ProductID, 10),
				"available":  strconv.FormatInt(stockErr.Available, 10),
				"requested":  strconv.FormatInt(stockErr.Requested, 10),
			}
		}

		st, detailErr := status.New(k.code, err.Error()).WithDetails(info)
		if detailErr != nil {
			return status.Error(k.code, err.Error())
		}
		return st.Err()
	}

	log.Printf("[rpc] internal error: %v", err)
	return status.Error(codes.Internal, "internal error")
}

// FromStatus restores the domain error behind a status so callers can use
// errors.Is against the domain sentinels. A bare Unavailable from the
// transport maps to ErrStoreUnavailable as well; both are retryable.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != errorDomain {
			continue
		}
		for _, k := range errorKinds {
			if k.reason != info.GetReason() {
				continue
			}
			if k.err == domain.ErrInsufficientStock {
				if stockErr, ok := stockErrorFromMetadata(info.GetMetadata()); ok {
					return stockErr
				}
			}
			return &RemoteError{Reason: k.reason, msg: st.Message(), kind: k.err}
		}
	}

	if st.Code() == codes.Unavailable {
		return &RemoteError{Reason: "STORE_UNAVAILABLE", msg: st.Message(), kind: domain.ErrStoreUnavailable}
	}
	return err
}

func stockErrorFromMetadata(md map[string]string) (*domain.InsufficientStockError, bool) {
	productID, err1 := strconv.ParseInt(md["product_id"], 10, 64)
	available, err2 := strconv.ParseInt(md["available"], 10, 64)
	requested, err3 := strconv.ParseInt(md["requested"], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, false
	}
	return &domain.InsufficientStockError{ProductID: productID, Available: available, Requested: requested}, true
}

// UnaryErrorInterceptor converts handler errors with ToStatus.
func UnaryErrorInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		return nil, ToStatus(err)
	}
	return resp, nil
}
