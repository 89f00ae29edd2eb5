package grpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/nose-embedder/internal/proto"
	"github.com/DRSN-tech/nose-embedder/internal/usecase"
	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// canceledStatus возвращает транспортную ошибку для отменённого или
// просроченного запроса и nil для всех остальных ошибок.
func canceledStatus(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request deadline exceeded")
	default:
		return nil
	}
}

// toProtoCode переводит доменный код в значение enum.
// Числовые значения совпадают, проверяется лишь известность кода.
func toProtoCode(code e.Code) proto.ErrorCode {
	if _, ok := proto.ErrorCode_name[int32(code)]; ok {
		return proto.ErrorCode(code)
	}

	return proto.ErrorCode_INTERNAL_SERVER_ERROR
}

func toProtoStatus(status string) proto.HealthCheckResponse_ServingStatus {
	switch status {
	case usecase.StatusServing:
		return proto.HealthCheckResponse_SERVING
	case usecase.StatusNotServing:
		return proto.HealthCheckResponse_NOT_SERVING
	default:
		return proto.HealthCheckResponse_UNKNOWN
	}
}

func formatModelInfo(info usecase.ModelInfo) string {
	if info.Path == "" {
		return ""
	}

	return fmt.Sprintf("path=%s input=%s%v output=%s%v",
		info.Path, info.InputName, info.InputShape, info.OutputName, info.OutputShape)
}
